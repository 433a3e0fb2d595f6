package checkin

// ListOptions provides filtering options for listing entries.
// Entries are always returned newest first.
type ListOptions struct {
	Types  []EntryType
	Limit  int
	Offset int
}
