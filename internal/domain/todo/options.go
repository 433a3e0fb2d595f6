package todo

// ListOptions provides filtering options for listing items.
type ListOptions struct {
	// Done filters by completion state when set.
	Done   *bool
	Limit  int
	Offset int
}
