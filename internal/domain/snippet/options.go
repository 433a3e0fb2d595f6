package snippet

// ListOptions provides filtering options for listing snippets.
type ListOptions struct {
	Language string
	Limit    int
	Offset   int
}

// SearchOptions provides filtering options for search.
type SearchOptions struct {
	Language string
	Limit    int
	Offset   int
}
