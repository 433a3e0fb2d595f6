package activity

// ListOptions provides filtering options for listing activity.
type ListOptions struct {
	EntityKind   *Kind
	EntityID     *string
	ActivityType *Type
	Limit        int
	Offset       int
}
