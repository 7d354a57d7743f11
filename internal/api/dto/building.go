package dto

// ListBuildingsResponse maps building short names to display names.
type ListBuildingsResponse map[string]string
