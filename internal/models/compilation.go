package models

// Compilation keeps its events in insertion order.
type Compilation struct {
	ID       int64
	Title    string
	Pinned   bool
	EventIDs []int64
}

type CompilationDto struct {
	ID     int64           `json:"id"`
	Events []EventShortDto `json:"events"`
	Pinned bool            `json:"pinned"`
	Title  string          `json:"title"`
}

type NewCompilationRequest struct {
	Events []int64 `json:"events" validate:"omitempty,unique,dive,gt=0"`
	Pinned bool    `json:"pinned"`
	Title  string  `json:"title" validate:"required,min=1,max=50"`
}

// UpdateCompilationRequest replaces the event list when Events is non-nil,
// including with an empty list.
type UpdateCompilationRequest struct {
	Events []int64 `json:"events" validate:"omitempty,unique,dive,gt=0"`
	Pinned *bool   `json:"pinned"`
	Title  *string `json:"title" validate:"omitempty,min=1,max=50"`
}
