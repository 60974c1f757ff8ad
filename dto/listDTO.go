package dto

import "nobacklog/model"

type CreateListRequest struct {
	Name     string `json:"name"`
	BoardID  string `json:"boardId"`
	Position *int   `json:"position"`
}

type UpdateListRequest struct {
	Name     *string `json:"name"`
	BoardID  *string `json:"boardId"`
	Position *int    `json:"position"`
}

// ListDetail is a list with its parent board expanded for display.
// Board is nil when the referenced board no longer exists.
type ListDetail struct {
	model.List
	Board *model.Board `json:"board"`
}
