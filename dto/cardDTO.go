package dto

import "nobacklog/model"

type CreateCardRequest struct {
	Title       string `json:"title"`
	ListID      string `json:"listId"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type UpdateCardRequest struct {
	Title       *string `json:"title"`
	ListID      *string `json:"listId"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
}

// CardDetail is a card with its parent list expanded for display.
type CardDetail struct {
	model.Card
	List *model.List `json:"list"`
}
