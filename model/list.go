package model

import "time"

// List is a column on a board (e.g. "To Do").
type List struct {
	ID        string    `firestore:"id" json:"id"`
	BoardID   string    `firestore:"boardId" json:"boardId"`
	Name      string    `firestore:"name" json:"name"`
	Position  int       `firestore:"position" json:"position"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}
