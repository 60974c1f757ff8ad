package model

import "time"

// Card priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Card is a work item inside a list.
type Card struct {
	ID          string    `firestore:"id" json:"id"`
	ListID      string    `firestore:"listId" json:"listId"`
	Title       string    `firestore:"title" json:"title"`
	Description string    `firestore:"description" json:"description"`
	Priority    string    `firestore:"priority" json:"priority"`
	TimeTracked float64   `firestore:"timeTracked" json:"timeTracked"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// ValidPriority reports whether p is one of the allowed priority values.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
