package model

import "time"

// TimeLog is a tracked work interval against a card. EndTime is nil while
// the interval is still open; Duration is milliseconds and stays 0 until
// an end time is known.
type TimeLog struct {
	ID        string     `firestore:"id" json:"id"`
	CardID    string     `firestore:"cardId" json:"cardId"`
	StartTime time.Time  `firestore:"startTime" json:"startTime"`
	EndTime   *time.Time `firestore:"endTime" json:"endTime"`
	Duration  int64      `firestore:"duration" json:"duration"`
	CreatedAt time.Time  `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `firestore:"updatedAt" json:"updatedAt"`
}
