package dto

import "nobacklog/model"

// Start and end times travel as RFC3339 strings and are parsed by the
// handler, e.g. "2024-01-01T00:00:00Z".
type CreateTimeLogRequest struct {
	CardID    string `json:"cardId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type UpdateTimeLogRequest struct {
	CardID    *string `json:"cardId"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
}

// TimeLogDetail is a time log with its parent card expanded for display.
type TimeLogDetail struct {
	model.TimeLog
	Card *model.Card `json:"card"`
}
