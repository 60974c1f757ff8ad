package store

import (
	"fmt"
	"time"

	"nobacklog/model"
)

// Schema-level bounds, mirrored by both store implementations.
const (
	maxBoardNameLen   = 100
	maxListNameLen    = 50
	maxCardTitleLen   = 100
	maxDescriptionLen = 2000
)

func checkBoard(b *model.Board) error {
	return checkBoardFields(map[string]interface{}{"name": b.Name})
}

func checkBoardFields(fields map[string]interface{}) error {
	if v, ok := fields["name"]; ok {
		if err := checkLen("name", v, maxBoardNameLen); err != nil {
			return err
		}
	}
	return nil
}

func checkList(l *model.List) error {
	return checkListFields(map[string]interface{}{"name": l.Name})
}

func checkListFields(fields map[string]interface{}) error {
	if v, ok := fields["name"]; ok {
		if err := checkLen("name", v, maxListNameLen); err != nil {
			return err
		}
	}
	return nil
}

func checkCard(c *model.Card) error {
	return checkCardFields(map[string]interface{}{
		"title":       c.Title,
		"description": c.Description,
		"priority":    c.Priority,
		"timeTracked": c.TimeTracked,
	})
}

func checkCardFields(fields map[string]interface{}) error {
	if v, ok := fields["title"]; ok {
		if err := checkLen("title", v, maxCardTitleLen); err != nil {
			return err
		}
	}
	if v, ok := fields["description"]; ok {
		if err := checkLen("description", v, maxDescriptionLen); err != nil {
			return err
		}
	}
	if v, ok := fields["priority"]; ok {
		if s, _ := v.(string); !model.ValidPriority(s) {
			return fmt.Errorf("%w: priority must be one of low, medium, high", ErrConstraint)
		}
	}
	if v, ok := fields["timeTracked"]; ok {
		if n, _ := v.(float64); n < 0 {
			return fmt.Errorf("%w: timeTracked must not be negative", ErrConstraint)
		}
	}
	return nil
}

func checkTimeLog(t *model.TimeLog) error {
	if t.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrConstraint)
	}
	return nil
}

func checkTimeLogFields(fields map[string]interface{}) error {
	if v, ok := fields["startTime"]; ok {
		if ts, _ := v.(time.Time); ts.IsZero() {
			return fmt.Errorf("%w: startTime is required", ErrConstraint)
		}
	}
	return nil
}

func checkLen(field string, v interface{}, max int) error {
	s, _ := v.(string)
	if len(s) > max {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrConstraint, field, max)
	}
	return nil
}
