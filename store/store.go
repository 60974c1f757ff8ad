package store

import (
	"context"
	"errors"

	"nobacklog/model"
)

// ErrNotFound is returned when a document id does not resolve.
var ErrNotFound = errors.New("document not found")

// ErrConstraint is returned when a write violates a schema-level
// constraint (length, enum, numeric bounds). These are not pre-checked by
// the handlers and surface as store failures.
var ErrConstraint = errors.New("constraint violation")

// BoardStore persists boards. Create assigns the id and both timestamps;
// Update patches only the given fields and refreshes updatedAt.
type BoardStore interface {
	Create(ctx context.Context, board *model.Board) (*model.Board, error)
	List(ctx context.Context) ([]model.Board, error)
	GetByID(ctx context.Context, id string) (*model.Board, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*model.Board, error)
	Delete(ctx context.Context, id string) error
}

// ListStore persists lists. List filters on boardId when boardID is
// non-empty and scans the whole collection otherwise.
type ListStore interface {
	Create(ctx context.Context, list *model.List) (*model.List, error)
	List(ctx context.Context, boardID string) ([]model.List, error)
	GetByID(ctx context.Context, id string) (*model.List, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*model.List, error)
	Delete(ctx context.Context, id string) error
}

// CardStore persists cards. List filters on listId when listID is non-empty.
type CardStore interface {
	Create(ctx context.Context, card *model.Card) (*model.Card, error)
	List(ctx context.Context, listID string) ([]model.Card, error)
	GetByID(ctx context.Context, id string) (*model.Card, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*model.Card, error)
	Delete(ctx context.Context, id string) error
}

// TimeLogStore persists time logs. List filters on cardId when cardID is
// non-empty.
type TimeLogStore interface {
	Create(ctx context.Context, timeLog *model.TimeLog) (*model.TimeLog, error)
	List(ctx context.Context, cardID string) ([]model.TimeLog, error)
	GetByID(ctx context.Context, id string) (*model.TimeLog, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*model.TimeLog, error)
	Delete(ctx context.Context, id string) error
}

// Stores bundles the four entity stores for injection into the controllers.
type Stores struct {
	Boards   BoardStore
	Lists    ListStore
	Cards    CardStore
	TimeLogs TimeLogStore
}
