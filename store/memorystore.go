package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"nobacklog/model"
)

// NewMemoryStores returns Stores backed by in-process maps. It enforces the
// same schema constraints as the Firestore implementation and exists so the
// handlers can be exercised without a database.
func NewMemoryStores() *Stores {
	return &Stores{
		Boards:   &memoryBoardStore{boards: make(map[string]model.Board)},
		Lists:    &memoryListStore{lists: make(map[string]model.List)},
		Cards:    &memoryCardStore{cards: make(map[string]model.Card)},
		TimeLogs: &memoryTimeLogStore{timeLogs: make(map[string]model.TimeLog)},
	}
}

type memoryBoardStore struct {
	mu     sync.RWMutex
	boards map[string]model.Board
}

func (s *memoryBoardStore) Create(ctx context.Context, board *model.Board) (*model.Board, error) {
	if err := checkBoard(board); err != nil {
		return nil, err
	}

	now := time.Now()
	board.ID = uuid.New().String()
	board.CreatedAt = now
	board.UpdatedAt = now

	s.mu.Lock()
	s.boards[board.ID] = *board
	s.mu.Unlock()
	return board, nil
}

func (s *memoryBoardStore) List(ctx context.Context) ([]model.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	boards := make([]model.Board, 0, len(s.boards))
	for _, board := range s.boards {
		boards = append(boards, board)
	}
	return boards, nil
}

func (s *memoryBoardStore) GetByID(ctx context.Context, id string) (*model.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	board, ok := s.boards[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &board, nil
}

func (s *memoryBoardStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*model.Board, error) {
	if err := checkBoardFields(fields); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	board, ok := s.boards[id]
	if !ok {
		return nil, ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "name":
			board.Name = value.(string)
		default:
			return nil, fmt.Errorf("unknown board field %q", key)
		}
	}
	board.UpdatedAt = time.Now()
	s.boards[id] = board
	return &board, nil
}

func (s *memoryBoardStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.boards[id]; !ok {
		return ErrNotFound
	}
	delete(s.boards, id)
	return nil
}

type memoryListStore struct {
	mu    sync.RWMutex
	lists map[string]model.List
}

func (s *memoryListStore) Create(ctx context.Context, list *model.List) (*model.List, error) {
	if err := checkList(list); err != nil {
		return nil, err
	}

	now := time.Now()
	list.ID = uuid.New().String()
	list.CreatedAt = now
	list.UpdatedAt = now

	s.mu.Lock()
	s.lists[list.ID] = *list
	s.mu.Unlock()
	return list, nil
}

func (s *memoryListStore) List(ctx context.Context, boardID string) ([]model.List, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lists := make([]model.List, 0, len(s.lists))
	for _, list := range s.lists {
		if boardID != "" && list.BoardID != boardID {
			continue
		}
		lists = append(lists, list)
	}
	return lists, nil
}

func (s *memoryListStore) GetByID(ctx context.Context, id string) (*model.List, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list, ok := s.lists[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &list, nil
}

func (s *memoryListStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*model.List, error) {
	if err := checkListFields(fields); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.lists[id]
	if !ok {
		return nil, ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "name":
			list.Name = value.(string)
		case "boardId":
			list.BoardID = value.(string)
		case "position":
			list.Position = value.(int)
		default:
			return nil, fmt.Errorf("unknown list field %q", key)
		}
	}
	list.UpdatedAt = time.Now()
	s.lists[id] = list
	return &list, nil
}

func (s *memoryListStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lists[id]; !ok {
		return ErrNotFound
	}
	delete(s.lists, id)
	return nil
}

type memoryCardStore struct {
	mu    sync.RWMutex
	cards map[string]model.Card
}

func (s *memoryCardStore) Create(ctx context.Context, card *model.Card) (*model.Card, error) {
	if err := checkCard(card); err != nil {
		return nil, err
	}

	now := time.Now()
	card.ID = uuid.New().String()
	card.CreatedAt = now
	card.UpdatedAt = now

	s.mu.Lock()
	s.cards[card.ID] = *card
	s.mu.Unlock()
	return card, nil
}

func (s *memoryCardStore) List(ctx context.Context, listID string) ([]model.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cards := make([]model.Card, 0, len(s.cards))
	for _, card := range s.cards {
		if listID != "" && card.ListID != listID {
			continue
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func (s *memoryCardStore) GetByID(ctx context.Context, id string) (*model.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	card, ok := s.cards[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &card, nil
}

func (s *memoryCardStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*model.Card, error) {
	if err := checkCardFields(fields); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	card, ok := s.cards[id]
	if !ok {
		return nil, ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "title":
			card.Title = value.(string)
		case "listId":
			card.ListID = value.(string)
		case "description":
			card.Description = value.(string)
		case "priority":
			card.Priority = value.(string)
		case "timeTracked":
			card.TimeTracked = value.(float64)
		default:
			return nil, fmt.Errorf("unknown card field %q", key)
		}
	}
	card.UpdatedAt = time.Now()
	s.cards[id] = card
	return &card, nil
}

func (s *memoryCardStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cards[id]; !ok {
		return ErrNotFound
	}
	delete(s.cards, id)
	return nil
}

type memoryTimeLogStore struct {
	mu       sync.RWMutex
	timeLogs map[string]model.TimeLog
}

func (s *memoryTimeLogStore) Create(ctx context.Context, timeLog *model.TimeLog) (*model.TimeLog, error) {
	if err := checkTimeLog(timeLog); err != nil {
		return nil, err
	}

	now := time.Now()
	timeLog.ID = uuid.New().String()
	timeLog.CreatedAt = now
	timeLog.UpdatedAt = now

	s.mu.Lock()
	s.timeLogs[timeLog.ID] = *timeLog
	s.mu.Unlock()
	return timeLog, nil
}

func (s *memoryTimeLogStore) List(ctx context.Context, cardID string) ([]model.TimeLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	timeLogs := make([]model.TimeLog, 0, len(s.timeLogs))
	for _, timeLog := range s.timeLogs {
		if cardID != "" && timeLog.CardID != cardID {
			continue
		}
		timeLogs = append(timeLogs, timeLog)
	}
	return timeLogs, nil
}

func (s *memoryTimeLogStore) GetByID(ctx context.Context, id string) (*model.TimeLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	timeLog, ok := s.timeLogs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &timeLog, nil
}

func (s *memoryTimeLogStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*model.TimeLog, error) {
	if err := checkTimeLogFields(fields); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	timeLog, ok := s.timeLogs[id]
	if !ok {
		return nil, ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "cardId":
			timeLog.CardID = value.(string)
		case "startTime":
			timeLog.StartTime = value.(time.Time)
		case "endTime":
			timeLog.EndTime = value.(*time.Time)
		case "duration":
			timeLog.Duration = value.(int64)
		default:
			return nil, fmt.Errorf("unknown time log field %q", key)
		}
	}
	timeLog.UpdatedAt = time.Now()
	s.timeLogs[id] = timeLog
	return &timeLog, nil
}

func (s *memoryTimeLogStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.timeLogs[id]; !ok {
		return ErrNotFound
	}
	delete(s.timeLogs, id)
	return nil
}
