package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"nobacklog/model"
)

type firestoreBoardStore struct {
	client *firestore.Client
}

func (s *firestoreBoardStore) Create(ctx context.Context, board *model.Board) (*model.Board, error) {
	if err := checkBoard(board); err != nil {
		return nil, err
	}

	now := time.Now()
	board.ID = uuid.New().String()
	board.CreatedAt = now
	board.UpdatedAt = now

	if _, err := s.client.Collection(boardsCollection).Doc(board.ID).Set(ctx, board); err != nil {
		return nil, err
	}
	return board, nil
}

func (s *firestoreBoardStore) List(ctx context.Context) ([]model.Board, error) {
	iter := s.client.Collection(boardsCollection).Documents(ctx)
	defer iter.Stop()

	boards := make([]model.Board, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var board model.Board
		if err := doc.DataTo(&board); err != nil {
			return nil, err
		}
		boards = append(boards, board)
	}
	return boards, nil
}

func (s *firestoreBoardStore) GetByID(ctx context.Context, id string) (*model.Board, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	snap, err := s.client.Collection(boardsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var board model.Board
	if err := snap.DataTo(&board); err != nil {
		return nil, err
	}
	return &board, nil
}

func (s *firestoreBoardStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*model.Board, error) {
	if err := checkBoardFields(fields); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, ErrNotFound
	}

	docRef := s.client.Collection(boardsCollection).Doc(id)
	if _, err := docRef.Update(ctx, toUpdates(fields)); err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	snap, err := docRef.Get(ctx)
	if err != nil {
		return nil, err
	}
	var board model.Board
	if err := snap.DataTo(&board); err != nil {
		return nil, err
	}
	return &board, nil
}

func (s *firestoreBoardStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrNotFound
	}

	// Firestore deletes are no-ops for absent documents, so look the
	// document up first to report a miss.
	docRef := s.client.Collection(boardsCollection).Doc(id)
	if _, err := docRef.Get(ctx); err != nil {
		if isNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	_, err := docRef.Delete(ctx)
	return err
}
