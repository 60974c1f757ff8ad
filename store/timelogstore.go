package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"nobacklog/model"
)

type firestoreTimeLogStore struct {
	client *firestore.Client
}

func (s *firestoreTimeLogStore) Create(ctx context.Context, timeLog *model.TimeLog) (*model.TimeLog, error) {
	if err := checkTimeLog(timeLog); err != nil {
		return nil, err
	}

	now := time.Now()
	timeLog.ID = uuid.New().String()
	timeLog.CreatedAt = now
	timeLog.UpdatedAt = now

	if _, err := s.client.Collection(timeLogsCollection).Doc(timeLog.ID).Set(ctx, timeLog); err != nil {
		return nil, err
	}
	return timeLog, nil
}

func (s *firestoreTimeLogStore) List(ctx context.Context, cardID string) ([]model.TimeLog, error) {
	query := s.client.Collection(timeLogsCollection).Query
	if cardID != "" {
		query = query.Where("cardId", "==", cardID)
	}
	iter := query.Documents(ctx)
	defer iter.Stop()

	timeLogs := make([]model.TimeLog, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var timeLog model.TimeLog
		if err := doc.DataTo(&timeLog); err != nil {
			return nil, err
		}
		timeLogs = append(timeLogs, timeLog)
	}
	return timeLogs, nil
}

func (s *firestoreTimeLogStore) GetByID(ctx context.Context, id string) (*model.TimeLog, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	snap, err := s.client.Collection(timeLogsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var timeLog model.TimeLog
	if err := snap.DataTo(&timeLog); err != nil {
		return nil, err
	}
	return &timeLog, nil
}

func (s *firestoreTimeLogStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*model.TimeLog, error) {
	if err := checkTimeLogFields(fields); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, ErrNotFound
	}

	docRef := s.client.Collection(timeLogsCollection).Doc(id)
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
	var timeLog model.TimeLog
	if err := snap.DataTo(&timeLog); err != nil {
		return nil, err
	}
	return &timeLog, nil
}

func (s *firestoreTimeLogStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrNotFound
	}

	docRef := s.client.Collection(timeLogsCollection).Doc(id)
	if _, err := docRef.Get(ctx); err != nil {
		if isNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	_, err := docRef.Delete(ctx)
	return err
}
