package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"nobacklog/model"
)

type firestoreListStore struct {
	client *firestore.Client
}

func (s *firestoreListStore) Create(ctx context.Context, list *model.List) (*model.List, error) {
	if err := checkList(list); err != nil {
		return nil, err
	}

	now := time.Now()
	list.ID = uuid.New().String()
	list.CreatedAt = now
	list.UpdatedAt = now

	if _, err := s.client.Collection(listsCollection).Doc(list.ID).Set(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *firestoreListStore) List(ctx context.Context, boardID string) ([]model.List, error) {
	query := s.client.Collection(listsCollection).Query
	if boardID != "" {
		query = query.Where("boardId", "==", boardID)
	}
	iter := query.Documents(ctx)
	defer iter.Stop()

	lists := make([]model.List, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var list model.List
		if err := doc.DataTo(&list); err != nil {
			return nil, err
		}
		lists = append(lists, list)
	}
	return lists, nil
}

func (s *firestoreListStore) GetByID(ctx context.Context, id string) (*model.List, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	snap, err := s.client.Collection(listsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var list model.List
	if err := snap.DataTo(&list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *firestoreListStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*model.List, error) {
	if err := checkListFields(fields); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, ErrNotFound
	}

	docRef := s.client.Collection(listsCollection).Doc(id)
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
	var list model.List
	if err := snap.DataTo(&list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *firestoreListStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrNotFound
	}

	docRef := s.client.Collection(listsCollection).Doc(id)
	if _, err := docRef.Get(ctx); err != nil {
		if isNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	_, err := docRef.Delete(ctx)
	return err
}
