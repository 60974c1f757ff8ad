package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"nobacklog/model"
)

type firestoreCardStore struct {
	client *firestore.Client
}

func (s *firestoreCardStore) Create(ctx context.Context, card *model.Card) (*model.Card, error) {
	if err := checkCard(card); err != nil {
		return nil, err
	}

	now := time.Now()
	card.ID = uuid.New().String()
	card.CreatedAt = now
	card.UpdatedAt = now

	if _, err := s.client.Collection(cardsCollection).Doc(card.ID).Set(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *firestoreCardStore) List(ctx context.Context, listID string) ([]model.Card, error) {
	query := s.client.Collection(cardsCollection).Query
	if listID != "" {
		query = query.Where("listId", "==", listID)
	}
	iter := query.Documents(ctx)
	defer iter.Stop()

	cards := make([]model.Card, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var card model.Card
		if err := doc.DataTo(&card); err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func (s *firestoreCardStore) GetByID(ctx context.Context, id string) (*model.Card, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	snap, err := s.client.Collection(cardsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var card model.Card
	if err := snap.DataTo(&card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (s *firestoreCardStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*model.Card, error) {
	if err := checkCardFields(fields); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, ErrNotFound
	}

	docRef := s.client.Collection(cardsCollection).Doc(id)
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
	var card model.Card
	if err := snap.DataTo(&card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (s *firestoreCardStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrNotFound
	}

	docRef := s.client.Collection(cardsCollection).Doc(id)
	if _, err := docRef.Get(ctx); err != nil {
		if isNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	_, err := docRef.Delete(ctx)
	return err
}
