package store

import (
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection names, one per entity.
const (
	boardsCollection   = "boards"
	listsCollection    = "lists"
	cardsCollection    = "cards"
	timeLogsCollection = "timelogs"
)

// NewFirestoreStores returns Stores backed by the given Firestore client.
func NewFirestoreStores(client *firestore.Client) *Stores {
	return &Stores{
		Boards:   &firestoreBoardStore{client: client},
		Lists:    &firestoreListStore{client: client},
		Cards:    &firestoreCardStore{client: client},
		TimeLogs: &firestoreTimeLogStore{client: client},
	}
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// toUpdates converts a patch map to Firestore updates and refreshes
// updatedAt alongside.
func toUpdates(fields map[string]interface{}) []firestore.Update {
	updates := make([]firestore.Update, 0, len(fields)+1)
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: time.Now()})
	return updates
}
