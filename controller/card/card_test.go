package card

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nobacklog/dto"
	"nobacklog/model"
	"nobacklog/store"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   int             `json:"count"`
	Data    json.RawMessage `json:"data"`
}

func setup() (*gin.Engine, *store.Stores) {
	gin.SetMode(gin.TestMode)
	stores := store.NewMemoryStores()
	router := gin.New()
	CardController(router, stores)
	return router, stores
}

func perform(t *testing.T, router *gin.Engine, method, path string, body interface{}) (int, envelope) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	if body == nil {
		raw = nil
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec.Code, env
}

func seedList(t *testing.T, stores *store.Stores) *model.List {
	t.Helper()
	ctx := context.Background()
	board, err := stores.Boards.Create(ctx, &model.Board{Name: "Sprint 1"})
	require.NoError(t, err)
	list, err := stores.Lists.Create(ctx, &model.List{Name: "Backlog", BoardID: board.ID})
	require.NoError(t, err)
	return list
}

func TestCreateCard(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, stores := setup()
		list := seedList(t, stores)

		code, env := perform(t, router, http.MethodPost, "/api/cards", gin.H{
			"title":    "Fix bug",
			"listId":   list.ID,
			"priority": "high",
		})
		require.Equal(t, http.StatusCreated, code)

		var card model.Card
		require.NoError(t, json.Unmarshal(env.Data, &card))
		assert.Equal(t, "Fix bug", card.Title)
		assert.Equal(t, "high", card.Priority)
		assert.Equal(t, float64(0), card.TimeTracked)
	})

	t.Run("DefaultPriority", func(t *testing.T) {
		router, stores := setup()
		list := seedList(t, stores)

		code, env := perform(t, router, http.MethodPost, "/api/cards", gin.H{"title": "Fix bug", "listId": list.ID})
		require.Equal(t, http.StatusCreated, code)

		var card model.Card
		require.NoError(t, json.Unmarshal(env.Data, &card))
		assert.Equal(t, "medium", card.Priority)
	})

	t.Run("MissingTitle", func(t *testing.T) {
		router, stores := setup()
		list := seedList(t, stores)
		code, env := perform(t, router, http.MethodPost, "/api/cards", gin.H{"listId": list.ID})
		require.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "Card title is required.", env.Message)

		cards, err := stores.Cards.List(context.Background(), "")
		require.NoError(t, err)
		assert.Empty(t, cards)
	})

	t.Run("InvalidPriority", func(t *testing.T) {
		router, stores := setup()
		list := seedList(t, stores)
		code, env := perform(t, router, http.MethodPost, "/api/cards", gin.H{
			"title":    "Fix bug",
			"listId":   list.ID,
			"priority": "urgent",
		})
		require.Equal(t, http.StatusBadRequest, code)
		assert.False(t, env.Success)
	})

	t.Run("ListMissing", func(t *testing.T) {
		router, stores := setup()
		code, env := perform(t, router, http.MethodPost, "/api/cards", gin.H{"title": "Fix bug", "listId": "nonexistent-id"})
		require.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "List not found.", env.Message)

		cards, err := stores.Cards.List(context.Background(), "")
		require.NoError(t, err)
		assert.Empty(t, cards)
	})

	t.Run("TitleTooLong", func(t *testing.T) {
		// Length bounds are schema-level, enforced by the store, so the
		// violation surfaces as a store failure rather than a 400.
		router, stores := setup()
		list := seedList(t, stores)
		code, env := perform(t, router, http.MethodPost, "/api/cards", gin.H{
			"title":  strings.Repeat("x", 101),
			"listId": list.ID,
		})
		require.Equal(t, http.StatusInternalServerError, code)
		assert.False(t, env.Success)
		assert.Contains(t, env.Message, "title")
	})
}

func TestGetAllCards(t *testing.T) {
	router, stores := setup()
	ctx := context.Background()
	list := seedList(t, stores)
	_, err := stores.Cards.Create(ctx, &model.Card{Title: "A", ListID: list.ID, Priority: "low"})
	require.NoError(t, err)

	t.Run("FilterMatch", func(t *testing.T) {
		code, env := perform(t, router, http.MethodGet, "/api/cards?listId="+list.ID, nil)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, 1, env.Count)

		var details []dto.CardDetail
		require.NoError(t, json.Unmarshal(env.Data, &details))
		require.Len(t, details, 1)
		require.NotNil(t, details[0].List)
		assert.Equal(t, list.ID, details[0].List.ID)
	})

	t.Run("NoMatches", func(t *testing.T) {
		code, env := perform(t, router, http.MethodGet, "/api/cards?listId=unknown", nil)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, 0, env.Count)
		assert.JSONEq(t, "[]", string(env.Data))
	})
}

func TestGetCardByID(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		router, stores := setup()
		list := seedList(t, stores)
		created, err := stores.Cards.Create(context.Background(), &model.Card{
			Title:       "Fix bug",
			ListID:      list.ID,
			Description: "crash on save",
			Priority:    "high",
		})
		require.NoError(t, err)

		code, env := perform(t, router, http.MethodGet, "/api/cards/"+created.ID, nil)
		require.Equal(t, http.StatusOK, code)

		var detail dto.CardDetail
		require.NoError(t, json.Unmarshal(env.Data, &detail))
		assert.Equal(t, created.Title, detail.Title)
		assert.Equal(t, created.Description, detail.Description)
		assert.Equal(t, created.Priority, detail.Priority)
		require.NotNil(t, detail.List)
		assert.Equal(t, list.Name, detail.List.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		router, _ := setup()
		code, env := perform(t, router, http.MethodGet, "/api/cards/missing-id", nil)
		require.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "Card not found.", env.Message)
	})
}

func TestUpdateCard(t *testing.T) {
	t.Run("MoveAndRetitle", func(t *testing.T) {
		router, stores := setup()
		ctx := context.Background()
		list := seedList(t, stores)
		target, err := stores.Lists.Create(ctx, &model.List{Name: "Done", BoardID: list.BoardID})
		require.NoError(t, err)
		card, err := stores.Cards.Create(ctx, &model.Card{Title: "Fix bug", ListID: list.ID, Priority: "medium"})
		require.NoError(t, err)

		code, env := perform(t, router, http.MethodPut, "/api/cards/"+card.ID, gin.H{
			"title":  "Fixed bug",
			"listId": target.ID,
		})
		require.Equal(t, http.StatusOK, code)

		var updated model.Card
		require.NoError(t, json.Unmarshal(env.Data, &updated))
		assert.Equal(t, "Fixed bug", updated.Title)
		assert.Equal(t, target.ID, updated.ListID)
		assert.Equal(t, "medium", updated.Priority, "untouched fields stay put")
	})

	t.Run("BlankTitle", func(t *testing.T) {
		router, stores := setup()
		list := seedList(t, stores)
		card, err := stores.Cards.Create(context.Background(), &model.Card{Title: "Fix bug", ListID: list.ID, Priority: "low"})
		require.NoError(t, err)

		code, _ := perform(t, router, http.MethodPut, "/api/cards/"+card.ID, gin.H{"title": "  "})
		require.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("InvalidPriority", func(t *testing.T) {
		router, stores := setup()
		list := seedList(t, stores)
		card, err := stores.Cards.Create(context.Background(), &model.Card{Title: "Fix bug", ListID: list.ID, Priority: "low"})
		require.NoError(t, err)

		code, _ := perform(t, router, http.MethodPut, "/api/cards/"+card.ID, gin.H{"priority": "critical"})
		require.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("ListMissing", func(t *testing.T) {
		router, stores := setup()
		list := seedList(t, stores)
		card, err := stores.Cards.Create(context.Background(), &model.Card{Title: "Fix bug", ListID: list.ID, Priority: "low"})
		require.NoError(t, err)

		code, _ := perform(t, router, http.MethodPut, "/api/cards/"+card.ID, gin.H{"listId": "nonexistent-id"})
		require.Equal(t, http.StatusNotFound, code)
	})

	t.Run("NotFound", func(t *testing.T) {
		router, _ := setup()
		code, _ := perform(t, router, http.MethodPut, "/api/cards/missing-id", gin.H{"title": "X"})
		require.Equal(t, http.StatusNotFound, code)
	})
}

func TestDeleteCard(t *testing.T) {
	router, stores := setup()
	list := seedList(t, stores)
	card, err := stores.Cards.Create(context.Background(), &model.Card{Title: "Fix bug", ListID: list.ID, Priority: "low"})
	require.NoError(t, err)

	code, env := perform(t, router, http.MethodDelete, "/api/cards/"+card.ID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	assert.Empty(t, env.Data)

	code, _ = perform(t, router, http.MethodDelete, "/api/cards/"+card.ID, nil)
	require.Equal(t, http.StatusNotFound, code)
}
