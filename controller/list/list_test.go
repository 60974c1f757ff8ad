package list

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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
	ListController(router, stores)
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

func seedBoard(t *testing.T, stores *store.Stores) *model.Board {
	t.Helper()
	board, err := stores.Boards.Create(context.Background(), &model.Board{Name: "Sprint 1"})
	require.NoError(t, err)
	return board
}

func TestCreateList(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, stores := setup()
		board := seedBoard(t, stores)

		code, env := perform(t, router, http.MethodPost, "/api/lists", gin.H{"name": "Backlog", "boardId": board.ID})
		require.Equal(t, http.StatusCreated, code)
		assert.True(t, env.Success)

		var list model.List
		require.NoError(t, json.Unmarshal(env.Data, &list))
		assert.Equal(t, "Backlog", list.Name)
		assert.Equal(t, board.ID, list.BoardID)
		assert.Equal(t, 0, list.Position)
	})

	t.Run("BoardMissing", func(t *testing.T) {
		router, stores := setup()
		code, env := perform(t, router, http.MethodPost, "/api/lists", gin.H{"name": "X", "boardId": "nonexistent-id"})
		require.Equal(t, http.StatusNotFound, code)
		assert.False(t, env.Success)

		lists, err := stores.Lists.List(context.Background(), "")
		require.NoError(t, err)
		assert.Empty(t, lists, "failed create must not write")
	})

	t.Run("MissingName", func(t *testing.T) {
		router, stores := setup()
		board := seedBoard(t, stores)
		code, env := perform(t, router, http.MethodPost, "/api/lists", gin.H{"boardId": board.ID})
		require.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "List name is required.", env.Message)
	})

	t.Run("MissingBoardID", func(t *testing.T) {
		router, _ := setup()
		code, env := perform(t, router, http.MethodPost, "/api/lists", gin.H{"name": "Backlog"})
		require.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "Board ID is required.", env.Message)
	})

	t.Run("WithPosition", func(t *testing.T) {
		router, stores := setup()
		board := seedBoard(t, stores)
		code, env := perform(t, router, http.MethodPost, "/api/lists", gin.H{"name": "Doing", "boardId": board.ID, "position": 2})
		require.Equal(t, http.StatusCreated, code)

		var list model.List
		require.NoError(t, json.Unmarshal(env.Data, &list))
		assert.Equal(t, 2, list.Position)
	})
}

func TestGetAllLists(t *testing.T) {
	t.Run("FilterByBoard", func(t *testing.T) {
		router, stores := setup()
		ctx := context.Background()
		board := seedBoard(t, stores)
		other, err := stores.Boards.Create(ctx, &model.Board{Name: "Sprint 2"})
		require.NoError(t, err)

		_, err = stores.Lists.Create(ctx, &model.List{Name: "A", BoardID: board.ID})
		require.NoError(t, err)
		_, err = stores.Lists.Create(ctx, &model.List{Name: "B", BoardID: other.ID})
		require.NoError(t, err)

		code, env := perform(t, router, http.MethodGet, "/api/lists?boardId="+board.ID, nil)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, 1, env.Count)

		var details []dto.ListDetail
		require.NoError(t, json.Unmarshal(env.Data, &details))
		require.Len(t, details, 1)
		assert.Equal(t, "A", details[0].Name)
		require.NotNil(t, details[0].Board)
		assert.Equal(t, "Sprint 1", details[0].Board.Name)
	})

	t.Run("NoMatches", func(t *testing.T) {
		router, stores := setup()
		board := seedBoard(t, stores)
		_, err := stores.Lists.Create(context.Background(), &model.List{Name: "A", BoardID: board.ID})
		require.NoError(t, err)

		code, env := perform(t, router, http.MethodGet, "/api/lists?boardId=unknown", nil)
		require.Equal(t, http.StatusOK, code)
		assert.True(t, env.Success)
		assert.Equal(t, 0, env.Count)
		assert.JSONEq(t, "[]", string(env.Data))
	})
}

func TestGetListByID(t *testing.T) {
	t.Run("ExpandsBoard", func(t *testing.T) {
		router, stores := setup()
		board := seedBoard(t, stores)
		list, err := stores.Lists.Create(context.Background(), &model.List{Name: "Backlog", BoardID: board.ID})
		require.NoError(t, err)

		code, env := perform(t, router, http.MethodGet, "/api/lists/"+list.ID, nil)
		require.Equal(t, http.StatusOK, code)

		var detail dto.ListDetail
		require.NoError(t, json.Unmarshal(env.Data, &detail))
		assert.Equal(t, list.ID, detail.ID)
		require.NotNil(t, detail.Board)
		assert.Equal(t, board.ID, detail.Board.ID)
	})

	t.Run("OrphanHasNullBoard", func(t *testing.T) {
		router, stores := setup()
		ctx := context.Background()
		board := seedBoard(t, stores)
		list, err := stores.Lists.Create(ctx, &model.List{Name: "Backlog", BoardID: board.ID})
		require.NoError(t, err)
		require.NoError(t, stores.Boards.Delete(ctx, board.ID))

		code, env := perform(t, router, http.MethodGet, "/api/lists/"+list.ID, nil)
		require.Equal(t, http.StatusOK, code)

		var detail dto.ListDetail
		require.NoError(t, json.Unmarshal(env.Data, &detail))
		assert.Nil(t, detail.Board)
	})

	t.Run("NotFound", func(t *testing.T) {
		router, _ := setup()
		code, env := perform(t, router, http.MethodGet, "/api/lists/missing-id", nil)
		require.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, "List not found.", env.Message)
	})
}

func TestUpdateList(t *testing.T) {
	t.Run("Reposition", func(t *testing.T) {
		router, stores := setup()
		board := seedBoard(t, stores)
		list, err := stores.Lists.Create(context.Background(), &model.List{Name: "Backlog", BoardID: board.ID})
		require.NoError(t, err)

		code, env := perform(t, router, http.MethodPut, "/api/lists/"+list.ID, gin.H{"position": 5})
		require.Equal(t, http.StatusOK, code)

		var updated model.List
		require.NoError(t, json.Unmarshal(env.Data, &updated))
		assert.Equal(t, 5, updated.Position)
		assert.Equal(t, "Backlog", updated.Name)
	})

	t.Run("BoardMissing", func(t *testing.T) {
		router, stores := setup()
		board := seedBoard(t, stores)
		list, err := stores.Lists.Create(context.Background(), &model.List{Name: "Backlog", BoardID: board.ID})
		require.NoError(t, err)

		code, _ := perform(t, router, http.MethodPut, "/api/lists/"+list.ID, gin.H{"boardId": "nonexistent-id"})
		require.Equal(t, http.StatusNotFound, code)
	})

	t.Run("BlankName", func(t *testing.T) {
		router, stores := setup()
		board := seedBoard(t, stores)
		list, err := stores.Lists.Create(context.Background(), &model.List{Name: "Backlog", BoardID: board.ID})
		require.NoError(t, err)

		code, _ := perform(t, router, http.MethodPut, "/api/lists/"+list.ID, gin.H{"name": "  "})
		require.Equal(t, http.StatusBadRequest, code)
	})
}

func TestDeleteList(t *testing.T) {
	router, stores := setup()
	board := seedBoard(t, stores)
	list, err := stores.Lists.Create(context.Background(), &model.List{Name: "Backlog", BoardID: board.ID})
	require.NoError(t, err)

	code, env := perform(t, router, http.MethodDelete, "/api/lists/"+list.ID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)

	code, _ = perform(t, router, http.MethodDelete, "/api/lists/"+list.ID, nil)
	require.Equal(t, http.StatusNotFound, code)
}
