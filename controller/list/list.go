package list

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"nobacklog/dto"
	"nobacklog/model"
	"nobacklog/store"
)

// ListController mounts the list CRUD routes.
func ListController(router *gin.Engine, stores *store.Stores) {
	routes := router.Group("/api/lists")
	{
		routes.POST("", func(c *gin.Context) {
			CreateList(c, stores)
		})
		routes.GET("", func(c *gin.Context) {
			GetAllLists(c, stores)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetListByID(c, stores)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateList(c, stores)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteList(c, stores)
		})
	}
}

func CreateList(c *gin.Context, stores *store.Stores) {
	var req dto.CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure("Invalid input"))
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, dto.Failure("List name is required."))
		return
	}
	boardID := strings.TrimSpace(req.BoardID)
	if boardID == "" {
		c.JSON(http.StatusBadRequest, dto.Failure("Board ID is required."))
		return
	}

	ctx := c.Request.Context()

	// The board must exist before the list can point at it.
	if _, err := stores.Boards.GetByID(ctx, boardID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Failure("Board not found."))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	newList := &model.List{Name: name, BoardID: boardID}
	if req.Position != nil {
		newList.Position = *req.Position
	}

	list, err := stores.Lists.Create(ctx, newList)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, dto.Response{
		Success: true,
		Message: "List successfully created.",
		Data:    list,
	})
}

func GetAllLists(c *gin.Context, stores *store.Stores) {
	ctx := c.Request.Context()

	lists, err := stores.Lists.List(ctx, c.Query("boardId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	details := make([]dto.ListDetail, 0, len(lists))
	boards := make(map[string]*model.Board)
	for _, l := range lists {
		board, ok := boards[l.BoardID]
		if !ok {
			board, err = stores.Boards.GetByID(ctx, l.BoardID)
			if err != nil && !errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
				return
			}
			boards[l.BoardID] = board
		}
		details = append(details, dto.ListDetail{List: l, Board: board})
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Success: true,
		Count:   len(details),
		Data:    details,
	})
}

func GetListByID(c *gin.Context, stores *store.Stores) {
	ctx := c.Request.Context()

	list, err := stores.Lists.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Failure("List not found."))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	// Expand the parent board; an orphaned list simply carries a null board.
	board, err := stores.Boards.GetByID(ctx, list.BoardID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Data:    dto.ListDetail{List: *list, Board: board},
	})
}

func UpdateList(c *gin.Context, stores *store.Stores) {
	var req dto.UpdateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure("Invalid input"))
		return
	}

	ctx := c.Request.Context()
	fields := make(map[string]interface{})

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, dto.Failure("List name is required."))
			return
		}
		fields["name"] = name
	}
	if req.BoardID != nil {
		boardID := strings.TrimSpace(*req.BoardID)
		if boardID == "" {
			c.JSON(http.StatusBadRequest, dto.Failure("Board ID is required."))
			return
		}
		if _, err := stores.Boards.GetByID(ctx, boardID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, dto.Failure("Board not found."))
				return
			}
			c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
			return
		}
		fields["boardId"] = boardID
	}
	if req.Position != nil {
		fields["position"] = *req.Position
	}

	list, err := stores.Lists.Update(ctx, c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Failure("List not found."))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: "List successfully updated.",
		Data:    list,
	})
}

func DeleteList(c *gin.Context, stores *store.Stores) {
	// No cascade: cards under the list are left in place.
	err := stores.Lists.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Failure("List not found."))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: "List successfully deleted.",
	})
}
