package board

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"nobacklog/dto"
	"nobacklog/model"
	"nobacklog/store"
)

// BoardController mounts the board CRUD routes.
func BoardController(router *gin.Engine, stores *store.Stores) {
	routes := router.Group("/api/boards")
	{
		routes.POST("", func(c *gin.Context) {
			CreateBoard(c, stores)
		})
		routes.GET("", func(c *gin.Context) {
			GetAllBoards(c, stores)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetBoardByID(c, stores)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateBoard(c, stores)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteBoard(c, stores)
		})
	}
}

func CreateBoard(c *gin.Context, stores *store.Stores) {
	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure("Invalid input"))
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, dto.Failure("Board name is required."))
		return
	}

	board, err := stores.Boards.Create(c.Request.Context(), &model.Board{Name: name})
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, dto.Response{
		Success: true,
		Message: "Board successfully created.",
		Data:    board,
	})
}

func GetAllBoards(c *gin.Context, stores *store.Stores) {
	boards, err := stores.Boards.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Success: true,
		Count:   len(boards),
		Data:    boards,
	})
}

func GetBoardByID(c *gin.Context, stores *store.Stores) {
	board, err := stores.Boards.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Failure("Board not found."))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.Response{Success: true, Data: board})
}

func UpdateBoard(c *gin.Context, stores *store.Stores) {
	var req dto.UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure("Invalid input"))
		return
	}

	fields := make(map[string]interface{})
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, dto.Failure("Board name is required."))
			return
		}
		fields["name"] = name
	}

	board, err := stores.Boards.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Failure("Board not found."))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: "Board successfully updated.",
		Data:    board,
	})
}

func DeleteBoard(c *gin.Context, stores *store.Stores) {
	// No cascade: lists under the board are left in place.
	err := stores.Boards.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Failure("Board not found."))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: "Board successfully deleted.",
	})
}
