package card

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"nobacklog/dto"
	"nobacklog/model"
	"nobacklog/store"
)

// CardController mounts the card CRUD routes.
func CardController(router *gin.Engine, stores *store.Stores) {
	routes := router.Group("/api/cards")
	{
		routes.POST("", func(c *gin.Context) {
			CreateCard(c, stores)
		})
		routes.GET("", func(c *gin.Context) {
			GetAllCards(c, stores)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetCardByID(c, stores)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateCard(c, stores)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteCard(c, stores)
		})
	}
}

func CreateCard(c *gin.Context, stores *store.Stores) {
	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure("Invalid input"))
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		c.JSON(http.StatusBadRequest, dto.Failure("Card title is required."))
		return
	}
	listID := strings.TrimSpace(req.ListID)
	if listID == "" {
		c.JSON(http.StatusBadRequest, dto.Failure("List ID is required."))
		return
	}

	priority := req.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !model.ValidPriority(priority) {
		c.JSON(http.StatusBadRequest, dto.Failure("Priority must be one of: low, medium, high."))
		return
	}

	ctx := c.Request.Context()

	if _, err := stores.Lists.GetByID(ctx, listID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Failure("List not found."))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	card, err := stores.Cards.Create(ctx, &model.Card{
		Title:       title,
		ListID:      listID,
		Description: req.Description,
		Priority:    priority,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, dto.Response{
		Success: true,
		Message: "Card successfully created.",
		Data:    card,
	})
}

func GetAllCards(c *gin.Context, stores *store.Stores) {
	ctx := c.Request.Context()

	cards, err := stores.Cards.List(ctx, c.Query("listId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	details := make([]dto.CardDetail, 0, len(cards))
	lists := make(map[string]*model.List)
	for _, card := range cards {
		list, ok := lists[card.ListID]
		if !ok {
			list, err = stores.Lists.GetByID(ctx, card.ListID)
			if err != nil && !errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
				return
			}
			lists[card.ListID] = list
		}
		details = append(details, dto.CardDetail{Card: card, List: list})
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Success: true,
		Count:   len(details),
		Data:    details,
	})
}

func GetCardByID(c *gin.Context, stores *store.Stores) {
	ctx := c.Request.Context()

	card, err := stores.Cards.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Failure("Card not found."))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	list, err := stores.Lists.GetByID(ctx, card.ListID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Data:    dto.CardDetail{Card: *card, List: list},
	})
}

func UpdateCard(c *gin.Context, stores *store.Stores) {
	var req dto.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure("Invalid input"))
		return
	}

	ctx := c.Request.Context()
	fields := make(map[string]interface{})

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			c.JSON(http.StatusBadRequest, dto.Failure("Card title is required."))
			return
		}
		fields["title"] = title
	}
	if req.ListID != nil {
		listID := strings.TrimSpace(*req.ListID)
		if listID == "" {
			c.JSON(http.StatusBadRequest, dto.Failure("List ID is required."))
			return
		}
		if _, err := stores.Lists.GetByID(ctx, listID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, dto.Failure("List not found."))
				return
			}
			c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
			return
		}
		fields["listId"] = listID
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Priority != nil {
		if !model.ValidPriority(*req.Priority) {
			c.JSON(http.StatusBadRequest, dto.Failure("Priority must be one of: low, medium, high."))
			return
		}
		fields["priority"] = *req.Priority
	}

	card, err := stores.Cards.Update(ctx, c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Failure("Card not found."))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: "Card successfully updated.",
		Data:    card,
	})
}

func DeleteCard(c *gin.Context, stores *store.Stores) {
	// No cascade: time logs under the card are left in place.
	err := stores.Cards.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Failure("Card not found."))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: "Card successfully deleted.",
	})
}
