package timelog

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"nobacklog/dto"
	"nobacklog/model"
	"nobacklog/store"
)

// TimeLogController mounts the time log CRUD routes.
func TimeLogController(router *gin.Engine, stores *store.Stores) {
	routes := router.Group("/api/timelogs")
	{
		routes.POST("", func(c *gin.Context) {
			CreateTimeLog(c, stores)
		})
		routes.GET("", func(c *gin.Context) {
			GetAllTimeLogs(c, stores)
		})
		routes.GET("/:id", func(c *gin.Context) {
			GetTimeLogByID(c, stores)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateTimeLog(c, stores)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteTimeLog(c, stores)
		})
	}
}

func CreateTimeLog(c *gin.Context, stores *store.Stores) {
	var req dto.CreateTimeLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure("Invalid input"))
		return
	}

	cardID := strings.TrimSpace(req.CardID)
	if cardID == "" {
		c.JSON(http.StatusBadRequest, dto.Failure("Card ID is required."))
		return
	}
	if req.StartTime == "" {
		c.JSON(http.StatusBadRequest, dto.Failure("Start time is required."))
		return
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure("Start time must be a valid date."))
		return
	}

	var endTime *time.Time
	if req.EndTime != "" {
		parsed, err := time.Parse(time.RFC3339, req.EndTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Failure("End time must be a valid date."))
			return
		}
		if !parsed.After(startTime) {
			c.JSON(http.StatusBadRequest, dto.Failure("End time must be after start time."))
			return
		}
		endTime = &parsed
	}

	ctx := c.Request.Context()

	if _, err := stores.Cards.GetByID(ctx, cardID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Failure("Card not found."))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	newTimeLog := &model.TimeLog{
		CardID:    cardID,
		StartTime: startTime,
		EndTime:   endTime,
	}
	// Duration stays 0 while the interval is open.
	if endTime != nil {
		newTimeLog.Duration = endTime.Sub(startTime).Milliseconds()
	}

	timeLog, err := stores.TimeLogs.Create(ctx, newTimeLog)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, dto.Response{
		Success: true,
		Message: "Time log successfully created.",
		Data:    timeLog,
	})
}

func GetAllTimeLogs(c *gin.Context, stores *store.Stores) {
	ctx := c.Request.Context()

	timeLogs, err := stores.TimeLogs.List(ctx, c.Query("cardId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	details := make([]dto.TimeLogDetail, 0, len(timeLogs))
	cards := make(map[string]*model.Card)
	for _, timeLog := range timeLogs {
		card, ok := cards[timeLog.CardID]
		if !ok {
			card, err = stores.Cards.GetByID(ctx, timeLog.CardID)
			if err != nil && !errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
				return
			}
			cards[timeLog.CardID] = card
		}
		details = append(details, dto.TimeLogDetail{TimeLog: timeLog, Card: card})
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Success: true,
		Count:   len(details),
		Data:    details,
	})
}

func GetTimeLogByID(c *gin.Context, stores *store.Stores) {
	ctx := c.Request.Context()

	timeLog, err := stores.TimeLogs.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Failure("Time log not found."))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	card, err := stores.Cards.GetByID(ctx, timeLog.CardID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Data:    dto.TimeLogDetail{TimeLog: *timeLog, Card: card},
	})
}

func UpdateTimeLog(c *gin.Context, stores *store.Stores) {
	var req dto.UpdateTimeLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure("Invalid input"))
		return
	}

	ctx := c.Request.Context()
	fields := make(map[string]interface{})

	if req.CardID != nil {
		cardID := strings.TrimSpace(*req.CardID)
		if cardID == "" {
			c.JSON(http.StatusBadRequest, dto.Failure("Card ID is required."))
			return
		}
		if _, err := stores.Cards.GetByID(ctx, cardID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, dto.Failure("Card not found."))
				return
			}
			c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
			return
		}
		fields["cardId"] = cardID
	}

	var startTime, endTime *time.Time
	if req.StartTime != nil {
		parsed, err := time.Parse(time.RFC3339, *req.StartTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Failure("Start time must be a valid date."))
			return
		}
		startTime = &parsed
	}
	if req.EndTime != nil {
		parsed, err := time.Parse(time.RFC3339, *req.EndTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Failure("End time must be a valid date."))
			return
		}
		endTime = &parsed
	}

	// When only one side of the interval changes, the stored record supplies
	// the other side so the effective pair can be checked and the duration
	// recomputed.
	if startTime != nil || endTime != nil {
		existing, err := stores.TimeLogs.GetByID(ctx, c.Param("id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, dto.Failure("Time log not found."))
				return
			}
			c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
			return
		}

		effectiveStart := existing.StartTime
		if startTime != nil {
			effectiveStart = *startTime
			fields["startTime"] = *startTime
		}
		effectiveEnd := existing.EndTime
		if endTime != nil {
			effectiveEnd = endTime
			fields["endTime"] = endTime
		}

		if effectiveEnd != nil {
			if !effectiveEnd.After(effectiveStart) {
				c.JSON(http.StatusBadRequest, dto.Failure("End time must be after start time."))
				return
			}
			fields["duration"] = effectiveEnd.Sub(effectiveStart).Milliseconds()
		}
	}

	timeLog, err := stores.TimeLogs.Update(ctx, c.Param("id"), fields)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Failure("Time log not found."))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: "Time log successfully updated.",
		Data:    timeLog,
	})
}

func DeleteTimeLog(c *gin.Context, stores *store.Stores) {
	err := stores.TimeLogs.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Failure("Time log not found."))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Failure(err.Error()))
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: "Time log successfully deleted.",
	})
}
