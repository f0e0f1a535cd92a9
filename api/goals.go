package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"planner-api/domain"
)

func registerGoals(e *echo.Echo, store GoalStore, logger *log.Logger) {
	g := e.Group("/goals")
	g.GET("/", listGoals(store, logger))
	g.POST("/", createGoal(store))
	g.GET("/:id/", getGoal(store))
	g.PUT("/:id/", updateGoal(store, false))
	g.PATCH("/:id/", updateGoal(store, true))
	g.DELETE("/:id/", deleteGoal(store))
}

func listGoals(store GoalStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) (err error) {
		metrics := newRequestMetrics("/goals/", logger)
		defer func() {
			metrics.Log(c.Response().Status, err)
		}()

		fetchStart := time.Now()
		goals, fetchErr := store.ListGoals(c.Request().Context())
		metrics.ObserveFetch(time.Since(fetchStart))
		if fetchErr != nil {
			metrics.SetErrorStage("storage")
			err = writeError(c, fetchErr)
			return err
		}
		metrics.SetRecordsReturned(len(goals))

		encodeStart := time.Now()
		err = c.JSON(http.StatusOK, goals)
		metrics.ObserveEncode(time.Since(encodeStart))
		if err != nil {
			metrics.SetErrorStage("encode_response")
		}
		return err
	}
}

func createGoal(store GoalStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload domain.GoalPayload
		if err := decodePayload(c.Request(), &payload); err != nil {
			return writeError(c, err)
		}
		goal := domain.NewGoal()
		if err := payload.Apply(&goal, false); err != nil {
			return writeError(c, err)
		}
		created, err := store.InsertGoal(c.Request().Context(), goal)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, created)
	}
}

func getGoal(store GoalStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := recordID(c)
		if err != nil {
			return writeError(c, err)
		}
		goal, err := store.GetGoal(c.Request().Context(), id)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, goal)
	}
}

func updateGoal(store GoalStore, partial bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := recordID(c)
		if err != nil {
			return writeError(c, err)
		}
		var payload domain.GoalPayload
		if err := decodePayload(c.Request(), &payload); err != nil {
			return writeError(c, err)
		}
		ctx := c.Request().Context()
		goal, err := store.GetGoal(ctx, id)
		if err != nil {
			return writeError(c, err)
		}
		if err := payload.Apply(&goal, partial); err != nil {
			return writeError(c, err)
		}
		updated, err := store.UpdateGoal(ctx, goal)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, updated)
	}
}

func deleteGoal(store GoalStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := recordID(c)
		if err != nil {
			return writeError(c, err)
		}
		if err := store.DeleteGoal(c.Request().Context(), id); err != nil {
			return writeError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
