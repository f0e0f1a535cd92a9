package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"planner-api/domain"
)

func registerHabits(e *echo.Echo, store HabitStore, logger *log.Logger) {
	g := e.Group("/habits")
	g.GET("/", listHabits(store, logger))
	g.POST("/", createHabit(store))
	g.GET("/:id/", getHabit(store))
	g.PUT("/:id/", updateHabit(store, false))
	g.PATCH("/:id/", updateHabit(store, true))
	g.DELETE("/:id/", deleteHabit(store))
}

func listHabits(store HabitStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) (err error) {
		metrics := newRequestMetrics("/habits/", logger)
		defer func() {
			metrics.Log(c.Response().Status, err)
		}()

		fetchStart := time.Now()
		habits, fetchErr := store.ListHabits(c.Request().Context())
		metrics.ObserveFetch(time.Since(fetchStart))
		if fetchErr != nil {
			metrics.SetErrorStage("storage")
			err = writeError(c, fetchErr)
			return err
		}
		metrics.SetRecordsReturned(len(habits))

		encodeStart := time.Now()
		err = c.JSON(http.StatusOK, habits)
		metrics.ObserveEncode(time.Since(encodeStart))
		if err != nil {
			metrics.SetErrorStage("encode_response")
		}
		return err
	}
}

func createHabit(store HabitStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload domain.HabitPayload
		if err := decodePayload(c.Request(), &payload); err != nil {
			return writeError(c, err)
		}
		var habit domain.Habit
		if err := payload.Apply(&habit, false); err != nil {
			return writeError(c, err)
		}
		created, err := store.InsertHabit(c.Request().Context(), habit)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, created)
	}
}

func getHabit(store HabitStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := recordID(c)
		if err != nil {
			return writeError(c, err)
		}
		habit, err := store.GetHabit(c.Request().Context(), id)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, habit)
	}
}

func updateHabit(store HabitStore, partial bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := recordID(c)
		if err != nil {
			return writeError(c, err)
		}
		var payload domain.HabitPayload
		if err := decodePayload(c.Request(), &payload); err != nil {
			return writeError(c, err)
		}
		ctx := c.Request().Context()
		habit, err := store.GetHabit(ctx, id)
		if err != nil {
			return writeError(c, err)
		}
		if err := payload.Apply(&habit, partial); err != nil {
			return writeError(c, err)
		}
		updated, err := store.UpdateHabit(ctx, habit)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, updated)
	}
}

func deleteHabit(store HabitStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := recordID(c)
		if err != nil {
			return writeError(c, err)
		}
		if err := store.DeleteHabit(c.Request().Context(), id); err != nil {
			return writeError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
