package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"planner-api/domain"
)

func registerEvents(e *echo.Echo, store EventStore, logger *log.Logger) {
	g := e.Group("/events")
	g.GET("/", listEvents(store, logger))
	g.POST("/", createEvent(store))
	g.GET("/:id/", getEvent(store))
	g.PUT("/:id/", updateEvent(store, false))
	g.PATCH("/:id/", updateEvent(store, true))
	g.DELETE("/:id/", deleteEvent(store))
}

func listEvents(store EventStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) (err error) {
		metrics := newRequestMetrics("/events/", logger)
		defer func() {
			metrics.Log(c.Response().Status, err)
		}()

		fetchStart := time.Now()
		events, fetchErr := store.ListEvents(c.Request().Context())
		metrics.ObserveFetch(time.Since(fetchStart))
		if fetchErr != nil {
			metrics.SetErrorStage("storage")
			err = writeError(c, fetchErr)
			return err
		}
		metrics.SetRecordsReturned(len(events))

		encodeStart := time.Now()
		err = c.JSON(http.StatusOK, events)
		metrics.ObserveEncode(time.Since(encodeStart))
		if err != nil {
			metrics.SetErrorStage("encode_response")
		}
		return err
	}
}

func createEvent(store EventStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload domain.EventPayload
		if err := decodePayload(c.Request(), &payload); err != nil {
			return writeError(c, err)
		}
		event := domain.NewEvent()
		if err := payload.Apply(&event, false); err != nil {
			return writeError(c, err)
		}
		created, err := store.InsertEvent(c.Request().Context(), event)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, created)
	}
}

func getEvent(store EventStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := recordID(c)
		if err != nil {
			return writeError(c, err)
		}
		event, err := store.GetEvent(c.Request().Context(), id)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, event)
	}
}

func updateEvent(store EventStore, partial bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := recordID(c)
		if err != nil {
			return writeError(c, err)
		}
		var payload domain.EventPayload
		if err := decodePayload(c.Request(), &payload); err != nil {
			return writeError(c, err)
		}
		ctx := c.Request().Context()
		event, err := store.GetEvent(ctx, id)
		if err != nil {
			return writeError(c, err)
		}
		if err := payload.Apply(&event, partial); err != nil {
			return writeError(c, err)
		}
		updated, err := store.UpdateEvent(ctx, event)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, updated)
	}
}

func deleteEvent(store EventStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := recordID(c)
		if err != nil {
			return writeError(c, err)
		}
		if err := store.DeleteEvent(c.Request().Context(), id); err != nil {
			return writeError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
