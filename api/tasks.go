package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"planner-api/domain"
)

func registerTasks(e *echo.Echo, store TaskStore, logger *log.Logger) {
	g := e.Group("/tasks")
	g.GET("/", listTasks(store, logger))
	g.POST("/", createTask(store))
	g.GET("/:id/", getTask(store))
	g.PUT("/:id/", updateTask(store, false))
	g.PATCH("/:id/", updateTask(store, true))
	g.DELETE("/:id/", deleteTask(store))
}

func listTasks(store TaskStore, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) (err error) {
		metrics := newRequestMetrics("/tasks/", logger)
		defer func() {
			metrics.Log(c.Response().Status, err)
		}()

		fetchStart := time.Now()
		tasks, fetchErr := store.ListTasks(c.Request().Context())
		metrics.ObserveFetch(time.Since(fetchStart))
		if fetchErr != nil {
			metrics.SetErrorStage("storage")
			err = writeError(c, fetchErr)
			return err
		}
		metrics.SetRecordsReturned(len(tasks))

		encodeStart := time.Now()
		err = c.JSON(http.StatusOK, tasks)
		metrics.ObserveEncode(time.Since(encodeStart))
		if err != nil {
			metrics.SetErrorStage("encode_response")
		}
		return err
	}
}

func createTask(store TaskStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload domain.TaskPayload
		if err := decodePayload(c.Request(), &payload); err != nil {
			return writeError(c, err)
		}
		task := domain.NewTask()
		if err := payload.Apply(&task, false); err != nil {
			return writeError(c, err)
		}
		created, err := store.InsertTask(c.Request().Context(), task)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusCreated, created)
	}
}

func getTask(store TaskStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := recordID(c)
		if err != nil {
			return writeError(c, err)
		}
		task, err := store.GetTask(c.Request().Context(), id)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, task)
	}
}

func updateTask(store TaskStore, partial bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := recordID(c)
		if err != nil {
			return writeError(c, err)
		}
		var payload domain.TaskPayload
		if err := decodePayload(c.Request(), &payload); err != nil {
			return writeError(c, err)
		}
		ctx := c.Request().Context()
		task, err := store.GetTask(ctx, id)
		if err != nil {
			return writeError(c, err)
		}
		if err := payload.Apply(&task, partial); err != nil {
			return writeError(c, err)
		}
		updated, err := store.UpdateTask(ctx, task)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, updated)
	}
}

func deleteTask(store TaskStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := recordID(c)
		if err != nil {
			return writeError(c, err)
		}
		if err := store.DeleteTask(c.Request().Context(), id); err != nil {
			return writeError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
