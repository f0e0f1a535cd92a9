package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

// Register wires up all API routes on the provided Echo instance. Each
// resource kind gets the same six-route CRUD group.
func Register(e *echo.Echo, store Storage, logger *log.Logger) {
	registerTasks(e, store, logger)
	registerHabits(e, store, logger)
	registerGoals(e, store, logger)
	registerEvents(e, store, logger)
	e.GET("/healthz", healthz(store))
}

func healthz(store Storage) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := store.Ping(c.Request().Context()); err != nil {
			return c.String(http.StatusServiceUnavailable, err.Error())
		}
		return c.NoContent(http.StatusOK)
	}
}
