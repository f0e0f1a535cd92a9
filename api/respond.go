package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"

	"planner-api/domain"
)

const payloadMaxSize = 1 << 20

type errorResponse struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// writeError translates domain errors into the structured error contract:
// 400 for validation failures, 404 for missing ids, 500 for everything
// else. Store failures are logged here and surface as opaque 500s.
func writeError(c echo.Context, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "validation_error",
			Field:   verr.Field,
			Message: verr.Message,
		})
	}
	var nferr *domain.NotFoundError
	if errors.As(err, &nferr) {
		return c.JSON(http.StatusNotFound, errorResponse{
			Error:   "not_found",
			Message: nferr.Error(),
		})
	}
	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, errorResponse{
		Error:   "internal",
		Message: "internal server error",
	})
}

// decodePayload reads a JSON request body into dst with a size cap.
// Unknown fields, including computed ones like hours and checks, are
// silently dropped because dst has no slot for them.
func decodePayload(r *http.Request, dst any) error {
	lr := io.LimitReader(r.Body, payloadMaxSize)
	if err := sonic.ConfigStd.NewDecoder(lr).Decode(dst); err != nil {
		return &domain.ValidationError{Field: "body", Message: "invalid JSON payload"}
	}
	return nil
}

// recordID parses the :id path parameter.
func recordID(c echo.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &domain.ValidationError{Field: "id", Message: strconv.Quote(raw) + " is not a record id"}
	}
	return id, nil
}
