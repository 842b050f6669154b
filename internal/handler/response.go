package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"karaku/backend/internal/logger"
	"karaku/backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

type acceptedResponse struct {
	Status string `json:"status"`
}

func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
	case errors.Is(err, service.ErrEmptyTranslation):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "no translation available"})
	case errors.Is(err, service.ErrDecode):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "invalid upstream response"})
	case errors.Is(err, service.ErrNetwork):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "upstream unavailable"})
	default:
		logger.Error("request failed", "module", "handler", "action", "request", "resource", "http", "result", "failed", "path", c.Path(), "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// Error returns a JSON error response with the given status and message.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}
