package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"portfolio-api/internal/api"

	"github.com/labstack/echo/v4"
)

// InternalError 記錄原始錯誤並回傳不含細節的 500
func InternalError(c echo.Context, err error) error {
	slog.ErrorContext(c.Request().Context(), "request failed",
		"method", c.Request().Method,
		"path", c.Path(),
		"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
		"error", err,
	)
	return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal server error"})
}

// BadRequest 回傳 400
func BadRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: msg})
}

// IntParam 解析正整數 path 參數
func IntParam(c echo.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
