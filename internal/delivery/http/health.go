package http

import (
	"net/http"

	"crypto-scanner/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupHealth(base *echo.Group) {
	base.GET("/v1/health", h.Health)
}

func (h *HttpAPIHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("ok", nil))
}
