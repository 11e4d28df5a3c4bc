package http

import (
	"net/http"

	"crypto-scanner/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupScan(base *echo.Group) {
	v1 := base.Group("/v1/scan")
	{
		v1.GET("/:symbol", h.ScanSymbol)
		v1.POST("/batch", h.BatchScan)
	}
}

func (h *HttpAPIHandler) ScanSymbol(c echo.Context) error {
	ctx := c.Request().Context()

	symbol := c.Param("symbol")
	interval := c.QueryParam("interval")

	result, err := h.service.ScannerService.GetOrCompute(ctx, symbol, interval)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("scan completed", result))
}

func (h *HttpAPIHandler) BatchScan(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.BatchScanRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	result := h.service.ScannerService.BatchScan(ctx, req.Symbols, req.Interval)
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("batch scan completed", result))
}
