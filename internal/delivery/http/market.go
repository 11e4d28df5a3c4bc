package http

import (
	"net/http"
	"strconv"

	"crypto-scanner/internal/dto"
	"crypto-scanner/pkg/common"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupMarket(base *echo.Group) {
	v1 := base.Group("/v1/market")
	{
		v1.GET("/:symbol/candles", h.GetCandles)
		v1.GET("/:symbol/price", h.GetLastPrice)
	}
}

func (h *HttpAPIHandler) GetCandles(c echo.Context) error {
	ctx := c.Request().Context()

	symbol := c.Param("symbol")
	interval := c.QueryParam("interval")
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	data, err := h.service.MarketService.GetCandles(ctx, symbol, interval, limit)
	if err != nil {
		if common.IsUpstreamError(err) {
			return c.JSON(http.StatusBadGateway, dto.NewBaseResponse(http.StatusBadGateway, err.Error(), nil))
		}
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("candles fetched", data))
}

func (h *HttpAPIHandler) GetLastPrice(c echo.Context) error {
	ctx := c.Request().Context()

	price, err := h.service.MarketService.GetLastPrice(ctx, c.Param("symbol"))
	if err != nil {
		if common.IsUpstreamError(err) {
			return c.JSON(http.StatusBadGateway, dto.NewBaseResponse(http.StatusBadGateway, err.Error(), nil))
		}
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("price fetched", price))
}
