package controller

import (
	"errors"
	"net/http"

	"github.com/thomas-choi/myFinance-dashboard-fastserver/customerrors"
	"github.com/thomas-choi/myFinance-dashboard-fastserver/model"
	"github.com/thomas-choi/myFinance-dashboard-fastserver/service"

	"github.com/gin-gonic/gin"
)

type TradingController struct {
	tradingService service.TradingService
}

func NewTradingController(ts service.TradingService) *TradingController {
	return &TradingController{
		tradingService: ts,
	}
}

// RegisterRoutes sets up the route group for the options monitor data.
func (ctrl *TradingController) RegisterRoutes(router *gin.RouterGroup) {
	tradingGroup := router.Group("/trading")
	{
		tradingGroup.GET("/etf-options", ctrl.getEtfOptions)
		tradingGroup.GET("/stock-options", ctrl.getStockOptions)
		tradingGroup.GET("/max-date/:table", ctrl.getMaxDate)
		tradingGroup.POST("/custom-query", ctrl.executeCustomQuery)
	}
}

// getEtfOptions serves the ETF options monitor table.
// @Summary      Get ETF options monitor data
// @Description  Runs Trading.sp_etf_trades_v2 and returns the latest ETF options table with derived trade metrics.
// @Tags         Trading
// @Produce      json
// @Success      200  {object}  model.OptionListResponse
// @Failure      500  {object}  model.Response
// @Router       /trading/etf-options [get]
func (ctrl *TradingController) getEtfOptions(c *gin.Context) {
	rows, err := ctrl.tradingService.EtfOptions(c.Request.Context())
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to fetch ETF options", err)
		return
	}

	c.JSON(http.StatusOK, model.OptionListResponse{
		Data:  rows,
		Count: len(rows),
		Type:  string(model.VariantETF),
	})
}

// getStockOptions serves the US stock options monitor table.
// @Summary      Get stock options monitor data
// @Description  Runs Trading.sp_stock_trades_V3 and returns the latest stock options table with derived trade metrics.
// @Tags         Trading
// @Produce      json
// @Success      200  {object}  model.OptionListResponse
// @Failure      500  {object}  model.Response
// @Router       /trading/stock-options [get]
func (ctrl *TradingController) getStockOptions(c *gin.Context) {
	rows, err := ctrl.tradingService.StockOptions(c.Request.Context())
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to fetch stock options", err)
		return
	}

	c.JSON(http.StatusOK, model.OptionListResponse{
		Data:  rows,
		Count: len(rows),
		Type:  string(model.VariantStock),
	})
}

// getMaxDate reports the newest Date in a market data table.
// @Summary      Get max date of a table
// @Description  Returns MAX(Date) for the named market data table, optionally filtered by symbol.
// @Tags         Trading
// @Produce      json
// @Param        table   path      string  true   "Table name"
// @Param        symbol  query     string  false  "Optional symbol filter"
// @Success      200     {object}  model.MaxDateResponse
// @Failure      400     {object}  model.Response
// @Failure      500     {object}  model.Response
// @Router       /trading/max-date/{table} [get]
func (ctrl *TradingController) getMaxDate(c *gin.Context) {
	table := c.Param("table")
	symbol := c.Query("symbol")

	maxDate, err := ctrl.tradingService.MaxDate(c.Request.Context(), table, symbol)
	if err != nil {
		if errors.Is(err, customerrors.ErrInvalidTableName) {
			handleError(c, http.StatusBadRequest, "Invalid table name", err)
			return
		}
		handleError(c, http.StatusInternalServerError, "Failed to get max date", err)
		return
	}

	c.JSON(http.StatusOK, model.MaxDateResponse{
		Table:   table,
		Symbol:  symbol,
		MaxDate: maxDate,
	})
}

// executeCustomQuery runs an ad-hoc SQL statement.
// WARNING: only meant for trusted dashboard tooling.
// @Summary      Execute a custom SQL query
// @Description  Runs the given statement against the market data source and returns the rows.
// @Tags         Trading
// @Accept       json
// @Produce      json
// @Param        request  body      model.CustomQueryRequest  true  "Query to execute"
// @Success      200      {object}  model.CustomQueryResponse
// @Failure      400      {object}  model.Response
// @Failure      500      {object}  model.Response
// @Router       /trading/custom-query [post]
func (ctrl *TradingController) executeCustomQuery(c *gin.Context) {
	var req model.CustomQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, http.StatusBadRequest, "Query is required", err)
		return
	}

	rows, err := ctrl.tradingService.CustomQuery(c.Request.Context(), req.Query)
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Failed to execute query", err)
		return
	}

	c.JSON(http.StatusOK, model.CustomQueryResponse{
		Count: len(rows),
		Data:  rows,
	})
}
