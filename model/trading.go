package model

// --- ENUMS ---
// OptionVariant selects the shape of an options monitor table.
type OptionVariant string

const (
	VariantETF   OptionVariant = "ETF"
	VariantStock OptionVariant = "STK"
)

// StrikeColumn returns the column holding the strike used for the moneyness
// test and the reward-ratio math.
func (v OptionVariant) StrikeColumn() string {
	if v == VariantETF {
		return "H_Strike"
	}
	return "Strike"
}

// Column order returned by the ETF options monitor endpoint.
var EtfColumns = []string{
	"Date", "Type", "Trend", "Symbol", "Expiration", "PnC",
	"L_Strike", "H_Strike", "Entry", "Target", "Target%", "Stop", "Stop%",
	"Last", "OPrice", "Reward%", "adjOPrice", "AdjReward%",
}

// Column order returned by the stock options monitor endpoint.
var StockColumns = []string{
	"Date", "Symbol", "Expiration", "PnC", "Strike",
	"Entry1", "Entry2", "Target", "Target%", "Stop", "Stop%",
	"Trade_Status", "Description", "OPrice", "Reward%", "Last",
}

// OptionListResponse is the payload for the two options monitor endpoints.
type OptionListResponse struct {
	Data  []Row  `json:"data"`
	Count int    `json:"count"`
	Type  string `json:"type"`
}

// MaxDateResponse reports the newest Date in a market data table.
type MaxDateResponse struct {
	Table   string `json:"table"`
	Symbol  string `json:"symbol,omitempty"`
	MaxDate string `json:"max_date"`
}

// CustomQueryRequest is the payload for the ad-hoc query endpoint.
type CustomQueryRequest struct {
	Query string `json:"query" example:"SELECT * FROM Trading.trades LIMIT 10" binding:"required"`
}

// CustomQueryResponse wraps ad-hoc query results.
type CustomQueryResponse struct {
	Count int   `json:"count"`
	Data  []Row `json:"data"`
}
