package service

import (
	"context"

	localCache "github.com/thomas-choi/myFinance-dashboard-fastserver/cache"
	"github.com/thomas-choi/myFinance-dashboard-fastserver/model"
	"github.com/thomas-choi/myFinance-dashboard-fastserver/util"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

// TradingDataSource is the slice of the repository the trading service needs.
type TradingDataSource interface {
	EtfTrades(ctx context.Context) (*model.Table, error)
	StockTrades(ctx context.Context) (*model.Table, error)
	MaxDate(ctx context.Context, table, symbol string) (string, error)
	RunQuery(ctx context.Context, query string) (*model.Table, error)
}

type TradingService interface {
	EtfOptions(ctx context.Context) ([]model.Row, error)
	StockOptions(ctx context.Context) ([]model.Row, error)
	MaxDate(ctx context.Context, table, symbol string) (string, error)
	CustomQuery(ctx context.Context, query string) ([]model.Row, error)
}

type TradingServiceImpl struct {
	repo TradingDataSource
}

func NewTradingService(repo TradingDataSource) TradingService {
	return &TradingServiceImpl{repo: repo}
}

// EtfOptions returns the ETF options monitor table with derived fields.
// The dashboard polls this endpoint, so results ride a short time cache.
func (s *TradingServiceImpl) EtfOptions(ctx context.Context) ([]model.Row, error) {
	return s.optionsTable(ctx, model.VariantETF)
}

// StockOptions returns the stock options monitor table with derived fields.
func (s *TradingServiceImpl) StockOptions(ctx context.Context) ([]model.Row, error) {
	return s.optionsTable(ctx, model.VariantStock)
}

func (s *TradingServiceImpl) optionsTable(ctx context.Context, variant model.OptionVariant) ([]model.Row, error) {
	cacheKey := "options_" + string(variant)
	if cached, found := localCache.OptionsCache.Get(cacheKey); found {
		return cached.([]model.Row), nil
	}

	var (
		raw *model.Table
		err error
	)
	if variant == model.VariantETF {
		raw, err = s.repo.EtfTrades(ctx)
	} else {
		raw, err = s.repo.StockTrades(ctx)
	}
	if err != nil {
		return nil, err
	}
	log.Info().Str("variant", string(variant)).Int("rows", len(raw.Rows)).Msg("Fetched options records")

	computed, err := ComputeMetrics(raw, variant)
	if err != nil {
		return nil, err
	}

	columns := model.StockColumns
	if variant == model.VariantETF {
		columns = model.EtfColumns
	}
	rows := util.SanitizeRows(computed.Project(columns).Rows)

	localCache.OptionsCache.Set(cacheKey, rows, cache.DefaultExpiration)
	return rows, nil
}

func (s *TradingServiceImpl) MaxDate(ctx context.Context, table, symbol string) (string, error) {
	maxDate, err := s.repo.MaxDate(ctx, table, symbol)
	if err != nil {
		return "", err
	}
	log.Info().Str("table", table).Str("maxDate", maxDate).Msg("Max date resolved")
	return maxDate, nil
}

// CustomQuery runs an ad-hoc read statement. Meant for trusted dashboard
// tooling only; results get the same JSON sanitizing as the monitor tables.
func (s *TradingServiceImpl) CustomQuery(ctx context.Context, query string) ([]model.Row, error) {
	tbl, err := s.repo.RunQuery(ctx, query)
	if err != nil {
		return nil, err
	}
	log.Info().Int("rows", len(tbl.Rows)).Msg("Custom query executed")
	return util.SanitizeRows(tbl.Rows), nil
}
