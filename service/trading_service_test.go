package service

import (
	"context"
	"errors"
	"testing"
	"time"

	localCache "github.com/thomas-choi/myFinance-dashboard-fastserver/cache"
	"github.com/thomas-choi/myFinance-dashboard-fastserver/model"
)

type fakeDataSource struct {
	etf      *model.Table
	stock    *model.Table
	err      error
	etfCalls int
}

func (f *fakeDataSource) EtfTrades(ctx context.Context) (*model.Table, error) {
	f.etfCalls++
	return f.etf, f.err
}

func (f *fakeDataSource) StockTrades(ctx context.Context) (*model.Table, error) {
	return f.stock, f.err
}

func (f *fakeDataSource) MaxDate(ctx context.Context, table, symbol string) (string, error) {
	return "2024-01-31", f.err
}

func (f *fakeDataSource) RunQuery(ctx context.Context, query string) (*model.Table, error) {
	return f.stock, f.err
}

func TestEtfOptionsPipeline(t *testing.T) {
	localCache.OptionsCache.Flush()

	src := &fakeDataSource{
		etf: &model.Table{
			// Extra column the dashboard never asked for, and several of the
			// fixed ETF columns missing entirely.
			Columns: []string{"Date", "Symbol", "PnC", "H_Strike", "Last", "O_bid", "Debug_Col"},
			Rows: []model.Row{
				{
					"Date":      time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC),
					"Symbol":    "SPY",
					"PnC":       "C",
					"H_Strike":  100.0,
					"Last":      95.0,
					"O_bid":     2.0,
					"Debug_Col": "x",
				},
			},
		},
	}
	svc := NewTradingService(src)

	rows, err := svc.EtfOptions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]

	if _, exists := row["Debug_Col"]; exists {
		t.Error("projection should drop columns outside the fixed ETF list")
	}
	if _, exists := row["L_Strike"]; exists {
		t.Error("projection should not synthesize missing source columns")
	}
	if got := row["Date"]; got != "2024-01-30" {
		t.Errorf("Date should be an ISO string, got %v (%T)", got, got)
	}
	if got := row["OPrice"]; got != 2.0 {
		t.Errorf("expected OPrice 2.0, got %v", got)
	}
	if got := row["Reward%"]; got != 2.0 {
		t.Errorf("expected Reward%% 2.0, got %v", got)
	}
}

func TestEtfOptionsCached(t *testing.T) {
	localCache.OptionsCache.Flush()

	src := &fakeDataSource{
		etf: &model.Table{Columns: []string{"Symbol"}, Rows: []model.Row{{"Symbol": "SPY"}}},
	}
	svc := NewTradingService(src)

	ctx := context.Background()
	if _, err := svc.EtfOptions(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.EtfOptions(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.etfCalls != 1 {
		t.Errorf("expected 1 repository call, got %d", src.etfCalls)
	}

	localCache.OptionsCache.Flush()
}

func TestStockOptionsProjection(t *testing.T) {
	localCache.OptionsCache.Flush()

	src := &fakeDataSource{
		stock: &model.Table{
			Columns: []string{"Date", "Symbol", "PnC", "Strike", "Last", "O_last", "Trade_Status"},
			Rows: []model.Row{
				{
					"Date":         "2024-01-30",
					"Symbol":       "AAPL",
					"PnC":          "P",
					"Strike":       200.0,
					"Last":         210.0,
					"O_last":       3.25,
					"Trade_Status": "OPEN",
				},
			},
		},
	}
	svc := NewTradingService(src)

	rows, err := svc.StockOptions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row := rows[0]

	if got := row["OPrice"]; got != 3.25 {
		t.Errorf("expected O_last fallback 3.25, got %v", got)
	}
	if got := row["Trade_Status"]; got != "OPEN" {
		t.Errorf("expected Trade_Status passthrough, got %v", got)
	}
	if _, exists := row["AdjReward%"]; exists {
		t.Error("AdjReward% is not part of the stock column list")
	}

	localCache.OptionsCache.Flush()
}

func TestTradingServiceErrorsPropagate(t *testing.T) {
	localCache.OptionsCache.Flush()

	wantErr := errors.New("boom")
	svc := NewTradingService(&fakeDataSource{err: wantErr})

	if _, err := svc.EtfOptions(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("expected propagated error, got %v", err)
	}
}
