package repository

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/thomas-choi/myFinance-dashboard-fastserver/customerrors"
	"github.com/thomas-choi/myFinance-dashboard-fastserver/model"
	"github.com/thomas-choi/myFinance-dashboard-fastserver/util"

	"gorm.io/gorm"
)

const (
	etfTradesProc   = "CALL Trading.sp_etf_trades_v2;"
	stockTradesProc = "CALL Trading.sp_stock_trades_V3;"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

type TradingRepository struct {
	db       *gorm.DB
	marketDB string
}

func NewTradingRepository(db *gorm.DB, marketDB string) *TradingRepository {
	return &TradingRepository{db: db, marketDB: marketDB}
}

// EtfTrades runs the ETF options monitor stored procedure.
func (r *TradingRepository) EtfTrades(ctx context.Context) (*model.Table, error) {
	return r.query(ctx, etfTradesProc)
}

// StockTrades runs the stock options monitor stored procedure.
func (r *TradingRepository) StockTrades(ctx context.Context) (*model.Table, error) {
	return r.query(ctx, stockTradesProc)
}

// MaxDate returns the newest Date in a market data table, optionally
// restricted to one symbol. The table name is interpolated into the
// statement, so it must be a bare identifier.
func (r *TradingRepository) MaxDate(ctx context.Context, table, symbol string) (string, error) {
	if !identifierPattern.MatchString(table) {
		return "", customerrors.ErrInvalidTableName
	}

	query := fmt.Sprintf("SELECT MAX(Date) AS max_date FROM %s.%s", r.marketDB, table)
	args := []any{}
	if symbol != "" {
		query += " WHERE symbol = ?"
		args = append(args, symbol)
	}

	var maxDate sql.NullTime
	row := r.db.WithContext(ctx).Raw(query, args...).Row()
	if err := row.Scan(&maxDate); err != nil {
		return "", fmt.Errorf("%w: %v", customerrors.ErrDataSourceUnavailable, err)
	}
	if !maxDate.Valid {
		return "", nil
	}
	return util.FormatSQLDate(maxDate.Time), nil
}

// RunQuery executes an ad-hoc statement and returns the full result set.
func (r *TradingRepository) RunQuery(ctx context.Context, query string) (*model.Table, error) {
	return r.query(ctx, query)
}

func (r *TradingRepository) query(ctx context.Context, query string, args ...any) (*model.Table, error) {
	rows, err := r.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", customerrors.ErrDataSourceUnavailable, err)
	}
	defer rows.Close()

	tbl, err := scanTable(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", customerrors.ErrDataSourceUnavailable, err)
	}
	return tbl, nil
}

// scanTable reads a *sql.Rows into an ordered Table, decoding the text
// protocol values the MySQL driver hands back as []byte into numbers or
// strings based on the declared column type.
func scanTable(rows *sql.Rows) (*model.Table, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	tbl := &model.Table{Columns: columns}

	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(model.Row, len(columns))
		for i, col := range columns {
			row[col] = decodeValue(values[i], types[i].DatabaseTypeName())
		}
		tbl.Rows = append(tbl.Rows, row)
	}
	return tbl, rows.Err()
}

func decodeValue(v any, dbType string) any {
	raw, ok := v.([]byte)
	if !ok {
		return v
	}

	s := string(raw)
	switch strings.ToUpper(dbType) {
	case "DECIMAL", "NEWDECIMAL", "FLOAT", "DOUBLE":
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	case "TINYINT", "SMALLINT", "MEDIUMINT", "INT", "BIGINT", "YEAR":
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
	}
	return s
}
