package util

import (
	"math"
	"time"

	"github.com/thomas-choi/myFinance-dashboard-fastserver/model"
)

// SanitizeValue coerces a driver/computed value into something the JSON
// encoder can always handle: dates become ISO strings, NaN and Infinity
// become nil (JSON null), byte slices become strings. Finite numbers pass
// through untouched.
func SanitizeValue(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case time.Time:
		return FormatSQLDate(val)
	case *time.Time:
		if val == nil {
			return nil
		}
		return FormatSQLDate(*val)
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil
		}
		return val
	case float32:
		f := float64(val)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return f
	case []byte:
		return string(val)
	default:
		return v
	}
}

// SanitizeRows applies SanitizeValue to every cell, in place.
func SanitizeRows(rows []model.Row) []model.Row {
	for _, r := range rows {
		for k, v := range r {
			r[k] = SanitizeValue(v)
		}
	}
	return rows
}
