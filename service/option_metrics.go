package service

import (
	"math"

	"github.com/thomas-choi/myFinance-dashboard-fastserver/customerrors"
	"github.com/thomas-choi/myFinance-dashboard-fastserver/model"

	"github.com/shopspring/decimal"
)

// Derived columns added by ComputeMetrics, in initialization order.
var derivedColumns = []string{"Stop%", "OPrice", "Target%", "Reward%", "adjOPrice", "AdjReward%"}

// ComputeMetrics derives the dashboard fields for a table of option quotes.
// Each derived value is a pure function of its own row; rows with missing
// inputs get a nil (JSON null) for the fields that depend on them, never an
// error. Input row order is preserved and the input table is not mutated.
//
// Per row, in order:
//
//	OPrice     - O_bid when present and > 0, else O_last
//	Stop%      - (Stop/Last - 1) * 100, ETF rows only when L_Strike is null
//	Target%    - (Target/Last - 1) * 100
//	adjOPrice  - max(intrinsic value, OPrice) for OTM rows, else OPrice
//	Reward%    - OPrice / strike * 100
//	AdjReward% - adjOPrice / strike * 100
//
// The strike is H_Strike for the ETF variant and Strike for the stock
// variant. Percentages are rounded to 2 decimal places, half to even.
func ComputeMetrics(tbl *model.Table, variant model.OptionVariant) (*model.Table, error) {
	if variant != model.VariantETF && variant != model.VariantStock {
		return nil, customerrors.ErrInvalidVariant
	}

	strikeCol := variant.StrikeColumn()

	out := &model.Table{
		Columns: append([]string{}, tbl.Columns...),
		Rows:    make([]model.Row, 0, len(tbl.Rows)),
	}
	for _, col := range derivedColumns {
		out.AddColumn(col)
	}

	for _, src := range tbl.Rows {
		row := make(model.Row, len(src)+len(derivedColumns))
		for k, v := range src {
			row[k] = v
		}

		last, lastOK := numField(row, "Last")
		strike, strikeOK := numField(row, strikeCol)
		pnc, pncOK := strField(row, "PnC")

		// OPrice: bid wins when it is a real quote, last trade otherwise.
		oPrice, oPriceOK := 0.0, false
		if bid, ok := numField(row, "O_bid"); ok && bid > 0 {
			oPrice, oPriceOK = bid, true
		} else if oLast, ok := numField(row, "O_last"); ok {
			oPrice, oPriceOK = oLast, true
		}
		row["OPrice"] = numOrNil(oPrice, oPriceOK)

		// Stop%: an ETF row with a defined low strike is a spread, and the
		// single-leg stop formula does not apply to it.
		row["Stop%"] = nil
		gated := variant == model.VariantETF && fieldPresent(row, "L_Strike")
		if !gated {
			if stop, ok := numField(row, "Stop"); ok && stop != 0 && lastOK && last != 0 {
				row["Stop%"] = roundOrNil((stop/last - 1) * 100)
			}
		}

		// Target%
		row["Target%"] = nil
		if target, ok := numField(row, "Target"); ok && lastOK && last != 0 {
			row["Target%"] = roundOrNil((target/last - 1) * 100)
		}

		// adjOPrice: intrinsic-value floor for OTM rows.
		row["adjOPrice"] = nil
		adj, adjOK := 0.0, false
		if lastOK && strikeOK && pncOK && oPriceOK {
			if isOTM(last, strike, pnc) {
				adj = adjValue(last, strike, pnc, oPrice)
			} else {
				adj = oPrice
			}
			adjOK = true
			row["adjOPrice"] = numOrNil(adj, adjOK)
		}

		// Reward% / AdjReward%
		row["Reward%"] = nil
		if oPriceOK && strikeOK && strike != 0 {
			row["Reward%"] = roundOrNil(oPrice / strike * 100)
		}
		row["AdjReward%"] = nil
		if adjOK && strikeOK && strike != 0 {
			row["AdjReward%"] = roundOrNil(adj / strike * 100)
		}

		out.Rows = append(out.Rows, row)
	}

	return out, nil
}

// isOTM reports whether the option is out of the money. Any PnC other than
// "C" or "P" is treated as not OTM.
func isOTM(stockPrice, strikePrice float64, optionType string) bool {
	switch optionType {
	case "C":
		return stockPrice < strikePrice
	case "P":
		return stockPrice > strikePrice
	}
	return false
}

// adjValue floors an OTM option price at its intrinsic value.
func adjValue(stockPrice, strikePrice float64, optionType string, optionPrice float64) float64 {
	var intrinsic float64
	switch optionType {
	case "C":
		intrinsic = math.Max(stockPrice-strikePrice, 0)
	case "P":
		intrinsic = math.Max(strikePrice-stockPrice, 0)
	default:
		return optionPrice
	}
	return math.Max(intrinsic, optionPrice)
}

// round2 rounds to 2 decimal places, half to even, matching the reference
// table output. Returns false for non-finite input.
func round2(x float64) (float64, bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}
	return decimal.NewFromFloat(x).RoundBank(2).InexactFloat64(), true
}

func roundOrNil(x float64) any {
	if v, ok := round2(x); ok {
		return v
	}
	return nil
}

func numOrNil(x float64, ok bool) any {
	if !ok || math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}
	return x
}

// numField pulls a numeric cell out of a row, tolerating the handful of
// shapes the driver and the JSON layer produce. Missing, nil, non-finite and
// non-numeric values all report false.
func numField(row model.Row, col string) (float64, bool) {
	v, exists := row[col]
	if !exists || v == nil {
		return 0, false
	}
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func strField(row model.Row, col string) (string, bool) {
	v, exists := row[col]
	if !exists || v == nil {
		return "", false
	}
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	}
	return "", false
}

// fieldPresent reports whether the column exists with a non-nil value.
func fieldPresent(row model.Row, col string) bool {
	v, exists := row[col]
	return exists && v != nil
}
