package util

import (
	"math"
	"testing"
	"time"

	"github.com/thomas-choi/myFinance-dashboard-fastserver/model"
)

func TestSanitizeValue(t *testing.T) {
	date := time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC)
	stamp := time.Date(2024, 1, 30, 14, 5, 9, 0, time.UTC)

	cases := []struct {
		name string
		in   any
		want any
	}{
		{"nil", nil, nil},
		{"date", date, "2024-01-30"},
		{"datetime", stamp, "2024-01-30T14:05:09"},
		{"nan", math.NaN(), nil},
		{"pos inf", math.Inf(1), nil},
		{"neg inf", math.Inf(-1), nil},
		{"finite", 2.5, 2.5},
		{"float32 nan", float32(math.NaN()), nil},
		{"bytes", []byte("SPY"), "SPY"},
		{"string", "OPEN", "OPEN"},
		{"int64", int64(7), int64(7)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeValue(tc.in); got != tc.want {
				t.Errorf("SanitizeValue(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestSanitizeRows(t *testing.T) {
	rows := []model.Row{
		{"A": math.NaN(), "B": 1.5},
		{"A": math.Inf(1), "B": []byte("x")},
	}

	out := SanitizeRows(rows)

	if out[0]["A"] != nil || out[0]["B"] != 1.5 {
		t.Errorf("unexpected first row: %v", out[0])
	}
	if out[1]["A"] != nil || out[1]["B"] != "x" {
		t.Errorf("unexpected second row: %v", out[1])
	}
}
