package repository

import (
	"testing"
	"time"
)

func TestDecodeValue(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name   string
		in     any
		dbType string
		want   any
	}{
		{"decimal bytes", []byte("123.45"), "DECIMAL", 123.45},
		{"double bytes", []byte("-0.5"), "DOUBLE", -0.5},
		{"int bytes", []byte("42"), "BIGINT", int64(42)},
		{"varchar bytes", []byte("SPY"), "VARCHAR", "SPY"},
		{"numeric-looking varchar stays text", []byte("007"), "VARCHAR", "007"},
		{"unparseable decimal falls back to text", []byte("n/a"), "DECIMAL", "n/a"},
		{"native float passthrough", 1.25, "DOUBLE", 1.25},
		{"native int passthrough", int64(9), "BIGINT", int64(9)},
		{"time passthrough", now, "DATETIME", now},
		{"null passthrough", nil, "DECIMAL", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := decodeValue(tc.in, tc.dbType); got != tc.want {
				t.Errorf("decodeValue(%v, %s) = %v (%T), want %v", tc.in, tc.dbType, got, got, tc.want)
			}
		})
	}
}

func TestIdentifierPattern(t *testing.T) {
	valid := []string{"OptionChains", "histdailyprice7", "DailyPerformance_p1"}
	for _, name := range valid {
		if !identifierPattern.MatchString(name) {
			t.Errorf("%s should be a valid identifier", name)
		}
	}

	invalid := []string{"", "a.b", "t;DROP TABLE x", "weird name", "x--"}
	for _, name := range invalid {
		if identifierPattern.MatchString(name) {
			t.Errorf("%s should be rejected", name)
		}
	}
}
