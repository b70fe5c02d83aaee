package observability

import (
	"context"
	"testing"
)

func TestParseHeaders(t *testing.T) {
	got := parseHeaders(" api-key = abc ,broken, =x,tenant=staffing,empty= ")
	if len(got) != 2 {
		t.Fatalf("want 2 headers, got %v", got)
	}
	if got["api-key"] != "abc" || got["tenant"] != "staffing" {
		t.Fatalf("unexpected headers: %v", got)
	}
	if parseHeaders("") != nil {
		t.Fatalf("empty input should yield nil")
	}
}

func TestClampRatio(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{-1, 0},
		{0.25, 0.25},
		{3, 1},
	}
	for _, tc := range cases {
		if got := clampRatio(tc.in); got != tc.want {
			t.Fatalf("clampRatio(%v): want=%v got=%v", tc.in, tc.want, got)
		}
	}
}

func TestInitOTelDisabled(t *testing.T) {
	if shutdown := InitOTel(context.Background(), nil, OtelConfig{Enabled: false}); shutdown != nil {
		t.Fatalf("disabled tracing should not return a shutdown func")
	}
}
