package export

import (
	"strings"
	"testing"
	"time"

	"budgetwise/internal/model"
)

func TestWriteForecast(t *testing.T) {
	rows := []model.ForecastRow{
		{
			Date:      time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			Yhat:      100.5,
			YhatLower: 90.45,
			YhatUpper: 110.55,
		},
	}

	var b strings.Builder
	if err := WriteForecast(&b, rows); err != nil {
		t.Fatalf("WriteForecast: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if lines[0] != "ds,yhat,yhat_lower,yhat_upper" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "2024-02-01,100.5,90.45,110.55" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestWriteForecast_Empty(t *testing.T) {
	var b strings.Builder
	if err := WriteForecast(&b, nil); err != nil {
		t.Fatalf("WriteForecast: %v", err)
	}
	if strings.TrimSpace(b.String()) != "ds,yhat,yhat_lower,yhat_upper" {
		t.Errorf("empty export should still emit header, got %q", b.String())
	}
}
