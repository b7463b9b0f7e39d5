// Package export writes forecast artifacts in delimited-text form for
// external consumers.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"budgetwise/internal/model"
)

// WriteForecast writes rows as CSV with the ds,yhat,yhat_lower,yhat_upper
// header.
func WriteForecast(w io.Writer, rows []model.ForecastRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"ds", "yhat", "yhat_lower", "yhat_upper"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Date.Format("2006-01-02"),
			formatFloat(row.Yhat),
			formatFloat(row.YhatLower),
			formatFloat(row.YhatUpper),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
