package model

import "time"

// LedgerRecord is a single normalized expense row. It is created once at
// ingestion (amount repaired, category canonicalized) and never mutated.
type LedgerRecord struct {
	Date     time.Time
	Amount   float64
	Category string
}
