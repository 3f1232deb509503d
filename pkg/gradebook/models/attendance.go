package models

import "github.com/shopspring/decimal"

// AttendanceStatus classifies a single attendance cell.
type AttendanceStatus string

const (
	// StatusPresent marks a cell holding 1.
	StatusPresent AttendanceStatus = "present"
	// StatusAbsent marks a cell holding 0.
	StatusAbsent AttendanceStatus = "absent"
	// StatusOther marks any other non-blank value.
	StatusOther AttendanceStatus = "other"
	// StatusBlank marks an empty cell; it does not count as a day.
	StatusBlank AttendanceStatus = "blank"
)

// AttendanceRecord is one date column's value for one student.
type AttendanceRecord struct {
	// Date is the column label.
	Date string `json:"date"`
	// Value is the parsed cell value, nil when blank.
	Value interface{} `json:"value,omitempty"`
	// Status is derived from Value.
	Status AttendanceStatus `json:"status"`
}

// AttendanceReport is the per-student attendance computation.
type AttendanceReport struct {
	Student Student            `json:"student"`
	Records []AttendanceRecord `json:"records"`
	// Present counts records with StatusPresent.
	Present int `json:"present"`
	// Days counts non-blank records.
	Days int `json:"days"`
	// Rate is Present / Days * 100 rounded to two decimals, zero when Days is zero.
	Rate decimal.Decimal `json:"rate"`
}
