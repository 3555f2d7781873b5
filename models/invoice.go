package models

import "time"

// PricingConfig carries the venue's rates for one resolution. It is
// supplied by the caller (or loaded from settings) and treated as
// immutable while the resolution runs.
type PricingConfig struct {
	HourlyRate  float64 `json:"hourlyRate"`  // Venue fee per billable hour
	AttendeeFee float64 `json:"attendeeFee"` // Fee per attendee
	TaxRate     float64 `json:"taxRate"`     // e.g. 0.08 for 8%
}

// InvoiceLineItem is one billable row on an invoice.
type InvoiceLineItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Invoice is the priced record derived from a confirmed booking.
// Monetary values are kept unrounded; rounding to two decimals happens
// only when the invoice is rendered.
type Invoice struct {
	InvoiceNumber string            `json:"invoice_number"` // e.g. "INV-20231125-3F2A9C01"
	InvoiceDate   time.Time         `json:"invoice_date"`   // Timestamp of invoice creation
	DueDate       time.Time         `json:"due_date"`       // Payment due date (net 30)
	ClientName    string            `json:"client_name"`
	ClientEmail   string            `json:"client_email"`
	DurationHours int               `json:"duration_hours"` // Billable hours, partial hours rounded up
	Items         []InvoiceLineItem `json:"items"`
	Subtotal      float64           `json:"subtotal"`
	Tax           float64           `json:"tax"`
	Total         float64           `json:"total"`
}
