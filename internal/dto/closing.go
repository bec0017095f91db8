package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/retailbooks/retail_accounting_app/internal/core/domain"
)

// ValidateClosingType is a custom binding validation accepting the supported
// closing types. Registered against gin's validator engine at startup under
// the "closingtype" tag.
func ValidateClosingType(fl validator.FieldLevel) bool {
	switch domain.ClosingType(fl.Field().String()) {
	case domain.ClosingTypeDay, domain.ClosingTypeMonth:
		return true
	}
	return false
}

// CreateClosingRequest defines the data needed to close a period.
// ClosingDate is the nominal anchor date; the engine derives the actual
// aggregation window from it.
type CreateClosingRequest struct {
	ClosingType string `json:"closingType" binding:"required,closingtype"`
	ClosingDate string `json:"closingDate" binding:"required,datetime=2006-01-02"`
	Notes       string `json:"notes"` // Optional
}

// ClosingResponse defines the data returned for a closing record.
// Mirrors domain.ClosingRecord.
type ClosingResponse struct {
	ClosingID   string `json:"closingID"`
	OutletID    string `json:"outletID"`
	ClosingType string `json:"closingType"`
	ClosingDate string `json:"closingDate"`
	PeriodStart string `json:"periodStart"`
	PeriodEnd   string `json:"periodEnd"`
	Status      string `json:"status"`

	OpeningCash decimal.Decimal `json:"openingCash"`
	OpeningBank decimal.Decimal `json:"openingBank"`
	ClosingCash decimal.Decimal `json:"closingCash"`
	ClosingBank decimal.Decimal `json:"closingBank"`

	CashSales    decimal.Decimal `json:"cashSales"`
	BankSales    decimal.Decimal `json:"bankSales"`
	CashPayments decimal.Decimal `json:"cashPayments"`
	BankPayments decimal.Decimal `json:"bankPayments"`

	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalDiscount decimal.Decimal `json:"totalDiscount"`
	TotalTax      decimal.Decimal `json:"totalTax"`
	SalesCount    int             `json:"salesCount"`

	TotalOpeningBalance decimal.Decimal `json:"totalOpeningBalance"`
	TotalClosingBalance decimal.Decimal `json:"totalClosingBalance"`

	OpeningStockQty   decimal.Decimal `json:"openingStockQty"`
	OpeningStockValue decimal.Decimal `json:"openingStockValue"`
	ClosingStockQty   decimal.Decimal `json:"closingStockQty"`
	ClosingStockValue decimal.Decimal `json:"closingStockValue"`

	NetProfit decimal.Decimal `json:"netProfit"`

	Notes    string    `json:"notes"`
	ClosedBy string    `json:"closedBy"`
	ClosedAt time.Time `json:"closedAt"`
}

// ToClosingResponse converts a domain.ClosingRecord to a ClosingResponse DTO.
func ToClosingResponse(rec *domain.ClosingRecord) ClosingResponse {
	return ClosingResponse{
		ClosingID:           rec.ClosingID,
		OutletID:            rec.OutletID,
		ClosingType:         string(rec.ClosingType),
		ClosingDate:         rec.ClosingDate.Format("2006-01-02"),
		PeriodStart:         rec.PeriodStart.Format(time.RFC3339),
		PeriodEnd:           rec.PeriodEnd.Format(time.RFC3339),
		Status:              string(rec.Status),
		OpeningCash:         rec.OpeningCash,
		OpeningBank:         rec.OpeningBank,
		ClosingCash:         rec.ClosingCash,
		ClosingBank:         rec.ClosingBank,
		CashSales:           rec.CashSales,
		BankSales:           rec.BankSales,
		CashPayments:        rec.CashPayments,
		BankPayments:        rec.BankPayments,
		TotalRevenue:        rec.TotalRevenue,
		TotalDiscount:       rec.TotalDiscount,
		TotalTax:            rec.TotalTax,
		SalesCount:          rec.SalesCount,
		TotalOpeningBalance: rec.TotalOpeningBalance,
		TotalClosingBalance: rec.TotalClosingBalance,
		OpeningStockQty:     rec.OpeningStockQty,
		OpeningStockValue:   rec.OpeningStockValue,
		ClosingStockQty:     rec.ClosingStockQty,
		ClosingStockValue:   rec.ClosingStockValue,
		NetProfit:           rec.NetProfit,
		Notes:               rec.Notes,
		ClosedBy:            rec.ClosedBy,
		ClosedAt:            rec.ClosedAt,
	}
}

// ToListClosingResponse converts a slice of domain.ClosingRecord to DTOs.
func ToListClosingResponse(records []domain.ClosingRecord) []ClosingResponse {
	res := make([]ClosingResponse, len(records))
	for i := range records {
		res[i] = ToClosingResponse(&records[i])
	}
	return res
}

// ListClosingsParams defines query parameters for listing closings.
type ListClosingsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListClosingsResponse wraps the list of closings.
type ListClosingsResponse struct {
	Closings []ClosingResponse `json:"closings"`
}

// LatestClosingParams defines query parameters for the latest-closing lookup.
type LatestClosingParams struct {
	ClosingType string `form:"closingType" binding:"required,closingtype"`
}
