package dto

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/cashbook_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLedgerEntryRequest is the body of POST /createForm.
type CreateLedgerEntryRequest struct {
	Name   string           `json:"name" binding:"required"`
	Mobile string           `json:"mobile" binding:"required,phone"`
	Remark *string          `json:"remark"`
	Amount *decimal.Decimal `json:"amount" binding:"required" swaggertype:"string" example:"500.00"`
	Type   domain.Direction `json:"type" binding:"required,oneof=IN OUT" enums:"IN,OUT"`
}

// LedgerEntryResponse is the JSON form of a stored entry.
type LedgerEntryResponse struct {
	ID               int64       `json:"id"`
	Name             string      `json:"name"`
	Mobile           string      `json:"mobile"`
	Remark           *string     `json:"remark"`
	Amount           json.Number `json:"amount" swaggertype:"number" example:"500.00"`
	Type             string      `json:"type"`
	NotificationSent bool        `json:"notificationSent"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// CreateLedgerEntryResponse wraps the created entry.
type CreateLedgerEntryResponse struct {
	Message string              `json:"message"`
	Form    LedgerEntryResponse `json:"form"`
}

// ListLedgerEntriesResponse is the body of GET /getData: all entries plus the
// aggregate snapshot.
type ListLedgerEntriesResponse struct {
	Message           string                `json:"message"`
	Forms             []LedgerEntryResponse `json:"forms"`
	InCount           int64                 `json:"inCount"`
	OutCount          int64                 `json:"outCount"`
	TotalAmount       json.Number           `json:"totalAmount" swaggertype:"number"`
	TodayInCount      int64                 `json:"todayInCount"`
	TodayOutCount     int64                 `json:"todayOutCount"`
	TodaysTotalAmount json.Number           `json:"todaysTotalAmount" swaggertype:"number"`
	TodayInAmount     json.Number           `json:"todayInAmount" swaggertype:"number"`
	TodayOutAmount    json.Number           `json:"todayOutAmount" swaggertype:"number"`
}

// MessageResponse is the generic {"message": ...} body used for errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// ToAmountNumber renders an amount as a JSON number with two fractional digits.
func ToAmountNumber(amount decimal.Decimal) json.Number {
	return json.Number(domain.FormatAmount(amount))
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its DTO
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:               e.ID,
		Name:             e.Name,
		Mobile:           e.Mobile,
		Remark:           e.Remark,
		Amount:           ToAmountNumber(e.Amount),
		Type:             string(e.Direction),
		NotificationSent: e.NotificationSent,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

// ToListLedgerEntriesResponse builds the listing body. A nil stats pointer
// yields zero aggregates.
func ToListLedgerEntriesResponse(entries []domain.LedgerEntry, stats *domain.AggregateStats) ListLedgerEntriesResponse {
	forms := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		forms[i] = ToLedgerEntryResponse(&entries[i])
	}

	if stats == nil {
		stats = &domain.AggregateStats{}
	}

	return ListLedgerEntriesResponse{
		Message:           "Forms fetched successfully!",
		Forms:             forms,
		InCount:           stats.InCount,
		OutCount:          stats.OutCount,
		TotalAmount:       ToAmountNumber(stats.TotalNet),
		TodayInCount:      stats.TodayInCount,
		TodayOutCount:     stats.TodayOutCount,
		TodaysTotalAmount: ToAmountNumber(stats.TodayNet),
		TodayInAmount:     ToAmountNumber(stats.TodayInAmount),
		TodayOutAmount:    ToAmountNumber(stats.TodayOutAmount),
	}
}
