package returns

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/shoplite/backend/internal/domain/returns"
)

// ==================== Request DTOs ====================

// CreateReturnRequest represents a request to record a return against an invoice
type CreateReturnRequest struct {
	ReturnType returns.ReturnType      `json:"return_type" binding:"required"`
	InvoiceID  uuid.UUID               `json:"invoice_id" binding:"required"`
	PartyID    uuid.UUID               `json:"party_id" binding:"required"`
	Items      []CreateReturnItemInput `json:"items" binding:"required,min=1"`
	RefundType returns.RefundType      `json:"refund_type"`
	Reason     string                  `json:"reason"`
	Notes      string                  `json:"notes"`
}

// CreateReturnItemInput represents one returned line in the create request
type CreateReturnItemInput struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	BatchID   *uuid.UUID      `json:"batch_id"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
}

// ReturnListFilter represents filter options for the return list
type ReturnListFilter struct {
	Type      *returns.ReturnType `form:"type"`
	PartyID   *uuid.UUID          `form:"party_id"`
	InvoiceID *uuid.UUID          `form:"invoice_id"`
	StartDate *time.Time          `form:"start_date" time_format:"2006-01-02"`
	EndDate   *time.Time          `form:"end_date" time_format:"2006-01-02"`
	Page      int                 `form:"page"`
	PageSize  int                 `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string              `form:"order_by"`
	OrderDir  string              `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// SummaryFilter bounds the reporting window
type SummaryFilter struct {
	StartDate *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"end_date" time_format:"2006-01-02"`
}

// ==================== Response DTOs ====================

// ReturnResponse represents a return document in API responses
type ReturnResponse struct {
	ID             uuid.UUID            `json:"id"`
	DocumentNumber string               `json:"document_number"`
	Type           returns.ReturnType   `json:"type"`
	InvoiceID      uuid.UUID            `json:"invoice_id"`
	PartyID        uuid.UUID            `json:"party_id"`
	Status         returns.ReturnStatus `json:"status"`
	RefundType     returns.RefundType   `json:"refund_type"`
	Reason         string               `json:"reason,omitempty"`
	Notes          string               `json:"notes,omitempty"`
	TotalAmount    decimal.Decimal      `json:"total_amount"`
	Items          []ReturnItemResponse `json:"items"`
	ItemCount      int                  `json:"item_count"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
	Version        int                  `json:"version"`
}

// ReturnItemResponse represents a return item in API responses
type ReturnItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	BatchID   *uuid.UUID      `json:"batch_id,omitempty"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// ReturnableLineResponse reports the remaining returnable quantity for one
// invoice line
type ReturnableLineResponse struct {
	ProductID          uuid.UUID       `json:"product_id"`
	BatchID            *uuid.UUID      `json:"batch_id,omitempty"`
	OrderedQuantity    decimal.Decimal `json:"ordered_quantity"`
	ReturnedQuantity   decimal.Decimal `json:"returned_quantity"`
	ReturnableQuantity decimal.Decimal `json:"returnable_quantity"`
}

// SummaryResponse aggregates completed returns by type and reason
type SummaryResponse struct {
	Rows        []returns.SummaryRow `json:"rows"`
	TotalCount  int64                `json:"total_count"`
	TotalAmount decimal.Decimal      `json:"total_amount"`
}

// ==================== Mappers ====================

// ToReturnResponse converts a domain Return to a response DTO
func ToReturnResponse(r *returns.Return) ReturnResponse {
	items := make([]ReturnItemResponse, len(r.Items))
	for i := range r.Items {
		items[i] = ToReturnItemResponse(&r.Items[i])
	}

	return ReturnResponse{
		ID:             r.ID,
		DocumentNumber: r.DocumentNumber,
		Type:           r.Type,
		InvoiceID:      r.InvoiceID,
		PartyID:        r.PartyID,
		Status:         r.Status,
		RefundType:     r.RefundType,
		Reason:         r.Reason,
		Notes:          r.Notes,
		TotalAmount:    r.TotalAmount,
		Items:          items,
		ItemCount:      len(items),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
		Version:        r.Version,
	}
}

// ToReturnItemResponse converts a domain ReturnItem to a response DTO
func ToReturnItemResponse(item *returns.ReturnItem) ReturnItemResponse {
	return ReturnItemResponse{
		ID:        item.ID,
		ProductID: item.ProductID,
		BatchID:   item.BatchID,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
		Subtotal:  item.Subtotal,
	}
}

// ToReturnableLineResponse converts a calculator line to a response DTO
func ToReturnableLineResponse(line returns.ReturnableLine) ReturnableLineResponse {
	return ReturnableLineResponse{
		ProductID:          line.Key.ProductID,
		BatchID:            line.Key.Batch(),
		OrderedQuantity:    line.OrderedQuantity,
		ReturnedQuantity:   line.ReturnedQuantity,
		ReturnableQuantity: line.ReturnableQuantity,
	}
}
