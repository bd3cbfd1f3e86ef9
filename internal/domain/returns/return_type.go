package returns

import (
	"github.com/shopspring/decimal"
	"github.com/shoplite/backend/internal/domain/inventory"
	"github.com/shoplite/backend/internal/domain/invoicing"
	"github.com/shoplite/backend/internal/domain/numbering"
	"github.com/shoplite/backend/internal/domain/partner"
)

// ReturnType distinguishes customer returns (goods come back to us) from
// supplier returns (goods go back to the supplier). All direction-dependent
// behavior hangs off this type so adding a new direction means adding a case
// here, not scattering sign checks across services.
type ReturnType string

const (
	ReturnTypeCustomer ReturnType = "customer"
	ReturnTypeSupplier ReturnType = "supplier"
)

// IsValid checks if the return type is valid
func (t ReturnType) IsValid() bool {
	return t == ReturnTypeCustomer || t == ReturnTypeSupplier
}

// StockSign returns the multiplier applied to item quantities when adjusting
// stock: customer returns add stock, supplier returns remove it
func (t ReturnType) StockSign() decimal.Decimal {
	if t == ReturnTypeCustomer {
		return decimal.NewFromInt(1)
	}
	return decimal.NewFromInt(-1)
}

// MovementKind returns the stock movement kind recorded for this direction
func (t ReturnType) MovementKind() inventory.MovementKind {
	if t == ReturnTypeCustomer {
		return inventory.MovementReturnIn
	}
	return inventory.MovementReturnOut
}

// SequencePartition returns the document-number partition for this direction
func (t ReturnType) SequencePartition() numbering.Partition {
	if t == ReturnTypeCustomer {
		return numbering.PartitionCustomerReturn
	}
	return numbering.PartitionSupplierReturn
}

// InvoiceType returns the invoice type a return of this direction must
// reference: customer returns come off sales invoices, supplier returns off
// import invoices
func (t ReturnType) InvoiceType() invoicing.InvoiceType {
	if t == ReturnTypeCustomer {
		return invoicing.InvoiceTypeSales
	}
	return invoicing.InvoiceTypeImport
}

// PartyType returns the party type a return of this direction settles with
func (t ReturnType) PartyType() partner.PartyType {
	if t == ReturnTypeCustomer {
		return partner.PartyTypeCustomer
	}
	return partner.PartyTypeSupplier
}

// RefundType describes how the return total is settled with the party
type RefundType string

const (
	RefundTypeCash       RefundType = "cash"
	RefundTypeCredit     RefundType = "credit"
	RefundTypeAdjustment RefundType = "adjustment"
	RefundTypeNone       RefundType = "none"
)

// IsValid checks if the refund type is valid
func (r RefundType) IsValid() bool {
	switch r {
	case RefundTypeCash, RefundTypeCredit, RefundTypeAdjustment, RefundTypeNone:
		return true
	}
	return false
}
