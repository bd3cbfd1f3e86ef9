package finance

import (
	"github.com/shoplite/backend/internal/domain/returns"
)

// SettlementFor maps a return direction and refund type to the payment that
// settles it, if any. Only two combinations produce a payment record:
// customer returns refunded in cash, and supplier returns settled by credit
// note. Everything else is settled implicitly through the party balance.
func SettlementFor(returnType returns.ReturnType, refundType returns.RefundType) (PaymentType, PaymentMethod, bool) {
	switch {
	case returnType == returns.ReturnTypeCustomer && refundType == returns.RefundTypeCash:
		return PaymentCustomerRefund, MethodCash, true
	case returnType == returns.ReturnTypeSupplier && refundType == returns.RefundTypeCredit:
		return PaymentSupplierCredit, MethodCredit, true
	default:
		return "", "", false
	}
}
