package returns

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/shoplite/backend/internal/domain/inventory"
	"github.com/shoplite/backend/internal/domain/invoicing"
	"github.com/shoplite/backend/internal/domain/shared"
)

// ReturnableLine reports how much of one invoice line can still be returned
type ReturnableLine struct {
	Key                inventory.LineKey
	OrderedQuantity    decimal.Decimal
	ReturnedQuantity   decimal.Decimal
	ReturnableQuantity decimal.Decimal
}

// ComputeReturnable calculates the remaining returnable quantity per stock
// line of an invoice, given the quantities already returned against it.
// Invoice lines sharing the same product and batch are summed into one line;
// an unbatched line never merges with a batched line of the same product.
// Lines keep the order of their first appearance on the invoice.
//
// A returned quantity exceeding the ordered quantity means upstream data is
// corrupt and is reported as an integrity error rather than clamped.
func ComputeReturnable(inv *invoicing.Invoice, returned map[inventory.LineKey]decimal.Decimal) ([]ReturnableLine, error) {
	ordered := make(map[inventory.LineKey]decimal.Decimal, len(inv.Lines))
	order := make([]inventory.LineKey, 0, len(inv.Lines))

	for _, line := range inv.Lines {
		key := inventory.NewLineKey(line.ProductID, line.BatchID)
		if _, seen := ordered[key]; !seen {
			order = append(order, key)
		}
		ordered[key] = ordered[key].Add(line.Quantity)
	}

	result := make([]ReturnableLine, 0, len(order))
	for _, key := range order {
		orderedQty := ordered[key]
		returnedQty := returned[key]
		remaining := orderedQty.Sub(returnedQty)
		if remaining.IsNegative() {
			return nil, shared.NewIntegrityError("RETURNED_EXCEEDS_ORDERED",
				fmt.Sprintf("Line %s has %s returned against %s ordered on invoice %s",
					key, returnedQty, orderedQty, inv.InvoiceNumber))
		}
		result = append(result, ReturnableLine{
			Key:                key,
			OrderedQuantity:    orderedQty,
			ReturnedQuantity:   returnedQty,
			ReturnableQuantity: remaining,
		})
	}
	return result, nil
}
