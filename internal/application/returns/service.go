package returns

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shoplite/backend/internal/domain/catalog"
	"github.com/shoplite/backend/internal/domain/finance"
	"github.com/shoplite/backend/internal/domain/inventory"
	"github.com/shoplite/backend/internal/domain/invoicing"
	"github.com/shoplite/backend/internal/domain/numbering"
	"github.com/shoplite/backend/internal/domain/partner"
	"github.com/shoplite/backend/internal/domain/returns"
	"github.com/shoplite/backend/internal/domain/shared"
)

// ReferenceTypeReturn tags stock movements and payments produced by returns
const ReferenceTypeReturn = "RETURN"

// Service orchestrates the return workflow: validation, document numbering,
// stock adjustment, balance adjustment and settlement, all inside one
// transaction so a failure at any step leaves no partial writes.
type Service struct {
	uow       shared.UnitOfWork
	returns   returns.ReturnRepository
	invoices  invoicing.InvoiceRepository
	parties   partner.PartyRepository
	products  catalog.ProductRepository
	payments  finance.PaymentRepository
	stock     *inventory.StockLedger
	balances  *finance.BalanceLedger
	allocator numbering.Allocator
	logger    *zap.Logger
}

// NewService creates a return service
func NewService(
	uow shared.UnitOfWork,
	returnRepo returns.ReturnRepository,
	invoiceRepo invoicing.InvoiceRepository,
	partyRepo partner.PartyRepository,
	productRepo catalog.ProductRepository,
	paymentRepo finance.PaymentRepository,
	stockLedger *inventory.StockLedger,
	balanceLedger *finance.BalanceLedger,
	allocator numbering.Allocator,
	logger *zap.Logger,
) *Service {
	return &Service{
		uow:       uow,
		returns:   returnRepo,
		invoices:  invoiceRepo,
		parties:   partyRepo,
		products:  productRepo,
		payments:  paymentRepo,
		stock:     stockLedger,
		balances:  balanceLedger,
		allocator: allocator,
		logger:    logger,
	}
}

// Create records a complete return in one transaction. On success the
// document exists with its items, stock and the party balance are adjusted,
// one movement row per line is written, and a settlement payment is recorded
// when the direction and refund type call for one.
func (s *Service) Create(ctx context.Context, req CreateReturnRequest) (*ReturnResponse, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	var response ReturnResponse
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		invoice, err := s.loadEligibleInvoice(ctx, req)
		if err != nil {
			return err
		}
		if err := s.checkParty(ctx, req); err != nil {
			return err
		}
		if err := s.checkItems(ctx, req.Items); err != nil {
			return err
		}
		if err := s.checkReturnable(ctx, invoice, req.Items); err != nil {
			return err
		}

		number, err := s.allocator.Next(ctx, req.ReturnType.SequencePartition())
		if err != nil {
			return err
		}

		ret, err := returns.NewReturn(number, req.ReturnType, req.InvoiceID, req.PartyID, req.RefundType, req.Reason, req.Notes)
		if err != nil {
			return err
		}
		for _, item := range req.Items {
			if err := ret.AddItem(item.ProductID, item.BatchID, item.Quantity, item.UnitPrice); err != nil {
				return err
			}
		}
		if err := ret.Complete(); err != nil {
			return err
		}

		if err := s.returns.Save(ctx, ret); err != nil {
			return err
		}

		sign := req.ReturnType.StockSign()
		kind := req.ReturnType.MovementKind()
		for i := range ret.Items {
			item := &ret.Items[i]
			delta := item.Quantity.Mul(sign)
			if err := s.stock.Apply(ctx, item.LineKey(), delta, kind, ReferenceTypeReturn, ret.ID); err != nil {
				return err
			}
		}

		if err := s.balances.ApplyReturn(ctx, ret.PartyID, ret.TotalAmount); err != nil {
			return err
		}

		// A zero-total return settles through the balance alone and writes
		// no payment row.
		if paymentType, method, ok := finance.SettlementFor(ret.Type, ret.RefundType); ok && ret.TotalAmount.IsPositive() {
			payment, err := finance.NewPayment(paymentType, method, ret.PartyID, ret.TotalAmount, ReferenceTypeReturn, ret.ID, ret.DocumentNumber)
			if err != nil {
				return err
			}
			if err := s.payments.Save(ctx, payment); err != nil {
				return err
			}
		}

		response = ToReturnResponse(ret)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("return recorded",
		zap.String("document_number", response.DocumentNumber),
		zap.String("type", string(response.Type)),
		zap.String("total_amount", response.TotalAmount.String()),
		zap.Int("items", response.ItemCount))
	return &response, nil
}

// GetByID retrieves a return by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*ReturnResponse, error) {
	ret, err := s.returns.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToReturnResponse(ret)
	return &response, nil
}

// List retrieves a paginated list of returns matching the filter
func (s *Service) List(ctx context.Context, filter ReturnListFilter) (*shared.Paginated[ReturnResponse], error) {
	repoFilter := toRepoFilter(filter)

	items, err := s.returns.FindAll(ctx, repoFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.returns.Count(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]ReturnResponse, len(items))
	for i := range items {
		responses[i] = ToReturnResponse(&items[i])
	}
	result := shared.NewPaginated(responses, total, repoFilter.Page, repoFilter.PageSize)
	return &result, nil
}

// Returnable reports how much of each line of an invoice can still be returned
func (s *Service) Returnable(ctx context.Context, invoiceID uuid.UUID) ([]ReturnableLineResponse, error) {
	invoice, err := s.invoices.FindByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	returned, err := s.returns.SumReturnedQuantities(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	lines, err := returns.ComputeReturnable(invoice, returned)
	if err != nil {
		return nil, err
	}

	responses := make([]ReturnableLineResponse, len(lines))
	for i, line := range lines {
		responses[i] = ToReturnableLineResponse(line)
	}
	return responses, nil
}

// Summary aggregates completed returns by type and reason
func (s *Service) Summary(ctx context.Context, filter SummaryFilter) (*SummaryResponse, error) {
	rows, err := s.returns.Summary(ctx, filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, err
	}

	response := SummaryResponse{Rows: rows, TotalAmount: decimal.Zero}
	for _, row := range rows {
		response.TotalCount += row.Count
		response.TotalAmount = response.TotalAmount.Add(row.TotalAmount)
	}
	return &response, nil
}

func validateCreateRequest(req CreateReturnRequest) error {
	if !req.ReturnType.IsValid() {
		return shared.NewValidationError("INVALID_RETURN_TYPE", "Return type must be customer or supplier")
	}
	if req.RefundType != "" && !req.RefundType.IsValid() {
		return shared.NewValidationError("INVALID_REFUND_TYPE", "Unknown refund type")
	}
	if len(req.Items) == 0 {
		return shared.NewValidationError("EMPTY_RETURN", "Return must have at least one item")
	}
	for _, item := range req.Items {
		if item.ProductID == uuid.Nil {
			return shared.NewValidationError("INVALID_PRODUCT", "Product ID is required")
		}
		if !item.Quantity.IsPositive() {
			return shared.NewValidationError("INVALID_QUANTITY", "Return quantity must be positive")
		}
		if item.UnitPrice.IsNegative() {
			return shared.NewValidationError("INVALID_UNIT_PRICE", "Unit price cannot be negative")
		}
	}
	return nil
}

func (s *Service) loadEligibleInvoice(ctx context.Context, req CreateReturnRequest) (*invoicing.Invoice, error) {
	invoice, err := s.invoices.FindByID(ctx, req.InvoiceID)
	if err != nil {
		return nil, err
	}
	if !invoice.IsFinalized() {
		return nil, shared.NewValidationError("INVOICE_NOT_FINALIZED", "Returns can only reference finalized invoices")
	}
	if invoice.Type != req.ReturnType.InvoiceType() {
		return nil, shared.NewValidationError("INVOICE_TYPE_MISMATCH",
			fmt.Sprintf("A %s return must reference a %s invoice", req.ReturnType, req.ReturnType.InvoiceType()))
	}
	if !invoice.BelongsTo(req.PartyID) {
		return nil, shared.NewValidationError("INVOICE_PARTY_MISMATCH", "Invoice was not issued to the given party")
	}
	return invoice, nil
}

func (s *Service) checkParty(ctx context.Context, req CreateReturnRequest) error {
	party, err := s.parties.FindByID(ctx, req.PartyID)
	if err != nil {
		return err
	}
	if party.Type != req.ReturnType.PartyType() {
		return shared.NewValidationError("PARTY_TYPE_MISMATCH",
			fmt.Sprintf("A %s return must settle with a %s", req.ReturnType, req.ReturnType.PartyType()))
	}
	return nil
}

func (s *Service) checkItems(ctx context.Context, items []CreateReturnItemInput) error {
	ids := make([]uuid.UUID, 0, len(items))
	seen := make(map[uuid.UUID]bool, len(items))
	for _, item := range items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			ids = append(ids, item.ProductID)
		}
	}

	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	found := make(map[uuid.UUID]bool, len(products))
	for _, p := range products {
		found[p.ID] = true
	}
	for _, item := range items {
		if !found[item.ProductID] {
			return shared.NewNotFoundError("PRODUCT_NOT_FOUND", "Product not found: "+item.ProductID.String())
		}
		if item.BatchID != nil {
			batch, err := s.products.FindBatchByID(ctx, *item.BatchID)
			if err != nil {
				return err
			}
			if batch.ProductID != item.ProductID {
				return shared.NewValidationError("BATCH_PRODUCT_MISMATCH", "Batch does not belong to the given product")
			}
		}
	}
	return nil
}

// checkReturnable rejects items that reference lines not on the invoice or
// that would push the cumulative returned quantity past the ordered quantity.
func (s *Service) checkReturnable(ctx context.Context, invoice *invoicing.Invoice, items []CreateReturnItemInput) error {
	returned, err := s.returns.SumReturnedQuantities(ctx, invoice.ID)
	if err != nil {
		return err
	}
	lines, err := returns.ComputeReturnable(invoice, returned)
	if err != nil {
		return err
	}

	remaining := make(map[inventory.LineKey]decimal.Decimal, len(lines))
	for _, line := range lines {
		remaining[line.Key] = line.ReturnableQuantity
	}

	for _, item := range items {
		key := inventory.NewLineKey(item.ProductID, item.BatchID)
		available, onInvoice := remaining[key]
		if !onInvoice {
			return shared.NewValidationError("LINE_NOT_ON_INVOICE",
				fmt.Sprintf("Line %s does not appear on invoice %s", key, invoice.InvoiceNumber))
		}
		if item.Quantity.GreaterThan(available) {
			return shared.NewValidationError("RETURN_EXCEEDS_RETURNABLE",
				fmt.Sprintf("Line %s has only %s returnable, requested %s", key, available, item.Quantity))
		}
		remaining[key] = available.Sub(item.Quantity)
	}
	return nil
}

func toRepoFilter(filter ReturnListFilter) shared.Filter {
	repoFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		repoFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		repoFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		repoFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		repoFilter.OrderDir = filter.OrderDir
	}
	if filter.Type != nil {
		repoFilter.Filters["type"] = *filter.Type
	}
	if filter.PartyID != nil {
		repoFilter.Filters["party_id"] = *filter.PartyID
	}
	if filter.InvoiceID != nil {
		repoFilter.Filters["invoice_id"] = *filter.InvoiceID
	}
	if filter.StartDate != nil {
		repoFilter.Filters["start_date"] = *filter.StartDate
	}
	if filter.EndDate != nil {
		repoFilter.Filters["end_date"] = *filter.EndDate
	}
	return repoFilter
}
