package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/retailbooks/retail_accounting_app/internal/apperrors"
	"github.com/retailbooks/retail_accounting_app/internal/core/domain"
	portsrepo "github.com/retailbooks/retail_accounting_app/internal/core/ports/repositories"
	portssvc "github.com/retailbooks/retail_accounting_app/internal/core/ports/services"
	"github.com/retailbooks/retail_accounting_app/internal/dto"
	"github.com/retailbooks/retail_accounting_app/internal/utils/period"
)

// Transaction statuses that count toward a period's aggregates.
var (
	closableSaleStatuses     = []string{"COMPLETED"}
	closablePurchaseStatuses = []string{"PAID", "COMPLETED"}
	closableExpenseStatuses  = []string{"PAID", "PARTIALLY_PAID"}
)

// closingService implements the ClosingSvcFacade interface. It orchestrates
// one synchronous closing request: boundary resolution, sequential order
// enforcement, duplicate check, opening balance resolution, aggregation and
// snapshot persistence.
type closingService struct {
	BaseService
	closingRepo  portsrepo.ClosingRepositoryFacade
	txnStore     portsrepo.TransactionStoreFacade
	accountRepo  portsrepo.AccountRepositoryFacade
	productRepo  portsrepo.ProductReader
	activityRepo portsrepo.ActivityLogWriter
}

// ClosingServiceOption is a functional option for configuring the closing service
type ClosingServiceOption func(*closingService)

// WithActivityLogWriter adds the best-effort audit trail dependency.
func WithActivityLogWriter(repo portsrepo.ActivityLogWriter) ClosingServiceOption {
	return func(s *closingService) {
		s.activityRepo = repo
	}
}

// NewClosingService creates a new closing service with the provided options.
func NewClosingService(
	closingRepo portsrepo.ClosingRepositoryFacade,
	txnStore portsrepo.TransactionStoreFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	productRepo portsrepo.ProductReader,
	options ...ClosingServiceOption,
) portssvc.ClosingSvcFacade {
	svc := &closingService{
		closingRepo: closingRepo,
		txnStore:    txnStore,
		accountRepo: accountRepo,
		productRepo: productRepo,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure closingService implements the ClosingSvcFacade interface
var _ portssvc.ClosingSvcFacade = (*closingService)(nil)

// boundary is the resolved aggregation window for one closing request.
type boundary struct {
	periodStart    time.Time
	periodEnd      time.Time
	closingDate    time.Time // normalized nominal date
	isFirstClosing bool
	previous       *domain.ClosingRecord // nil on first closing
}

// aggregates holds the joined results of the fan-out reads.
type aggregates struct {
	sales    domain.SalesSummary
	purchase domain.PaymentSummary
	expense  domain.PaymentSummary
	stock    domain.StockSnapshot
}

func (s *closingService) ClosePeriod(ctx context.Context, outletID string, req dto.CreateClosingRequest, userID string) (*domain.ClosingRecord, error) {
	closingType, closingDate, err := parseClosingRequest(req)
	if err != nil {
		s.LogError(ctx, err, "Invalid closing request",
			slog.String("outlet_id", outletID))
		return nil, err
	}

	// The prior-closing lookup, duplicate check and final write must not race
	// a concurrent close for the same outlet and type, so they all run inside
	// one transaction holding the per-(outlet, type) lock.
	tx, err := s.closingRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin closing transaction: %w", err)
	}
	defer s.closingRepo.Rollback(ctx, tx)

	if err := s.closingRepo.LockClosings(ctx, tx, outletID, closingType); err != nil {
		return nil, fmt.Errorf("failed to lock closings for outlet %s: %w", outletID, err)
	}

	bound, err := s.resolveBoundary(ctx, tx, outletID, closingType, closingDate)
	if err != nil {
		return nil, err
	}

	if err := enforceSequence(closingType, bound); err != nil {
		s.LogError(ctx, err, "Closing sequence violation",
			slog.String("outlet_id", outletID),
			slog.String("closing_type", string(closingType)),
			slog.Time("closing_date", bound.closingDate))
		return nil, err
	}

	// A period can be closed exactly once; there is no re-close or amend.
	if _, err := s.closingRepo.FindClosingByDateInTx(ctx, tx, outletID, closingType, bound.closingDate); err == nil {
		return nil, fmt.Errorf("%w: %s closing for %s already exists",
			apperrors.ErrDuplicate, closingType, bound.closingDate.Format("2006-01-02"))
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed duplicate check: %w", err)
	}

	openingCash, openingBank, err := s.resolveOpeningBalances(ctx, outletID, bound)
	if err != nil {
		return nil, err
	}

	agg, err := s.aggregate(ctx, outletID, bound.periodStart, bound.periodEnd)
	if err != nil {
		return nil, err
	}

	record := buildSnapshot(outletID, closingType, bound, openingCash, openingBank, agg, req.Notes, userID)

	if err := s.closingRepo.SaveClosingInTx(ctx, tx, record); err != nil {
		s.LogError(ctx, err, "Failed to persist closing",
			slog.String("outlet_id", outletID),
			slog.Time("closing_date", bound.closingDate))
		return nil, err
	}

	if err := s.closingRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Period closed",
		slog.String("closing_id", record.ClosingID),
		slog.String("outlet_id", outletID),
		slog.String("closing_type", string(closingType)),
		slog.Time("closing_date", bound.closingDate),
		slog.Bool("first_closing", bound.isFirstClosing))

	s.appendActivityLog(ctx, record)

	return &record, nil
}

// parseClosingRequest validates and normalizes the request inputs.
func parseClosingRequest(req dto.CreateClosingRequest) (domain.ClosingType, time.Time, error) {
	var closingType domain.ClosingType
	switch req.ClosingType {
	case string(domain.ClosingTypeDay):
		closingType = domain.ClosingTypeDay
	case string(domain.ClosingTypeMonth):
		closingType = domain.ClosingTypeMonth
	case "":
		return "", time.Time{}, fmt.Errorf("%w: closing type is required", apperrors.ErrValidation)
	default:
		return "", time.Time{}, fmt.Errorf("%w: unknown closing type %q", apperrors.ErrValidation, req.ClosingType)
	}

	if req.ClosingDate == "" {
		return "", time.Time{}, fmt.Errorf("%w: closing date is required", apperrors.ErrValidation)
	}
	date, err := time.ParseInLocation("2006-01-02", req.ClosingDate, time.Local)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: invalid closing date %q", apperrors.ErrValidation, req.ClosingDate)
	}

	// Month closings are stored under the first of the month regardless of the
	// day requested, so two requests for the same month always collide on the
	// exact-date duplicate check and the (outlet, type, date) unique index.
	if closingType == domain.ClosingTypeMonth {
		return closingType, period.MonthStart(date), nil
	}

	return closingType, period.Normalize(date), nil
}

// resolveBoundary determines whether this is the outlet's first closing of
// the type and computes the exact aggregation window. The period end always
// extends past midnight by the grace window so late-night shift transactions
// stay inside the day they belong to.
func (s *closingService) resolveBoundary(ctx context.Context, tx pgx.Tx, outletID string, closingType domain.ClosingType, closingDate time.Time) (boundary, error) {
	bound := boundary{closingDate: closingDate}

	prev, err := s.closingRepo.FindLatestClosingBeforeInTx(ctx, tx, outletID, closingType, closingDate)
	switch {
	case err == nil:
		bound.previous = prev
	case errors.Is(err, apperrors.ErrNotFound):
		bound.isFirstClosing = true
	default:
		return boundary{}, fmt.Errorf("failed to find previous closing: %w", err)
	}

	switch closingType {
	case domain.ClosingTypeDay:
		_, bound.periodEnd = period.DayPeriod(closingDate)
	case domain.ClosingTypeMonth:
		_, bound.periodEnd = period.MonthPeriod(closingDate)
	}

	if !bound.isFirstClosing {
		// Subsequent closings pick up exactly where the previous one left off:
		// the prior record's period end, so grace-window transactions already
		// swept into the prior period are not aggregated a second time.
		bound.periodStart = prev.PeriodEnd
		return bound, nil
	}

	// First closing ever: sweep everything since the outlet's oldest
	// operational transaction into this period.
	earliest, err := s.earliestTransactionDate(ctx, outletID)
	if err != nil {
		return boundary{}, err
	}
	if earliest == nil {
		bound.periodStart = closingDate
	} else {
		bound.periodStart = period.Normalize(*earliest)
	}

	return bound, nil
}

// earliestTransactionDate returns the outlet's oldest transaction date across
// sales, purchases and expenses, or nil when no history exists. The three
// lookups are independent and fan out concurrently.
func (s *closingService) earliestTransactionDate(ctx context.Context, outletID string) (*time.Time, error) {
	var saleDate, purchaseDate, expenseDate *time.Time

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		saleDate, err = s.txnStore.FindEarliestSaleDate(gctx, outletID)
		if err != nil {
			return fmt.Errorf("failed to find earliest sale date: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		purchaseDate, err = s.txnStore.FindEarliestPurchaseDate(gctx, outletID)
		if err != nil {
			return fmt.Errorf("failed to find earliest purchase date: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		expenseDate, err = s.txnStore.FindEarliestExpenseDate(gctx, outletID)
		if err != nil {
			return fmt.Errorf("failed to find earliest expense date: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var earliest *time.Time
	for _, d := range []*time.Time{saleDate, purchaseDate, expenseDate} {
		if d == nil {
			continue
		}
		if earliest == nil || d.Before(*earliest) {
			earliest = d
		}
	}
	return earliest, nil
}

// enforceSequence rejects out-of-order closings: the previous calendar day
// (resp. month) must already be closed, so the closing chain stays gap-free.
// A first closing has nothing to be ordered against.
func enforceSequence(closingType domain.ClosingType, bound boundary) error {
	if bound.isFirstClosing {
		return nil
	}
	prev := bound.previous

	switch closingType {
	case domain.ClosingTypeDay:
		expected := period.PreviousDay(bound.closingDate)
		if !period.SameDay(prev.ClosingDate, expected) {
			return &apperrors.SequenceViolationError{
				ClosingType:    "day",
				ExpectedDate:   expected,
				LastClosedDate: prev.ClosingDate,
			}
		}
	case domain.ClosingTypeMonth:
		if !period.IsPreviousCalendarMonth(prev.ClosingDate, bound.closingDate) {
			return &apperrors.SequenceViolationError{
				ClosingType:    "month",
				ExpectedDate:   period.MonthStart(bound.closingDate).AddDate(0, -1, 0),
				LastClosedDate: prev.ClosingDate,
			}
		}
	}
	return nil
}

// resolveOpeningBalances produces the period's opening cash and bank figures.
// On the first closing they are derived from ledger history; on every
// subsequent closing they are copied from the previous closing record, never
// recomputed.
func (s *closingService) resolveOpeningBalances(ctx context.Context, outletID string, bound boundary) (cash, bank decimal.Decimal, err error) {
	if !bound.isFirstClosing {
		return bound.previous.ClosingCash, bound.previous.ClosingBank, nil
	}

	cash, err = s.ledgerBalance(ctx, outletID, domain.SubTypeCash, bound.periodStart)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	bank, err = s.ledgerBalance(ctx, outletID, domain.SubTypeBank, bound.periodStart)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return cash, bank, nil
}

// ledgerBalance sums debit minus credit over ledger entries on the outlet's
// active accounts of the given sub-type, dated on or before asOf. The cutoff
// is inclusive: an opening-balance entry may share a date with the first
// operational transaction. No accounts or entries is a zero balance, not an
// error.
func (s *closingService) ledgerBalance(ctx context.Context, outletID string, subType domain.AccountSubType, asOf time.Time) (decimal.Decimal, error) {
	accounts, err := s.accountRepo.FindAccountsBySubType(ctx, outletID, subType, true)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to find %s accounts: %w", subType, err)
	}
	if len(accounts) == 0 {
		return decimal.Zero, nil
	}

	accountIDs := make([]string, len(accounts))
	for i, acc := range accounts {
		accountIDs[i] = acc.AccountID
	}

	entries, err := s.accountRepo.FindLedgerEntries(ctx, outletID, accountIDs, asOf)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to find ledger entries: %w", err)
	}

	balance := decimal.Zero
	for _, entry := range entries {
		balance = balance.Add(entry.SignedAmount())
	}
	return balance, nil
}

// aggregate fans out the independent period reads and joins them before
// snapshot construction.
func (s *closingService) aggregate(ctx context.Context, outletID string, from, to time.Time) (aggregates, error) {
	var agg aggregates

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sales, err := s.txnStore.FindSalesInPeriod(gctx, outletID, closableSaleStatuses, from, to)
		if err != nil {
			return fmt.Errorf("failed to find sales in period: %w", err)
		}
		agg.sales = summarizeSales(sales)
		return nil
	})
	g.Go(func() error {
		purchases, err := s.txnStore.FindPurchasesInPeriod(gctx, outletID, closablePurchaseStatuses, from, to)
		if err != nil {
			return fmt.Errorf("failed to find purchases in period: %w", err)
		}
		agg.purchase = summarizePurchases(purchases)
		return nil
	})
	g.Go(func() error {
		expenses, err := s.txnStore.FindExpensesInPeriod(gctx, outletID, closableExpenseStatuses, from, to)
		if err != nil {
			return fmt.Errorf("failed to find expenses in period: %w", err)
		}
		agg.expense = summarizeExpenses(expenses)
		return nil
	})
	g.Go(func() error {
		products, err := s.productRepo.FindActiveProducts(gctx, outletID)
		if err != nil {
			return fmt.Errorf("failed to find active products: %w", err)
		}
		agg.stock = snapshotStock(products)
		return nil
	})
	if err := g.Wait(); err != nil {
		return aggregates{}, err
	}

	return agg, nil
}

// summarizeSales splits settled sales by payment channel. A sale settled by
// a method outside cash/card/bank-transfer (pure credit) still counts toward
// revenue, discount, tax and the sales count, but moves neither cash nor bank.
func summarizeSales(sales []domain.Sale) domain.SalesSummary {
	sum := domain.SalesSummary{
		CashSales:     decimal.Zero,
		BankSales:     decimal.Zero,
		TotalRevenue:  decimal.Zero,
		TotalDiscount: decimal.Zero,
		TotalTax:      decimal.Zero,
	}
	for _, sale := range sales {
		switch {
		case sale.PaymentMethod.MovesCash():
			sum.CashSales = sum.CashSales.Add(sale.SettledAmount())
		case sale.PaymentMethod.MovesBank():
			sum.BankSales = sum.BankSales.Add(sale.SettledAmount())
		}
		sum.TotalRevenue = sum.TotalRevenue.Add(sale.GrandTotal)
		sum.TotalDiscount = sum.TotalDiscount.Add(sale.Discount)
		sum.TotalTax = sum.TotalTax.Add(sale.Tax)
		sum.Count++
	}
	return sum
}

func summarizePurchases(purchases []domain.Purchase) domain.PaymentSummary {
	sum := domain.PaymentSummary{Cash: decimal.Zero, Bank: decimal.Zero}
	for _, p := range purchases {
		switch {
		case p.PaymentMethod.MovesCash():
			sum.Cash = sum.Cash.Add(p.SettledAmount())
		case p.PaymentMethod.MovesBank():
			sum.Bank = sum.Bank.Add(p.SettledAmount())
		}
	}
	return sum
}

func summarizeExpenses(expenses []domain.Expense) domain.PaymentSummary {
	sum := domain.PaymentSummary{Cash: decimal.Zero, Bank: decimal.Zero}
	for _, e := range expenses {
		switch {
		case e.PaymentMethod.MovesCash():
			sum.Cash = sum.Cash.Add(e.SettledAmount())
		case e.PaymentMethod.MovesBank():
			sum.Bank = sum.Bank.Add(e.SettledAmount())
		}
	}
	return sum
}

func snapshotStock(products []domain.Product) domain.StockSnapshot {
	snap := domain.StockSnapshot{Quantity: decimal.Zero, Value: decimal.Zero}
	for _, p := range products {
		snap.Quantity = snap.Quantity.Add(p.CurrentStock)
		snap.Value = snap.Value.Add(p.CurrentStock.Mul(p.CostPrice))
	}
	return snap
}

// buildSnapshot combines opening balances, aggregated flows and the inventory
// snapshot into the immutable closing record, computing the derived totals.
func buildSnapshot(outletID string, closingType domain.ClosingType, bound boundary, openingCash, openingBank decimal.Decimal, agg aggregates, notes string, userID string) domain.ClosingRecord {
	now := time.Now()

	cashPayments := agg.purchase.Cash.Add(agg.expense.Cash)
	bankPayments := agg.purchase.Bank.Add(agg.expense.Bank)
	closingCash := openingCash.Add(agg.sales.CashSales).Sub(cashPayments)
	closingBank := openingBank.Add(agg.sales.BankSales).Sub(bankPayments)

	if bound.isFirstClosing {
		annotation := fmt.Sprintf("First closing: includes historical transactions since %s.",
			bound.periodStart.Format("2006-01-02"))
		if notes != "" {
			notes = notes + " " + annotation
		} else {
			notes = annotation
		}
	}

	return domain.ClosingRecord{
		ClosingID:   uuid.NewString(),
		OutletID:    outletID,
		ClosingType: closingType,
		ClosingDate: bound.closingDate,
		PeriodStart: bound.periodStart,
		PeriodEnd:   bound.periodEnd,
		Status:      domain.ClosingStatusClosed,

		OpeningCash: openingCash,
		OpeningBank: openingBank,
		ClosingCash: closingCash,
		ClosingBank: closingBank,

		CashSales:    agg.sales.CashSales,
		BankSales:    agg.sales.BankSales,
		CashPayments: cashPayments,
		BankPayments: bankPayments,

		TotalRevenue:  agg.sales.TotalRevenue,
		TotalDiscount: agg.sales.TotalDiscount,
		TotalTax:      agg.sales.TotalTax,
		SalesCount:    agg.sales.Count,

		TotalOpeningBalance: openingCash.Add(openingBank),
		TotalClosingBalance: closingCash.Add(closingBank),

		// Opening stock does not roll forward from the previous closing the
		// way cash and bank do; it stays zero on every closing.
		OpeningStockQty:   decimal.Zero,
		OpeningStockValue: decimal.Zero,
		ClosingStockQty:   agg.stock.Quantity,
		ClosingStockValue: agg.stock.Value,

		NetProfit: agg.sales.TotalRevenue.Sub(cashPayments.Add(bankPayments)),

		Notes:    notes,
		ClosedBy: userID,
		ClosedAt: now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
}

// appendActivityLog records the closing in the audit trail. Best-effort: a
// failed append is logged and swallowed, never propagated.
func (s *closingService) appendActivityLog(ctx context.Context, record domain.ClosingRecord) {
	if s.activityRepo == nil {
		return
	}

	entry := domain.ActivityLog{
		ActivityID: uuid.NewString(),
		OutletID:   record.OutletID,
		UserID:     record.ClosedBy,
		Action:     fmt.Sprintf("closing.%s.created", strings.ToLower(string(record.ClosingType))),
		Description: fmt.Sprintf("Closed %s period %s (revenue %s, net profit %s)",
			strings.ToLower(string(record.ClosingType)),
			record.ClosingDate.Format("2006-01-02"),
			record.TotalRevenue.String(),
			record.NetProfit.String()),
		CreatedAt: time.Now(),
	}

	if err := s.activityRepo.SaveActivity(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to append activity log for closing",
			slog.String("closing_id", record.ClosingID))
	}
}

func (s *closingService) GetClosingByID(ctx context.Context, outletID string, closingID string) (*domain.ClosingRecord, error) {
	record, err := s.closingRepo.FindClosingByID(ctx, closingID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find closing by ID",
				slog.String("closing_id", closingID))
		}
		return nil, err
	}

	// Return NotFound to obscure existence from other outlets.
	if record.OutletID != outletID {
		return nil, apperrors.ErrNotFound
	}

	return record, nil
}

func (s *closingService) GetLatestClosing(ctx context.Context, outletID string, closingType domain.ClosingType) (*domain.ClosingRecord, error) {
	record, err := s.closingRepo.FindLatestClosing(ctx, outletID, closingType)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find latest closing",
				slog.String("outlet_id", outletID),
				slog.String("closing_type", string(closingType)))
		}
		return nil, err
	}
	return record, nil
}

func (s *closingService) ListClosings(ctx context.Context, outletID string, limit int, offset int) ([]domain.ClosingRecord, error) {
	records, err := s.closingRepo.ListClosings(ctx, outletID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list closings",
			slog.String("outlet_id", outletID),
			slog.Int("limit", limit),
			slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list closings for outlet %s: %w", outletID, err)
	}

	if records == nil {
		return []domain.ClosingRecord{}, nil
	}
	return records, nil
}
