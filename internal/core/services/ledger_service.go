package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mknzz/budget_tracker_app/internal/apperrors"
	"github.com/mknzz/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/mknzz/budget_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/mknzz/budget_tracker_app/internal/core/ports/services"
	"github.com/mknzz/budget_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
)

// dateLayout is the calendar form submitted by the transaction form.
const dateLayout = "2006-01-02"

// ledgerService implements the LedgerSvcFacade interface.
type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// NewLedgerService creates a new ledger service backed by the given repository.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{ledgerRepo: ledgerRepo}
}

// Ensure ledgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) AddTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: description must not be empty", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than 0", apperrors.ErrValidation)
	}
	txnType := domain.TransactionType(req.Type)
	if !txnType.IsValid() {
		return nil, fmt.Errorf("%w: type must be income or expense", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, fmt.Errorf("%w: category must not be empty", apperrors.ErrValidation)
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be a valid calendar date (YYYY-MM-DD)", apperrors.ErrValidation)
	}

	txns, err := s.ledgerRepo.FindTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger in service: %w", err)
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: nextTransactionID(txns, now),
		Description:   description,
		Amount:        req.Amount,
		Type:          txnType,
		Category:      domain.Category(req.Category),
		Date:          date,
		CreatedAt:     now,
		UserID:        userID,
	}

	// Newest-inserted-first is the ledger's natural order.
	updated := make([]domain.Transaction, 0, len(txns)+1)
	updated = append(updated, txn)
	updated = append(updated, txns...)

	if err := s.ledgerRepo.SaveTransactions(ctx, userID, updated); err != nil {
		return nil, fmt.Errorf("failed to save ledger in service: %w", err)
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.Int64("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)))
	return &txn, nil
}

// nextTransactionID derives an ID from the creation timestamp (milliseconds
// since epoch), bumping past the highest existing ID so IDs stay unique and
// monotonically increasing within a scope.
func nextTransactionID(txns []domain.Transaction, now time.Time) int64 {
	id := now.UnixMilli()
	for _, txn := range txns {
		if txn.TransactionID >= id {
			id = txn.TransactionID + 1
		}
	}
	return id
}

func (s *ledgerService) DeleteTransaction(ctx context.Context, userID string, transactionID int64) error {
	txns, err := s.ledgerRepo.FindTransactionsByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load ledger in service: %w", err)
	}

	// Absent ID leaves the ledger unchanged; that is a no-op, not an error.
	remaining := make([]domain.Transaction, 0, len(txns))
	for _, txn := range txns {
		if txn.TransactionID != transactionID {
			remaining = append(remaining, txn)
		}
	}

	if err := s.ledgerRepo.SaveTransactions(ctx, userID, remaining); err != nil {
		return fmt.Errorf("failed to save ledger in service: %w", err)
	}

	s.LogInfo(ctx, "Transaction deleted", slog.Int64("transaction_id", transactionID))
	return nil
}

func (s *ledgerService) ClearTransactions(ctx context.Context, userID string) error {
	if err := s.ledgerRepo.SaveTransactions(ctx, userID, []domain.Transaction{}); err != nil {
		return fmt.Errorf("failed to clear ledger in service: %w", err)
	}
	s.LogInfo(ctx, "Ledger cleared")
	return nil
}

func (s *ledgerService) SetBudgetGoal(ctx context.Context, userID string, goal decimal.Decimal) error {
	// Non-positive input is deliberately ignored rather than rejected,
	// leaving the previous goal in place.
	if !goal.IsPositive() {
		s.LogDebug(ctx, "Ignoring non-positive budget goal", slog.String("goal", goal.String()))
		return nil
	}
	if err := s.ledgerRepo.SaveBudgetGoal(ctx, userID, goal); err != nil {
		return fmt.Errorf("failed to save budget goal in service: %w", err)
	}
	s.LogInfo(ctx, "Budget goal set", slog.String("goal", goal.String()))
	return nil
}

func (s *ledgerService) GetBudgetGoal(ctx context.Context, userID string) (decimal.Decimal, error) {
	goal, err := s.ledgerRepo.FindBudgetGoal(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load budget goal in service: %w", err)
	}
	return goal, nil
}

func (s *ledgerService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	txns, err := s.ledgerRepo.FindTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger in service: %w", err)
	}

	filtered := filterTransactions(txns, params.Type, params.Category)
	return sortTransactions(filtered, params.SortBy), nil
}

func (s *ledgerService) ReplaceAll(ctx context.Context, userID string, transactions []domain.Transaction, goal decimal.Decimal) error {
	if transactions == nil {
		transactions = []domain.Transaction{}
	}
	if err := s.ledgerRepo.SaveTransactions(ctx, userID, transactions); err != nil {
		return fmt.Errorf("failed to replace ledger in service: %w", err)
	}
	if goal.IsNegative() {
		goal = decimal.Zero
	}
	if err := s.ledgerRepo.SaveBudgetGoal(ctx, userID, goal); err != nil {
		return fmt.Errorf("failed to replace budget goal in service: %w", err)
	}
	s.LogInfo(ctx, "Ledger scope replaced", slog.Int("transaction_count", len(transactions)))
	return nil
}
