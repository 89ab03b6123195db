package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/mknzz/budget_tracker_app/internal/apperrors"
	"github.com/mknzz/budget_tracker_app/internal/core/domain"
	portssvc "github.com/mknzz/budget_tracker_app/internal/core/ports/services"
	"github.com/mknzz/budget_tracker_app/internal/core/services"
	"github.com/mknzz/budget_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) SaveTransactions(ctx context.Context, userID string, transactions []domain.Transaction) error {
	args := m.Called(ctx, userID, transactions)
	return args.Error(0)
}

func (m *MockLedgerRepository) FindBudgetGoal(ctx context.Context, userID string) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) SaveBudgetGoal(ctx context.Context, userID string, goal decimal.Decimal) error {
	args := m.Called(ctx, userID, goal)
	return args.Error(0)
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLedgerRepository
	service  portssvc.LedgerSvcFacade
	userID   string
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLedgerRepository)
	suite.service = services.NewLedgerService(suite.mockRepo)
	suite.userID = "user-1"
}

func validCreateRequest() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Description: "Coffee",
		Amount:      decimal.RequireFromString("4.50"),
		Type:        "expense",
		Category:    "food",
		Date:        "2026-08-15",
	}
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestAddTransaction_Success() {
	ctx := context.Background()
	req := validCreateRequest()

	suite.mockRepo.On("FindTransactionsByUser", ctx, suite.userID).Return([]domain.Transaction{}, nil).Once()
	suite.mockRepo.On("SaveTransactions", ctx, suite.userID, mock.MatchedBy(func(txns []domain.Transaction) bool {
		return len(txns) == 1 &&
			txns[0].Description == "Coffee" &&
			txns[0].Amount.Equal(decimal.RequireFromString("4.50")) &&
			txns[0].Type == domain.Expense &&
			txns[0].Category == domain.CategoryFood
	})).Return(nil).Once()

	txn, err := suite.service.AddTransaction(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotZero(txn.TransactionID)
	suite.Equal(suite.userID, txn.UserID)
	suite.Equal(2026, txn.Date.Year())
	suite.Equal(time.August, txn.Date.Month())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAddTransaction_ValidationErrors() {
	ctx := context.Background()

	cases := map[string]func(*dto.CreateTransactionRequest){
		"empty description":     func(r *dto.CreateTransactionRequest) { r.Description = "   " },
		"zero amount":           func(r *dto.CreateTransactionRequest) { r.Amount = decimal.Zero },
		"negative amount":       func(r *dto.CreateTransactionRequest) { r.Amount = decimal.NewFromInt(-5) },
		"unknown type":          func(r *dto.CreateTransactionRequest) { r.Type = "transfer" },
		"empty category":        func(r *dto.CreateTransactionRequest) { r.Category = "" },
		"malformed date":        func(r *dto.CreateTransactionRequest) { r.Date = "15/08/2026" },
		"impossible date":       func(r *dto.CreateTransactionRequest) { r.Date = "2026-02-30" },
	}

	for name, mutate := range cases {
		req := validCreateRequest()
		mutate(&req)

		txn, err := suite.service.AddTransaction(ctx, suite.userID, req)

		suite.Require().Error(err, name)
		suite.ErrorIs(err, apperrors.ErrValidation, name)
		suite.Nil(txn, name)
	}

	// A failed insert never touches the stored ledger.
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransactions", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestAddTransaction_UnrecognizedCategoryPassesThrough() {
	ctx := context.Background()
	req := validCreateRequest()
	req.Category = "crypto"

	suite.mockRepo.On("FindTransactionsByUser", ctx, suite.userID).Return([]domain.Transaction{}, nil).Once()
	suite.mockRepo.On("SaveTransactions", ctx, suite.userID, mock.Anything).Return(nil).Once()

	txn, err := suite.service.AddTransaction(ctx, suite.userID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.Category("crypto"), txn.Category)
	suite.Equal("crypto", txn.Category.DisplayName())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAddTransaction_PrependsNewestFirst() {
	ctx := context.Background()
	existing := []domain.Transaction{
		{TransactionID: 100, Description: "Old", Amount: decimal.NewFromInt(1), Type: domain.Expense, Category: domain.CategoryOther},
	}

	var saved []domain.Transaction
	suite.mockRepo.On("FindTransactionsByUser", ctx, suite.userID).Return(existing, nil).Once()
	suite.mockRepo.On("SaveTransactions", ctx, suite.userID, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(2).([]domain.Transaction)
	}).Return(nil).Once()

	_, err := suite.service.AddTransaction(ctx, suite.userID, validCreateRequest())

	suite.Require().NoError(err)
	suite.Require().Len(saved, 2)
	suite.Equal("Coffee", saved[0].Description)
	suite.Equal("Old", saved[1].Description)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAddTransaction_IDsStayMonotonic() {
	ctx := context.Background()
	// An existing ID ahead of the wall clock forces a bump past it.
	futureID := time.Now().Add(time.Hour).UnixMilli()
	existing := []domain.Transaction{{TransactionID: futureID}}

	var saved []domain.Transaction
	suite.mockRepo.On("FindTransactionsByUser", ctx, suite.userID).Return(existing, nil).Once()
	suite.mockRepo.On("SaveTransactions", ctx, suite.userID, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(2).([]domain.Transaction)
	}).Return(nil).Once()

	txn, err := suite.service.AddTransaction(ctx, suite.userID, validCreateRequest())

	suite.Require().NoError(err)
	suite.Equal(futureID+1, txn.TransactionID)
	suite.Require().Len(saved, 2)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_RemovesMatch() {
	ctx := context.Background()
	existing := []domain.Transaction{
		{TransactionID: 2, Description: "Keep"},
		{TransactionID: 1, Description: "Drop"},
	}

	suite.mockRepo.On("FindTransactionsByUser", ctx, suite.userID).Return(existing, nil).Once()
	suite.mockRepo.On("SaveTransactions", ctx, suite.userID, mock.MatchedBy(func(txns []domain.Transaction) bool {
		return len(txns) == 1 && txns[0].TransactionID == 2
	})).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, suite.userID, 1)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_AbsentIDIsNoop() {
	ctx := context.Background()
	existing := []domain.Transaction{{TransactionID: 7}}

	suite.mockRepo.On("FindTransactionsByUser", ctx, suite.userID).Return(existing, nil).Once()
	suite.mockRepo.On("SaveTransactions", ctx, suite.userID, mock.MatchedBy(func(txns []domain.Transaction) bool {
		return len(txns) == 1 && txns[0].TransactionID == 7
	})).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, suite.userID, 999)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestInsertThenDeleteRoundTrip() {
	ctx := context.Background()
	original := []domain.Transaction{
		{TransactionID: 10, Description: "Existing", Amount: decimal.NewFromInt(3), Type: domain.Income, Category: domain.CategorySalary},
	}

	var afterInsert []domain.Transaction
	suite.mockRepo.On("FindTransactionsByUser", ctx, suite.userID).Return(original, nil).Once()
	suite.mockRepo.On("SaveTransactions", ctx, suite.userID, mock.Anything).Run(func(args mock.Arguments) {
		afterInsert = args.Get(2).([]domain.Transaction)
	}).Return(nil).Once()

	inserted, err := suite.service.AddTransaction(ctx, suite.userID, validCreateRequest())
	suite.Require().NoError(err)

	suite.mockRepo.On("FindTransactionsByUser", ctx, suite.userID).Return(afterInsert, nil).Once()
	suite.mockRepo.On("SaveTransactions", ctx, suite.userID, mock.MatchedBy(func(txns []domain.Transaction) bool {
		return len(txns) == len(original) && txns[0].TransactionID == original[0].TransactionID
	})).Return(nil).Once()

	err = suite.service.DeleteTransaction(ctx, suite.userID, inserted.TransactionID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestClearTransactions_LeavesGoalUntouched() {
	ctx := context.Background()

	suite.mockRepo.On("SaveTransactions", ctx, suite.userID, mock.MatchedBy(func(txns []domain.Transaction) bool {
		return len(txns) == 0
	})).Return(nil).Once()

	err := suite.service.ClearTransactions(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveBudgetGoal", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestSetBudgetGoal_IgnoresNonPositive() {
	ctx := context.Background()

	suite.Require().NoError(suite.service.SetBudgetGoal(ctx, suite.userID, decimal.Zero))
	suite.Require().NoError(suite.service.SetBudgetGoal(ctx, suite.userID, decimal.NewFromInt(-50)))

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveBudgetGoal", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestSetBudgetGoal_PersistsPositive() {
	ctx := context.Background()
	goal := decimal.RequireFromString("1500.00")

	suite.mockRepo.On("SaveBudgetGoal", ctx, suite.userID, goal).Return(nil).Once()

	err := suite.service.SetBudgetGoal(ctx, suite.userID, goal)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func fixtureLedger() []domain.Transaction {
	return []domain.Transaction{
		{TransactionID: 4, Description: "Paycheck", Amount: decimal.NewFromInt(2000), Type: domain.Income, Category: domain.CategorySalary, Date: time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)},
		{TransactionID: 3, Description: "Groceries", Amount: decimal.RequireFromString("82.40"), Type: domain.Expense, Category: domain.CategoryFood, Date: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)},
		{TransactionID: 2, Description: "Bus pass", Amount: decimal.NewFromInt(30), Type: domain.Expense, Category: domain.CategoryTransport, Date: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)},
		{TransactionID: 1, Description: "Sold desk", Amount: decimal.NewFromInt(120), Type: domain.Income, Category: domain.CategoryOther, Date: time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC)},
	}
}

func (suite *LedgerServiceTestSuite) TestListTransactions_AllFiltersReturnEverything() {
	ctx := context.Background()
	suite.mockRepo.On("FindTransactionsByUser", ctx, suite.userID).Return(fixtureLedger(), nil).Once()

	txns, err := suite.service.ListTransactions(ctx, suite.userID, dto.ListTransactionsParams{Type: "all", Category: "all"})

	suite.Require().NoError(err)
	suite.Equal(fixtureLedger(), txns)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListTransactions_FiltersAreANDCombined() {
	ctx := context.Background()
	suite.mockRepo.On("FindTransactionsByUser", ctx, suite.userID).Return(fixtureLedger(), nil).Once()

	txns, err := suite.service.ListTransactions(ctx, suite.userID, dto.ListTransactionsParams{Type: "expense", Category: "food"})

	suite.Require().NoError(err)
	suite.Require().Len(txns, 1)
	suite.Equal("Groceries", txns[0].Description)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListTransactions_SortByDateDescending() {
	ctx := context.Background()
	suite.mockRepo.On("FindTransactionsByUser", ctx, suite.userID).Return(fixtureLedger(), nil).Twice()

	txns, err := suite.service.ListTransactions(ctx, suite.userID, dto.ListTransactionsParams{Type: "all", Category: "all", SortBy: "date"})

	suite.Require().NoError(err)
	for i := 1; i < len(txns); i++ {
		suite.False(txns[i].Date.After(txns[i-1].Date))
	}

	// Sorting an already-sorted sequence by the same key is idempotent.
	again, err := suite.service.ListTransactions(ctx, suite.userID, dto.ListTransactionsParams{Type: "all", Category: "all", SortBy: "date"})
	suite.Require().NoError(err)
	suite.Equal(txns, again)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListTransactions_SortByAmountDescending() {
	ctx := context.Background()
	suite.mockRepo.On("FindTransactionsByUser", ctx, suite.userID).Return(fixtureLedger(), nil).Once()

	txns, err := suite.service.ListTransactions(ctx, suite.userID, dto.ListTransactionsParams{Type: "all", Category: "all", SortBy: "amount"})

	suite.Require().NoError(err)
	for i := 1; i < len(txns); i++ {
		suite.True(txns[i].Amount.LessThanOrEqual(txns[i-1].Amount))
	}
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListTransactions_UnknownSortKeyKeepsOrder() {
	ctx := context.Background()
	suite.mockRepo.On("FindTransactionsByUser", ctx, suite.userID).Return(fixtureLedger(), nil).Once()

	txns, err := suite.service.ListTransactions(ctx, suite.userID, dto.ListTransactionsParams{Type: "all", Category: "all", SortBy: "description"})

	suite.Require().NoError(err)
	suite.Equal(fixtureLedger(), txns)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestReplaceAll() {
	ctx := context.Background()
	txns := fixtureLedger()
	goal := decimal.NewFromInt(500)

	suite.mockRepo.On("SaveTransactions", ctx, suite.userID, txns).Return(nil).Once()
	suite.mockRepo.On("SaveBudgetGoal", ctx, suite.userID, goal).Return(nil).Once()

	err := suite.service.ReplaceAll(ctx, suite.userID, txns, goal)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
