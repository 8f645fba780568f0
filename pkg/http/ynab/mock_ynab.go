package ynab

import (
	"context"
	"fmt"
)

// MockClient is a mock implementation of the YNAB client for testing
type MockClient struct {
	// Mock data to return
	User         *User
	Budgets      []Budget
	Accounts     []Account
	Categories   []Category
	Payees       []Payee
	Months       []Month
	Transactions []Transaction

	// Error values to return
	GetUserErr          error
	ListBudgetsErr      error
	ListAccountsErr     error
	GetAccountErr       error
	ListCategoriesErr   error
	ListPayeesErr       error
	ListMonthsErr       error
	ListTransactionsErr error
}

// NewMockClient creates a new mock YNAB client
func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) GetUser(ctx context.Context) (*User, error) {
	if m.GetUserErr != nil {
		return nil, m.GetUserErr
	}
	return m.User, nil
}

func (m *MockClient) ListBudgets(ctx context.Context) ([]Budget, error) {
	if m.ListBudgetsErr != nil {
		return nil, m.ListBudgetsErr
	}
	return m.Budgets, nil
}

func (m *MockClient) ListAccounts(ctx context.Context) ([]Account, error) {
	if m.ListAccountsErr != nil {
		return nil, m.ListAccountsErr
	}
	return m.Accounts, nil
}

// GetAccount returns the mock account matching the given ID
func (m *MockClient) GetAccount(ctx context.Context, accountID string) (*Account, error) {
	if m.GetAccountErr != nil {
		return nil, m.GetAccountErr
	}
	for i := range m.Accounts {
		if m.Accounts[i].ID == accountID {
			return &m.Accounts[i], nil
		}
	}
	return nil, fmt.Errorf("no account with id %s", accountID)
}

func (m *MockClient) ListCategories(ctx context.Context) ([]Category, error) {
	if m.ListCategoriesErr != nil {
		return nil, m.ListCategoriesErr
	}
	return m.Categories, nil
}

func (m *MockClient) ListPayees(ctx context.Context) ([]Payee, error) {
	if m.ListPayeesErr != nil {
		return nil, m.ListPayeesErr
	}
	return m.Payees, nil
}

func (m *MockClient) ListMonths(ctx context.Context) ([]Month, error) {
	if m.ListMonthsErr != nil {
		return nil, m.ListMonthsErr
	}
	return m.Months, nil
}

func (m *MockClient) ListTransactions(ctx context.Context, sinceDate string) ([]Transaction, error) {
	if m.ListTransactionsErr != nil {
		return nil, m.ListTransactionsErr
	}
	return m.Transactions, nil
}
