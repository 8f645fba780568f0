package ynab

import "context"

// ClientInterface defines the YNAB API operations the rest of the
// application depends on.
type ClientInterface interface {
	GetUser(ctx context.Context) (*User, error)
	ListBudgets(ctx context.Context) ([]Budget, error)
	ListAccounts(ctx context.Context) ([]Account, error)
	GetAccount(ctx context.Context, accountID string) (*Account, error)
	ListCategories(ctx context.Context) ([]Category, error)
	ListPayees(ctx context.Context) ([]Payee, error)
	ListMonths(ctx context.Context) ([]Month, error)
	ListTransactions(ctx context.Context, sinceDate string) ([]Transaction, error)
}

// Ensure Client implements ClientInterface
var _ ClientInterface = (*Client)(nil)

// Ensure MockClient implements ClientInterface
var _ ClientInterface = (*MockClient)(nil)
