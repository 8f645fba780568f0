package ynab

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const defaultBaseURL = "https://api.ynab.com/v1"

// Client talks to the YNAB v1 REST API for a single budget.
type Client struct {
	client   *http.Client
	baseURL  string
	token    string
	budgetID string
}

// NewClient creates a YNAB client scoped to the given budget. Pass
// "last-used" as the budget ID to target the most recently used budget.
func NewClient(token, budgetID string) *Client {
	return &Client{
		client:   &http.Client{},
		baseURL:  defaultBaseURL,
		token:    token,
		budgetID: budgetID,
	}
}

// SetBaseURL overrides the API endpoint, used in tests.
func (c *Client) SetBaseURL(base string) {
	c.baseURL = base
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.ID != "" {
			return fmt.Errorf("ynab api error %s (%s): %s",
				apiErr.Error.ID, apiErr.Error.Name, apiErr.Error.Detail)
		}
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response from %s: %w", path, err)
	}
	return nil
}

func (c *Client) budgetPath(resource string) string {
	return "/budgets/" + url.PathEscape(c.budgetID) + "/" + resource
}

// GetUser probes the connection by fetching the authenticated user.
func (c *Client) GetUser(ctx context.Context) (*User, error) {
	var resp userResponse
	if err := c.get(ctx, "/user", &resp); err != nil {
		return nil, err
	}
	return &resp.Data.User, nil
}

// ListBudgets returns all budgets visible to the token.
func (c *Client) ListBudgets(ctx context.Context) ([]Budget, error) {
	var resp budgetsResponse
	if err := c.get(ctx, "/budgets", &resp); err != nil {
		return nil, err
	}
	return resp.Data.Budgets, nil
}

// ListAccounts returns the budget's accounts with deleted entries
// filtered out.
func (c *Client) ListAccounts(ctx context.Context) ([]Account, error) {
	var resp accountsResponse
	if err := c.get(ctx, c.budgetPath("accounts"), &resp); err != nil {
		return nil, err
	}
	accounts := make([]Account, 0, len(resp.Data.Accounts))
	for _, account := range resp.Data.Accounts {
		if account.Deleted {
			continue
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

// GetAccount fetches a single account by its YNAB ID.
func (c *Client) GetAccount(ctx context.Context, accountID string) (*Account, error) {
	var resp accountResponse
	path := c.budgetPath("accounts/" + url.PathEscape(accountID))
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	if resp.Data.Account.Deleted {
		return nil, fmt.Errorf("account %s is deleted in ynab", accountID)
	}
	return &resp.Data.Account, nil
}

// ListCategories flattens the budget's category groups into one list.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var resp categoriesResponse
	if err := c.get(ctx, c.budgetPath("categories"), &resp); err != nil {
		return nil, err
	}
	var categories []Category
	for _, group := range resp.Data.CategoryGroups {
		for _, category := range group.Categories {
			if category.Deleted {
				continue
			}
			categories = append(categories, category)
		}
	}
	return categories, nil
}

// ListPayees returns the budget's payees.
func (c *Client) ListPayees(ctx context.Context) ([]Payee, error) {
	var resp payeesResponse
	if err := c.get(ctx, c.budgetPath("payees"), &resp); err != nil {
		return nil, err
	}
	payees := make([]Payee, 0, len(resp.Data.Payees))
	for _, payee := range resp.Data.Payees {
		if payee.Deleted {
			continue
		}
		payees = append(payees, payee)
	}
	return payees, nil
}

// ListMonths returns the budget's month summaries.
func (c *Client) ListMonths(ctx context.Context) ([]Month, error) {
	var resp monthsResponse
	if err := c.get(ctx, c.budgetPath("months"), &resp); err != nil {
		return nil, err
	}
	return resp.Data.Months, nil
}

// ListTransactions returns the budget's transactions since the given
// date; pass an empty string for the full history.
func (c *Client) ListTransactions(ctx context.Context, sinceDate string) ([]Transaction, error) {
	path := c.budgetPath("transactions")
	if sinceDate != "" {
		path += "?since_date=" + url.QueryEscape(sinceDate)
	}
	var resp transactionsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	transactions := make([]Transaction, 0, len(resp.Data.Transactions))
	for _, tx := range resp.Data.Transactions {
		if tx.Deleted {
			continue
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}
