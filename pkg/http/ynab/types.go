package ynab

import "time"

// Account type codes the YNAB API can return. These are the raw
// vocabulary the cross-reference store and type mapping table work on.
const (
	TypeChecking       = "checking"
	TypeSavings        = "savings"
	TypeCash           = "cash"
	TypeCreditCard     = "creditCard"
	TypeLineOfCredit   = "lineOfCredit"
	TypeOtherAsset     = "otherAsset"
	TypeOtherLiability = "otherLiability"
	TypeMortgage       = "mortgage"
	TypeAutoLoan       = "autoLoan"
	TypeStudentLoan    = "studentLoan"
	TypePersonalLoan   = "personalLoan"
	TypeMedicalDebt    = "medicalDebt"
	TypeOtherDebt      = "otherDebt"
)

// AllAccountTypes lists every known account type code.
var AllAccountTypes = []string{
	TypeChecking,
	TypeSavings,
	TypeCash,
	TypeCreditCard,
	TypeLineOfCredit,
	TypeOtherAsset,
	TypeOtherLiability,
	TypeMortgage,
	TypeAutoLoan,
	TypeStudentLoan,
	TypePersonalLoan,
	TypeMedicalDebt,
	TypeOtherDebt,
}

// Account is a YNAB budget account. Balances are in milliunits: one
// currency unit is 1000 integer units.
type Account struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Type             string     `json:"type"`
	OnBudget         bool       `json:"on_budget"`
	Closed           bool       `json:"closed"`
	Note             string     `json:"note"`
	Balance          int64      `json:"balance"`
	ClearedBalance   int64      `json:"cleared_balance"`
	UnclearedBalance int64      `json:"uncleared_balance"`
	LastReconciledAt *time.Time `json:"last_reconciled_at"`
	Deleted          bool       `json:"deleted"`
}

// Budget is a YNAB budget summary.
type Budget struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	CurrencyFormat struct {
		ISOCode string `json:"iso_code"`
	} `json:"currency_format"`
}

// Category is a YNAB budget category.
type Category struct {
	ID              string `json:"id"`
	CategoryGroupID string `json:"category_group_id"`
	Name            string `json:"name"`
	Hidden          bool   `json:"hidden"`
	Budgeted        int64  `json:"budgeted"`
	Activity        int64  `json:"activity"`
	Balance         int64  `json:"balance"`
	Deleted         bool   `json:"deleted"`
}

// Payee is a YNAB payee.
type Payee struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Deleted bool   `json:"deleted"`
}

// Month is a YNAB budget month summary.
type Month struct {
	Month        string `json:"month"`
	Income       int64  `json:"income"`
	Budgeted     int64  `json:"budgeted"`
	Activity     int64  `json:"activity"`
	ToBeBudgeted int64  `json:"to_be_budgeted"`
}

// Transaction is a YNAB transaction.
type Transaction struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Amount    int64  `json:"amount"`
	Memo      string `json:"memo"`
	Cleared   string `json:"cleared"`
	Approved  bool   `json:"approved"`
	AccountID string `json:"account_id"`
	PayeeName string `json:"payee_name"`
	Deleted   bool   `json:"deleted"`
}

// User identifies the authenticated YNAB user; fetched as the
// connection probe.
type User struct {
	ID string `json:"id"`
}

type accountsResponse struct {
	Data struct {
		Accounts []Account `json:"accounts"`
	} `json:"data"`
}

type accountResponse struct {
	Data struct {
		Account Account `json:"account"`
	} `json:"data"`
}

type budgetsResponse struct {
	Data struct {
		Budgets []Budget `json:"budgets"`
	} `json:"data"`
}

type categoriesResponse struct {
	Data struct {
		CategoryGroups []struct {
			ID         string     `json:"id"`
			Name       string     `json:"name"`
			Categories []Category `json:"categories"`
		} `json:"category_groups"`
	} `json:"data"`
}

type payeesResponse struct {
	Data struct {
		Payees []Payee `json:"payees"`
	} `json:"data"`
}

type monthsResponse struct {
	Data struct {
		Months []Month `json:"months"`
	} `json:"data"`
}

type transactionsResponse struct {
	Data struct {
		Transactions []Transaction `json:"transactions"`
	} `json:"data"`
}

type userResponse struct {
	Data struct {
		User User `json:"user"`
	} `json:"data"`
}

type errorResponse struct {
	Error struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Detail string `json:"detail"`
	} `json:"error"`
}
