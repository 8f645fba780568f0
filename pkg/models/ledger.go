package models

// Category is a spending category for local transactions.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Payee is a counterparty referenced by local transactions.
type Payee struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LedgerTransaction is a locally recorded transaction against one of
// the tracked records.
type LedgerTransaction struct {
	ID         int64  `json:"id"`
	RecordID   int64  `json:"recordId"`
	CategoryID int64  `json:"categoryId"`
	PayeeID    int64  `json:"payeeId"`
	Amount     Amount `json:"amount"`
	Date       string `json:"date"`
	Notes      string `json:"notes"`
}
