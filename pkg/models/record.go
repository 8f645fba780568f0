package models

import "time"

// RecordCategory tags the variant of a LocalRecord.
type RecordCategory string

const (
	CategoryAccount    RecordCategory = "account"
	CategoryCreditCard RecordCategory = "credit_card"
	CategoryAsset      RecordCategory = "asset"
	CategoryLiability  RecordCategory = "liability"
)

// AllCategories lists every record category in display order.
var AllCategories = []RecordCategory{
	CategoryAccount,
	CategoryCreditCard,
	CategoryAsset,
	CategoryLiability,
}

func (c RecordCategory) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// AllocationTier classifies how accessible a record's funds are.
type AllocationTier string

const (
	TierLiquid     AllocationTier = "Liquid"
	TierFrozen     AllocationTier = "Frozen"
	TierDeepFreeze AllocationTier = "DeepFreeze"
)

// MirroredFields are the LocalRecord fields owned by the external
// service once a link exists. While a link is present they are written
// only by the sync flow.
type MirroredFields struct {
	Balance          Amount     `json:"balance"`
	ClearedBalance   Amount     `json:"clearedBalance"`
	OnBudget         bool       `json:"onBudget"`
	Closed           bool       `json:"closed"`
	LastReconciledAt *time.Time `json:"lastReconciledAt"`
}

// LocalRecord is a financial entity owned by this application: an
// account, credit card, asset or liability, distinguished by Category.
type LocalRecord struct {
	ID       int64          `json:"id"`
	Category RecordCategory `json:"category"`
	Name     string         `json:"name"`
	// TypeID references the category's type lookup; zero when unset.
	TypeID   int64          `json:"typeId"`
	BankID   int64          `json:"bankId"`
	Notes    string         `json:"notes"`
	Tier     AllocationTier `json:"tier"`
	Mirrored MirroredFields `json:"mirrored"`
}

// TypeLookup is one entry of a category-scoped subtype list, e.g.
// "Checking" or "Mortgage". Users may create new entries on the fly.
type TypeLookup struct {
	ID       int64          `json:"id"`
	Category RecordCategory `json:"category"`
	Name     string         `json:"name"`
}

// Bank is a financial institution a record can reference.
type Bank struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
