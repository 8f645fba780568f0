package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/jselby/budgetlink/db"
	"github.com/jselby/budgetlink/pkg/models"
)

var (
	// ErrAlreadyLinked is returned when either side of a candidate
	// pair already has a link; the caller must unlink first.
	ErrAlreadyLinked = errors.New("already linked")

	// ErrMirroredFieldsReadOnly rejects user edits to mirrored fields
	// while a link exists.
	ErrMirroredFieldsReadOnly = errors.New("mirrored fields are read-only while linked")
)

// Linker owns the link lifecycle between local records and YNAB
// accounts.
type Linker struct {
	store  db.Store
	syncer *Syncer
}

func NewLinker(store db.Store, syncer *Syncer) *Linker {
	return &Linker{store: store, syncer: syncer}
}

// Link joins a local record to a YNAB account and kicks off an
// immediate sync. The sync is best-effort; a failure leaves the link
// in place to be refreshed by the next pass.
func (l *Linker) Link(ctx context.Context, category models.RecordCategory, coreID int64, pluginID string) (*models.Link, error) {
	record, err := l.store.GetRecord(coreID)
	if err != nil {
		return nil, err
	}
	if record == nil || record.Category != category {
		return nil, fmt.Errorf("no %s record found with id: %d", category, coreID)
	}

	if existing, err := l.store.GetLinkForRecord(category, coreID); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%s %d: %w", category, coreID, ErrAlreadyLinked)
	}

	if existing, err := l.store.GetLinkForPlugin(models.PluginModelAccount, pluginID); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("ynab account %s: %w", pluginID, ErrAlreadyLinked)
	}

	link := &models.Link{
		CoreModel:   category,
		CoreID:      coreID,
		PluginModel: models.PluginModelAccount,
		PluginID:    pluginID,
	}
	if _, err := l.store.CreateLink(link); err != nil {
		return nil, err
	}

	if err := l.syncer.Sync(ctx, link.ID); err != nil {
		log.Warn().Err(err).Int64("link", link.ID).Msg("Initial sync after linking failed")
	}
	return link, nil
}

// Unlink removes a link; the record's mirrored fields keep their
// last-synced values and become user-editable again. Unlinking an
// already-removed link is not an error.
func (l *Linker) Unlink(linkID int64) error {
	return l.store.DeleteLink(linkID)
}

// UpdateRecord applies user edits to a record. While the record is
// linked, changes to mirrored fields are rejected; while unlinked,
// mirrored fields are written along with the rest.
func (l *Linker) UpdateRecord(r *models.LocalRecord) error {
	link, err := l.store.GetLinkForRecord(r.Category, r.ID)
	if err != nil {
		return err
	}

	if link == nil {
		if err := l.store.UpdateRecord(r); err != nil {
			return err
		}
		return l.store.UpdateMirroredFields(r.ID, r.Mirrored)
	}

	existing, err := l.store.GetRecord(r.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("no record found with id: %d", r.ID)
	}
	if !mirroredEqual(existing.Mirrored, r.Mirrored) {
		return fmt.Errorf("record %d: %w", r.ID, ErrMirroredFieldsReadOnly)
	}
	return l.store.UpdateRecord(r)
}

func mirroredEqual(a, b models.MirroredFields) bool {
	if a.Balance != b.Balance || a.ClearedBalance != b.ClearedBalance {
		return false
	}
	if a.OnBudget != b.OnBudget || a.Closed != b.Closed {
		return false
	}
	switch {
	case a.LastReconciledAt == nil && b.LastReconciledAt == nil:
		return true
	case a.LastReconciledAt == nil || b.LastReconciledAt == nil:
		return false
	default:
		return a.LastReconciledAt.Equal(*b.LastReconciledAt)
	}
}
