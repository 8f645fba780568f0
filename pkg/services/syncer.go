package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jselby/budgetlink/db"
	"github.com/jselby/budgetlink/pkg/http/ynab"
	"github.com/jselby/budgetlink/pkg/models"
)

// Syncer pulls current YNAB account state into the mirrored fields of
// linked local records.
type Syncer struct {
	client   ynab.ClientInterface
	store    db.Store
	currency string

	// Overlapping syncs of the same link resolve by fetch order, not
	// response order: a response older than the last applied one is
	// discarded.
	mu      sync.Mutex
	seq     uint64
	applied map[int64]uint64
}

func NewSyncer(client ynab.ClientInterface, store db.Store, currency string) *Syncer {
	if currency == "" {
		currency = "USD"
	}
	return &Syncer{
		client:   client,
		store:    store,
		currency: currency,
		applied:  make(map[int64]uint64),
	}
}

func (s *Syncer) nextVersion() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// MirroredFromAccount converts a YNAB account's milliunit state into
// local mirrored fields.
func MirroredFromAccount(account *ynab.Account, currency string) models.MirroredFields {
	return models.MirroredFields{
		Balance:          models.AmountFromMilliunits(account.Balance, currency),
		ClearedBalance:   models.AmountFromMilliunits(account.ClearedBalance, currency),
		OnBudget:         account.OnBudget,
		Closed:           account.Closed,
		LastReconciledAt: account.LastReconciledAt,
	}
}

// Sync refreshes the mirrored fields of the record behind one link. A
// failed fetch leaves the previously synced values intact.
func (s *Syncer) Sync(ctx context.Context, linkID int64) error {
	link, err := s.store.GetLink(linkID)
	if err != nil {
		return err
	}
	if link == nil {
		return fmt.Errorf("no link found with id: %d", linkID)
	}

	// Version is taken before the fetch so a slow response can be
	// recognized as stale once a later fetch has been applied.
	version := s.nextVersion()

	account, err := s.client.GetAccount(ctx, link.PluginID)
	if err != nil {
		return fmt.Errorf("failed to fetch ynab account %s: %w", link.PluginID, err)
	}

	mirrored := MirroredFromAccount(account, s.currency)

	s.mu.Lock()
	defer s.mu.Unlock()
	if version <= s.applied[linkID] {
		log.Debug().Int64("link", linkID).Msg("Discarding stale sync response")
		return nil
	}

	if err := s.store.UpdateMirroredFields(link.CoreID, mirrored); err != nil {
		return err
	}
	s.applied[linkID] = version

	if err := s.store.TouchLinkSynced(linkID, time.Now().UTC()); err != nil {
		return err
	}

	log.Info().
		Int64("link", linkID).
		Str("account", account.Name).
		Str("balance", mirrored.Balance.Value).
		Msg("Synced mirrored fields")
	return nil
}

// SyncAll refreshes every link. Individual failures are logged and
// skipped so one bad account never blocks the rest.
func (s *Syncer) SyncAll(ctx context.Context) error {
	links, err := s.store.GetLinks()
	if err != nil {
		return err
	}

	pass := uuid.NewString()
	synced, failed := 0, 0
	for _, link := range links {
		if err := s.Sync(ctx, link.ID); err != nil {
			log.Warn().Err(err).Str("pass", pass).Int64("link", link.ID).Msg("Failed to sync link")
			failed++
			continue
		}
		synced++
	}
	log.Info().Str("pass", pass).Int("synced", synced).Int("failed", failed).Msg("Full sync finished")
	return nil
}

// Status probes the YNAB connection by fetching the authenticated user.
func (s *Syncer) Status(ctx context.Context) (*ynab.User, error) {
	return s.client.GetUser(ctx)
}

// GetClient exposes the underlying YNAB client for listing views.
func (s *Syncer) GetClient() ynab.ClientInterface {
	return s.client
}
