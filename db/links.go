package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jselby/budgetlink/pkg/models"
)

const linkColumns = `id, core_model, core_id, plugin_model, plugin_id, created_at, last_synced_at`

// CreateLink inserts a new link row and returns its ID. The UNIQUE
// constraints reject a second link on either side.
func (db *DB) CreateLink(link *models.Link) (int64, error) {
	query := `
	INSERT INTO links (core_model, core_id, plugin_model, plugin_id, created_at)
	VALUES (?, ?, ?, ?, ?)
	`

	createdAt := link.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	result, err := db.Exec(query, link.CoreModel, link.CoreID, link.PluginModel, link.PluginID, createdAt)
	if err != nil {
		return 0, fmt.Errorf("failed to create link: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get link id: %w", err)
	}
	link.ID = id
	link.CreatedAt = createdAt
	return id, nil
}

func scanLink(scan func(dest ...any) error) (*models.Link, error) {
	link := &models.Link{}
	err := scan(
		&link.ID,
		&link.CoreModel,
		&link.CoreID,
		&link.PluginModel,
		&link.PluginID,
		&link.CreatedAt,
		&link.LastSyncedAt,
	)
	if err != nil {
		return nil, err
	}
	return link, nil
}

// GetLink retrieves a link by its ID, returning nil when absent
func (db *DB) GetLink(id int64) (*models.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE id = ? LIMIT 1`

	link, err := scanLink(db.QueryRow(query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get link: %w", err)
	}
	return link, nil
}

// GetLinkForRecord retrieves the link for a local record, if any
func (db *DB) GetLinkForRecord(category models.RecordCategory, coreID int64) (*models.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE core_model = ? AND core_id = ? LIMIT 1`

	link, err := scanLink(db.QueryRow(query, category, coreID).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get link for record: %w", err)
	}
	return link, nil
}

// GetLinkForPlugin retrieves the link for an external record, if any
func (db *DB) GetLinkForPlugin(pluginModel models.PluginModel, pluginID string) (*models.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE plugin_model = ? AND plugin_id = ? LIMIT 1`

	link, err := scanLink(db.QueryRow(query, pluginModel, pluginID).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get link for plugin record: %w", err)
	}
	return link, nil
}

// GetLinks retrieves all links
func (db *DB) GetLinks() ([]*models.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links ORDER BY id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	defer rows.Close()

	var links []*models.Link
	for rows.Next() {
		link, err := scanLink(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating links: %w", err)
	}
	return links, nil
}

// DeleteLink removes a link. Deleting an already-deleted link is not
// an error; callers unlink without re-checking first.
func (db *DB) DeleteLink(id int64) error {
	if _, err := db.Exec(`DELETE FROM links WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}
	return nil
}

// TouchLinkSynced stamps the last successful sync time on a link
func (db *DB) TouchLinkSynced(id int64, syncedAt time.Time) error {
	result, err := db.Exec(`UPDATE links SET last_synced_at = ? WHERE id = ?`, syncedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update link sync time: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no link found with id: %d", id)
	}
	return nil
}
