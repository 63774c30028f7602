package stores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chanderlud/dstat-frontend/internal/models"
)

var (
	ErrServerNotFound = errors.New("server not found")
)

const (
	queryListServers = `SELECT server_id, category, server_name, url FROM servers ORDER BY server_id ASC`

	queryFindServerByName = `SELECT server_id, category, server_name, url FROM servers WHERE server_name = $1`

	queryInsertServer = `INSERT INTO servers (server_id, category, server_name, url) VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`
)

// Catalog reads the servers reference table. Rows are maintained outside the service;
// List orders by server_id so "the first server" is stable for a given catalog snapshot.
//
//go:generate mockgen -source=catalog.go -destination=./mocks/catalog_mock.go -package=mocks
type Catalog interface {
	List(ctx context.Context) ([]*models.ServerRef, error)
	FindByName(ctx context.Context, serverName string) (*models.ServerRef, error)
}

// CatalogSeeder inserts missing catalog rows. Only used at startup.
type CatalogSeeder interface {
	Seed(ctx context.Context, refs []*models.ServerRef) (int, error)
}

// CatalogStore is the SQL-backed catalog, readable by the core and seedable by bootstrap code.
type CatalogStore interface {
	Catalog
	CatalogSeeder
}

type catalog struct {
	db *sql.DB
}

func NewCatalog(db *sql.DB) CatalogStore {
	return &catalog{db: db}
}

func (c *catalog) List(ctx context.Context) ([]*models.ServerRef, error) {
	rows, err := c.db.QueryContext(ctx, queryListServers)
	if err != nil {
		return nil, fmt.Errorf("failed to query servers: %w", err)
	}
	defer rows.Close()

	refs := []*models.ServerRef{}
	for rows.Next() {
		var ref models.ServerRef
		if err := rows.Scan(&ref.ServerID, &ref.Category, &ref.ServerName, &ref.URL); err != nil {
			return nil, fmt.Errorf("failed to scan server: %w", err)
		}
		refs = append(refs, &ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate servers: %w", err)
	}
	return refs, nil
}

func (c *catalog) FindByName(ctx context.Context, serverName string) (*models.ServerRef, error) {
	var ref models.ServerRef
	err := c.db.QueryRowContext(ctx, queryFindServerByName, serverName).
		Scan(&ref.ServerID, &ref.Category, &ref.ServerName, &ref.URL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrServerNotFound
		}
		return nil, fmt.Errorf("failed to find server: %w", err)
	}
	return &ref, nil
}

// Seed inserts refs whose server_id or server_name is not present yet and returns how many were added.
// Existing rows are never modified.
func (c *catalog) Seed(ctx context.Context, refs []*models.ServerRef) (int, error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin catalog seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	inserted := 0
	for _, ref := range refs {
		result, err := tx.ExecContext(ctx, queryInsertServer, ref.ServerID, ref.Category, ref.ServerName, ref.URL)
		if err != nil {
			return 0, fmt.Errorf("failed to seed server %q: %w", ref.ServerName, err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to read affected rows: %w", err)
		}
		inserted += int(affected)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit catalog seed: %w", err)
	}
	return inserted, nil
}
