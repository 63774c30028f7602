package stores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chanderlud/dstat-frontend/internal/models"
)

var (
	ErrSampleConflict = errors.New("sample already exists for this server and second")
)

const (
	queryInsertSample = `INSERT INTO logs (time, server_name, rps) VALUES ($1, $2, $3) ON CONFLICT (time, server_name) DO NOTHING`

	queryRecentForServer = `SELECT time, server_name, rps FROM logs WHERE server_name = $1 ORDER BY time DESC LIMIT $2`

	queryLatestPerServer = `SELECT l.time, l.server_name, l.rps FROM logs l ` +
		`JOIN (SELECT server_name, MAX(time) AS max_time FROM logs GROUP BY server_name) m ` +
		`ON l.server_name = m.server_name AND l.time = m.max_time`
)

// LogStore is the append-only log of throughput samples.
//
// Samples are keyed by (time, server_name). Append behaves like a conditional PUT:
//   - edge1 reports twice within the same second
//   - the first Append stores the row
//   - the second Append writes nothing and returns ErrSampleConflict
//
// Reads reflect whatever the underlying query saw; writes concurrent with a read may or may not be visible.
//
//go:generate mockgen -source=log_store.go -destination=./mocks/log_store_mock.go -package=mocks
type LogStore interface {
	Append(ctx context.Context, sample *models.Sample) error
	// RecentFor returns up to limit samples for serverName, newest first. No samples is not an error.
	RecentFor(ctx context.Context, serverName string, limit int) ([]*models.Sample, error)
	// AllLatestPerServer returns the newest sample of every server that has reported at least once.
	AllLatestPerServer(ctx context.Context) (map[string]*models.Sample, error)
}

type logStore struct {
	db *sql.DB
}

func NewLogStore(db *sql.DB) LogStore {
	return &logStore{db: db}
}

func (s *logStore) Append(ctx context.Context, sample *models.Sample) error {
	result, err := s.db.ExecContext(ctx, queryInsertSample, sample.Time, sample.ServerName, sample.RPS)
	if err != nil {
		return fmt.Errorf("failed to insert sample: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrSampleConflict
	}
	return nil
}

func (s *logStore) RecentFor(ctx context.Context, serverName string, limit int) ([]*models.Sample, error) {
	if limit <= 0 {
		return []*models.Sample{}, nil
	}

	rows, err := s.db.QueryContext(ctx, queryRecentForServer, serverName, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent samples: %w", err)
	}
	defer rows.Close()

	samples := make([]*models.Sample, 0, limit)
	for rows.Next() {
		sample, err := scanSample(rows)
		if err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recent samples: %w", err)
	}
	return samples, nil
}

func (s *logStore) AllLatestPerServer(ctx context.Context) (map[string]*models.Sample, error) {
	rows, err := s.db.QueryContext(ctx, queryLatestPerServer)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest samples: %w", err)
	}
	defer rows.Close()

	latest := make(map[string]*models.Sample)
	for rows.Next() {
		sample, err := scanSample(rows)
		if err != nil {
			return nil, err
		}
		latest[sample.ServerName] = sample
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate latest samples: %w", err)
	}
	return latest, nil
}

func scanSample(rows *sql.Rows) (*models.Sample, error) {
	var sample models.Sample
	if err := rows.Scan(&sample.Time, &sample.ServerName, &sample.RPS); err != nil {
		return nil, fmt.Errorf("failed to scan sample: %w", err)
	}
	return &sample, nil
}
