package stores

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/chanderlud/dstat-frontend/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_SQLite_ListOrderAndFind(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	catalog := NewCatalog(openTestDB(t))

	refs, err := catalog.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, refs)

	inserted, err := catalog.Seed(ctx, []*models.ServerRef{
		{ServerID: "b-fra", Category: "europe", ServerName: "edge2", URL: "https://edge2.example.com"},
		{ServerID: "a-nyc", Category: "america", ServerName: "edge1", URL: "https://edge1.example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	refs, err = catalog.List(ctx)
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "a-nyc", refs[0].ServerID, "list is ordered by server_id")
	assert.Equal(t, "edge1", refs[0].ServerName)
	assert.Equal(t, "b-fra", refs[1].ServerID)

	ref, err := catalog.FindByName(ctx, "edge2")
	require.NoError(t, err)
	assert.Equal(t, &models.ServerRef{ServerID: "b-fra", Category: "europe", ServerName: "edge2", URL: "https://edge2.example.com"}, ref)

	ref, err = catalog.FindByName(ctx, "missing")
	assert.Nil(t, ref)
	assert.ErrorIs(t, err, ErrServerNotFound)
}

func TestCatalog_SQLite_SeedIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	catalog := NewCatalog(openTestDB(t))
	refs := []*models.ServerRef{{ServerID: "a", Category: "c", ServerName: "edge1", URL: "u1"}}

	inserted, err := catalog.Seed(ctx, refs)
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	// Same id with a new url: existing row is left untouched.
	inserted, err = catalog.Seed(ctx, []*models.ServerRef{{ServerID: "a", Category: "c", ServerName: "edge1", URL: "u2"}})
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	ref, err := catalog.FindByName(ctx, "edge1")
	require.NoError(t, err)
	assert.Equal(t, "u1", ref.URL)
}

func TestCatalog_FindByName_QueryError(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	queryErr := errors.New("database is locked")
	mock.ExpectQuery(regexp.QuoteMeta(queryFindServerByName)).
		WithArgs("edge1").
		WillReturnError(queryErr)

	ref, err := NewCatalog(db).FindByName(context.Background(), "edge1")
	assert.Nil(t, ref)
	assert.ErrorIs(t, err, queryErr)
	assert.NotErrorIs(t, err, ErrServerNotFound)
}

func TestCatalog_List_QueryError(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	queryErr := errors.New("no such table: servers")
	mock.ExpectQuery(regexp.QuoteMeta(queryListServers)).WillReturnError(queryErr)

	refs, err := NewCatalog(db).List(context.Background())
	assert.Nil(t, refs)
	assert.ErrorIs(t, err, queryErr)
}

func TestCatalog_Seed_RollsBackOnError(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	execErr := errors.New("constraint failed")
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(queryInsertServer)).
		WithArgs("a", "c", "edge1", "u").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(queryInsertServer)).
		WithArgs("b", "c", "edge2", "u").
		WillReturnError(execErr)
	mock.ExpectRollback()

	inserted, err := NewCatalog(db).Seed(context.Background(), []*models.ServerRef{
		{ServerID: "a", Category: "c", ServerName: "edge1", URL: "u"},
		{ServerID: "b", Category: "c", ServerName: "edge2", URL: "u"},
	})
	assert.Equal(t, 0, inserted)
	assert.ErrorIs(t, err, execErr)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestParseCatalogSeed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		wantErr bool
		check   func(t *testing.T, refs []*models.ServerRef)
	}{
		{
			name: "valid with explicit ids",
			raw: `servers:
  - server_id: fra-1
    category: europe
    server_name: edge1
    url: https://edge1.example.com
  - server_id: nyc-1
    category: america
    server_name: edge2
    url: https://edge2.example.com
`,
			check: func(t *testing.T, refs []*models.ServerRef) {
				require.Len(t, refs, 2)
				assert.Equal(t, &models.ServerRef{ServerID: "fra-1", Category: "europe", ServerName: "edge1", URL: "https://edge1.example.com"}, refs[0])
				assert.Equal(t, "nyc-1", refs[1].ServerID)
			},
		},
		{
			name: "missing id gets uuid",
			raw: `servers:
  - category: europe
    server_name: edge1
    url: https://edge1.example.com
`,
			check: func(t *testing.T, refs []*models.ServerRef) {
				require.Len(t, refs, 1)
				assert.Len(t, refs[0].ServerID, 36)
			},
		},
		{
			name:  "empty file",
			raw:   ``,
			check: func(t *testing.T, refs []*models.ServerRef) { assert.Empty(t, refs) },
		},
		{
			name: "missing name",
			raw: `servers:
  - server_id: a
    url: u
`,
			wantErr: true,
		},
		{
			name: "duplicate name",
			raw: `servers:
  - server_name: edge1
  - server_name: " edge1 "
`,
			wantErr: true,
		},
		{
			name:    "not yaml",
			raw:     "servers: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs, err := ParseCatalogSeed([]byte(tt.raw))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCatalogSeed)
				return
			}
			require.NoError(t, err)
			tt.check(t, refs)
		})
	}
}

func TestLoadCatalogSeed_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "servers.yml")
	require.NoError(t, os.WriteFile(path, []byte("servers:\n  - server_id: a\n    server_name: edge1\n    url: u\n"), 0o600))

	refs, err := LoadCatalogSeed(path)
	require.NoError(t, err)
	require.Len(t, refs, 1)
	assert.Equal(t, "edge1", refs[0].ServerName)

	_, err = LoadCatalogSeed(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
