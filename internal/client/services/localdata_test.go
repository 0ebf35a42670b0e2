package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/calcms/internal/client/client"
	"github.com/dmitrijs2005/calcms/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/calcms/internal/logging"
)

func TestLocalDataService_ResetErasesEverything(t *testing.T) {
	ctx := context.Background()
	db, err := client.InitDatabase(ctx, filepath.Join(t.TempDir(), "calcms.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := metadata.NewSQLiteRepository(db)
	require.NoError(t, repo.Set(ctx, "access_token", []byte{1, 2, 3}))
	require.NoError(t, repo.Set(ctx, "other", []byte{4}))

	n, err := NewLocalDataService(db, logging.NewNop()).Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	left, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestLocalDataService_ResetEmptyStore(t *testing.T) {
	ctx := context.Background()
	db, err := client.InitDatabase(ctx, filepath.Join(t.TempDir(), "calcms.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	n, err := NewLocalDataService(db, logging.NewNop()).Reset(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLocalDataService_ResetRollsBackOnClearError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT key, value FROM metadata`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).AddRow("access_token", []byte{1}))
	mock.ExpectExec(`DELETE FROM metadata`).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	n, err := NewLocalDataService(db, logging.NewNop()).Reset(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to clear metadata")
	assert.Zero(t, n)
	require.NoError(t, mock.ExpectationsWereMet())
}
