package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/calcms/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/calcms/internal/dbx"
	"github.com/dmitrijs2005/calcms/internal/logging"
)

// LocalDataService manages what the client keeps on this device.
type LocalDataService interface {
	// Reset erases every stored entry in one transaction and reports how
	// many were removed.
	Reset(ctx context.Context) (int, error)
}

type localDataService struct {
	db  *sql.DB
	log logging.Logger
}

func NewLocalDataService(db *sql.DB, log logging.Logger) LocalDataService {
	return &localDataService{db: db, log: log}
}

func (s *localDataService) Reset(ctx context.Context) (int, error) {
	var n int
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		entries, err := repo.List(ctx)
		if err != nil {
			return err
		}
		n = len(entries)

		return repo.Clear(ctx)
	})
	if err != nil {
		s.log.Error(ctx, "error erasing local data", "error", err)
		return 0, err
	}

	s.log.Info(ctx, "local data erased", "entries", n)
	return n, nil
}
