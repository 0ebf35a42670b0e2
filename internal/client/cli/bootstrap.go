package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/calcms/internal/client/client"
	"github.com/dmitrijs2005/calcms/internal/client/config"
	"github.com/dmitrijs2005/calcms/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/calcms/internal/client/services"
	"github.com/dmitrijs2005/calcms/internal/client/tokenstore"
	"github.com/dmitrijs2005/calcms/internal/common"
	"github.com/dmitrijs2005/calcms/internal/cryptox"
	"github.com/dmitrijs2005/calcms/internal/logging"
)

// Bootstrap wires the local token store, the API client and the services
// into an App reading from in and writing to out. The returned close
// function releases the local database.
func Bootstrap(ctx context.Context, c *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, func() error, error) {
	secret, err := cryptox.LoadOrCreateDeviceSecret(c.KeyFilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("error loading device key: %w", err)
	}
	sealer, err := cryptox.NewSealer(secret)
	common.WipeByteArray(secret)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating sealer: %w", err)
	}

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing database: %w", err)
	}

	tokens := tokenstore.New(metadata.NewSQLiteRepository(db), sealer, log.With("component", "tokenstore"))
	api := client.NewHTTPClient(c.BaseURL, c.RequestTimeout, tokens, log.With("component", "api"))

	router := NewRouter(out)
	as := services.NewAuthService(api, tokens, router, router, log.With("component", "auth"), services.AuthOptions{
		ClearTokenOnSignOut: c.ClearTokenOnLogout,
		RestoreSession:      c.RestoreSession,
	})
	es := services.NewEquipmentService(api, log.With("component", "equipment"))

	ld := services.NewLocalDataService(db, log.With("component", "localdata"))

	app := NewApp(c, as, es, ld, router, log, in, out)
	return app, db.Close, nil
}
