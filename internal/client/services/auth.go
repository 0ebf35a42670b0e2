// Package services contains application services for the calcms client.
// This file defines the authentication session: sign-in against the token
// endpoint, confirmed sign-out, the authenticated flag that gates the
// equipment screens, and the optional restore of a stored session.
package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/calcms/internal/client/client"
	"github.com/dmitrijs2005/calcms/internal/common"
	"github.com/dmitrijs2005/calcms/internal/logging"
)

// MsgInvalidCredentials is shown whenever a sign-in attempt fails.
const MsgInvalidCredentials = "Invalid credentials"

// TokenStore is the persistent slot of the bearer token.
// *tokenstore.Store implements it.
type TokenStore interface {
	Store(ctx context.Context, token string)
	Get(ctx context.Context) string
	Clear(ctx context.Context)
}

// Navigator switches between the signed-out and signed-in areas of the app.
type Navigator interface {
	ShowAuthenticated(ctx context.Context)
	ShowUnauthenticated(ctx context.Context)
}

// Notifier shows a blocking notice to the user.
type Notifier interface {
	Notify(ctx context.Context, msg string)
}

// Confirmer asks a two-choice question and reports whether the user chose
// to proceed.
type Confirmer interface {
	Confirm(ctx context.Context, question, proceed, cancel string) bool
}

// AuthOptions are the session policies taken from configuration.
type AuthOptions struct {
	// ClearTokenOnSignOut erases the stored token on confirmed sign-out.
	ClearTokenOnSignOut bool
	// RestoreSession lets Restore treat a stored token as a live session.
	RestoreSession bool
}

// AuthService is the session state machine of the client.
//
// Contract:
//   - SignIn: exchange credentials for a token; on success persist it,
//     become authenticated and navigate to the signed-in area. On any
//     failure notify "Invalid credentials" and stay signed out.
//   - SignOut: ask for confirmation; on proceed become unauthenticated and
//     navigate to the signed-out area. Cancel changes nothing.
//   - IsAuthenticated: the current flag.
//   - Restore: at startup, optionally resume from a stored token.
type AuthService interface {
	SignIn(ctx context.Context, username string, password []byte) error
	SignOut(ctx context.Context, confirm Confirmer) bool
	IsAuthenticated() bool
	Restore(ctx context.Context) bool
}

type authService struct {
	client   client.Client
	tokens   TokenStore
	nav      Navigator
	notifier Notifier
	log      logging.Logger
	opts     AuthOptions

	mu            sync.RWMutex
	authenticated bool
}

// NewAuthService returns a signed-out session.
func NewAuthService(c client.Client, tokens TokenStore, nav Navigator, notifier Notifier, log logging.Logger, opts AuthOptions) AuthService {
	return &authService{
		client:   c,
		tokens:   tokens,
		nav:      nav,
		notifier: notifier,
		log:      log,
		opts:     opts,
	}
}

// SignIn wipes password before returning.
func (a *authService) SignIn(ctx context.Context, username string, password []byte) error {
	defer common.WipeByteArray(password)

	token, err := a.client.RequestToken(ctx, username, password)
	if err != nil {
		a.log.Warn(ctx, "sign-in failed", "username", username, "error", err)
		a.notifier.Notify(ctx, MsgInvalidCredentials)
		return err
	}

	a.tokens.Store(ctx, token)
	a.setAuthenticated(true)
	a.log.Info(ctx, "signed in", "username", username)
	a.nav.ShowAuthenticated(ctx)
	return nil
}

func (a *authService) SignOut(ctx context.Context, confirm Confirmer) bool {
	if !confirm.Confirm(ctx, "Are you sure you want to logout?", "Logout", "Cancel") {
		return false
	}

	if a.opts.ClearTokenOnSignOut {
		a.tokens.Clear(ctx)
	}
	a.setAuthenticated(false)
	a.log.Info(ctx, "signed out")
	a.nav.ShowUnauthenticated(ctx)
	return true
}

func (a *authService) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.authenticated
}

// Restore resumes a session from a stored token when RestoreSession is set.
// It reports whether the session is now authenticated.
func (a *authService) Restore(ctx context.Context) bool {
	if !a.opts.RestoreSession {
		return false
	}
	if a.tokens.Get(ctx) == "" {
		return false
	}

	a.setAuthenticated(true)
	a.log.Info(ctx, "session restored from stored token")
	a.nav.ShowAuthenticated(ctx)
	return true
}

func (a *authService) setAuthenticated(v bool) {
	a.mu.Lock()
	a.authenticated = v
	a.mu.Unlock()
}
