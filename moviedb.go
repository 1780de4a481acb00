// Package moviedb wires the movie catalog core: accounts, per-user data and the
// view pipeline, persisted through a configurable key/value backend.
//
//	app, err := moviedb.NewAppFromEnv()
//	if err != nil { ... }
//	defer app.Close()
//	movies := app.Session.Movies()
package moviedb

import (
	"fmt"

	"moviedb/internal/config"
	"moviedb/internal/logging"
	"moviedb/internal/repositories"
	"moviedb/internal/services"
	"moviedb/internal/session"
	"moviedb/internal/storage"
)

// App bundles the wired components.
type App struct {
	Accounts *services.AccountService
	UserData *services.UserDataService
	Session  *session.Session

	store storage.Store
}

// NewAppFromEnv loads configuration from the environment and builds the App.
func NewAppFromEnv() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewApp(cfg)
}

// NewApp opens the configured store, builds the services and restores any persisted session.
func NewApp(cfg *config.Config) (*App, error) {
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	store, err := storage.Open(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	app, err := NewAppWithStore(cfg, store)
	if err != nil {
		store.Close()
		return nil, err
	}
	return app, nil
}

// NewAppWithStore builds the App over an already opened store.
func NewAppWithStore(cfg *config.Config, store storage.Store) (*App, error) {
	hasher, err := services.NewPasswordHasher(cfg.PasswordHashing)
	if err != nil {
		return nil, err
	}

	keys := repositories.Keys{Namespace: cfg.KeyNamespace}
	userRepo := repositories.NewKVUserRepository(store, keys)
	sessionRepo := repositories.NewKVSessionRepository(store, keys)
	userDataRepo := repositories.NewKVUserDataRepository(store, keys)

	accounts := services.NewAccountService(userRepo, sessionRepo, services.WithPasswordHasher(hasher))
	userData := services.NewUserDataService(userDataRepo)
	sess := session.New(accounts, userData)

	if err := sess.Restore(); err != nil {
		return nil, err
	}

	logging.Info().Str("driver", cfg.Storage.Driver).Bool("signed_in", sess.User() != nil).Msg("catalog core ready")
	return &App{
		Accounts: accounts,
		UserData: userData,
		Session:  sess,
		store:    store,
	}, nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.store.Close()
}
