// Package appctx wires the long-lived collaborators into one
// explicitly constructed application context: storage, the session
// state store, and the widget managers. Built once at startup and
// passed down; nothing here lives in a package-level global.
package appctx

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mindspace-care/mindspace-api/internal/audit"
	"github.com/mindspace-care/mindspace-api/internal/config"
	"github.com/mindspace-care/mindspace-api/internal/session"
	"github.com/mindspace-care/mindspace-api/internal/ui/dialog"
	"github.com/mindspace-care/mindspace-api/internal/ui/notify"
	"github.com/mindspace-care/mindspace-api/internal/validation"
	"github.com/mindspace-care/mindspace-api/internal/validators"
)

type App struct {
	Cfg   *config.Config
	DB    *gorm.DB
	Redis *redis.Client

	Session       *session.Store
	Persistor     *session.Persistor
	Notifications *notify.Center
	Dialogs       *dialog.Manager
	Forms         *validation.Validator
	Audit         *audit.Dispatcher

	// EmailDomainCheck verifies the DNS side of a sign-up address.
	// Swappable so tests do not hit a resolver.
	EmailDomainCheck func(email string) bool

	cacheDebounce *session.Debouncer
}

func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *App {
	store := session.NewStore()

	app := &App{
		Cfg:              cfg,
		DB:               db,
		Redis:            rdb,
		Session:          store,
		Notifications:    notify.NewCenter(notify.DefaultMax),
		Dialogs:          dialog.NewManager(),
		Forms:            validation.New(),
		Audit:            audit.NewDispatcher(audit.New(db)),
		EmailDomainCheck: validators.IsEmailDomainValid,
		cacheDebounce:    session.NewDebouncer(session.DefaultDebounce),
	}

	if rdb != nil {
		app.Persistor = session.NewPersistor(rdb, store, "mindspace:session-state")
	}

	return app
}

// Start restores the persisted state snapshot and begins the periodic
// save loop. Safe to call without Redis; persistence is then skipped.
func (a *App) Start(ctx context.Context) {
	if a.Persistor == nil {
		log.Warn().Msg("redis unavailable, session state will not persist")
		return
	}
	a.Persistor.Load(ctx)
	a.Persistor.Start(ctx)
}

// InvalidateTherapistCache schedules a refresh of the cached therapist
// listing. Calls made in a burst (an admin approving several
// applications) coalesce into one query.
func (a *App) InvalidateTherapistCache(refresh func()) {
	a.cacheDebounce.Do(refresh)
}
