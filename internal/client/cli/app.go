package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/candidatetracker/internal/candidate"
	"github.com/dmitrijs2005/candidatetracker/internal/client/client"
	"github.com/dmitrijs2005/candidatetracker/internal/client/config"
	"github.com/dmitrijs2005/candidatetracker/internal/client/dashboard"
	"github.com/dmitrijs2005/candidatetracker/internal/client/form"
	"github.com/dmitrijs2005/candidatetracker/internal/client/services"
	"github.com/dmitrijs2005/candidatetracker/internal/client/session"
	"github.com/dmitrijs2005/candidatetracker/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// pingTimeout bounds one connectivity probe.
const pingTimeout = 3 * time.Second

type App struct {
	config      *config.Config
	log         logging.Logger
	db          *sql.DB
	session     *session.Session
	authService services.AuthService
	candidates  services.CandidateService
	form        *form.Form
	filter      dashboard.Filter

	modeMu sync.RWMutex
	mode   Mode

	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time
	loc    *time.Location
}

// NewApp opens the local store, restores the saved session and wires the
// services against the configured backend.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewTextLogger(os.Stderr, c.LogLevel)

	db, err := client.OpenLocalStore(ctx, c.DBPath)
	if err != nil {
		logger.Error(ctx, "error initializing local store", "path", c.DBPath, "error", err)
		return nil, err
	}

	s := session.New(db)
	if err := s.Load(ctx); err != nil {
		logger.Warn(ctx, "saved session discarded", "error", err)
	}

	api := client.NewHTTPClient(c.ServerURL, nil, s)
	cs := services.NewCandidateService(api, s)

	a := &App{
		config:      c,
		log:         logger,
		db:          db,
		session:     s,
		authService: services.NewAuthService(api, s, c.LoginTimeout),
		candidates:  cs,
		form:        form.New(candidate.NewValidator(), cs),
		filter:      dashboard.DefaultFilter(),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		now:         time.Now,
		loc:         time.Local,
	}
	return a, nil
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		a.log.Info(context.Background(), fmt.Sprintf("Switched to %s mode", mode))
	}
}

func (a *App) Mode() Mode {
	a.modeMu.RLock()
	defer a.modeMu.RUnlock()
	return a.mode
}

// Run blocks in the REPL until the user exits, then releases resources.
func (a *App) Run(ctx context.Context) {
	defer func() {
		_ = a.authService.Close(ctx)
		if a.db != nil {
			_ = a.db.Close()
		}
	}()
	a.Root(ctx)
}

// role is "" when nobody is signed in.
func (a *App) role() string {
	if !a.session.IsAuthenticated() {
		return ""
	}
	return a.session.Role()
}

func (a *App) probe() {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	err := a.authService.Ping(ctx)
	cancel()

	if err != nil {
		a.setMode(ModeOffline)
	} else {
		a.setMode(ModeOnline)
	}
}

// StartOnlineStatusWatcher probes the backend every interval until ctx is done.
// A non-positive interval disables the watcher.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		a.log.Warn(ctx, "online status watcher disabled", "interval", interval)
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.probe()
		case <-ctx.Done():
			return
		}
	}
}
