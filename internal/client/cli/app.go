package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/foodhub/internal/client/api"
	"github.com/dmitrijs2005/foodhub/internal/client/auth"
	"github.com/dmitrijs2005/foodhub/internal/client/config"
	"github.com/dmitrijs2005/foodhub/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/foodhub/internal/client/session"
	"github.com/dmitrijs2005/foodhub/internal/client/social"
	"github.com/dmitrijs2005/foodhub/internal/client/storage"
	"github.com/dmitrijs2005/foodhub/internal/client/viewmodel"
	"github.com/dmitrijs2005/foodhub/internal/logging"

	_ "modernc.org/sqlite"
)

// sessionStore is what the screens need from the session.
type sessionStore interface {
	StoreToken(ctx context.Context, token string) error
	Token(ctx context.Context) (string, error)
	SavedAt(ctx context.Context) (time.Time, error)
	LoggedIn(ctx context.Context) bool
	Clear(ctx context.Context) error
}

type App struct {
	db       *sql.DB
	session  sessionStore
	api      api.Client
	google   social.Adapter
	facebook social.Adapter
	deps     viewmodel.Deps
	logger   logging.Logger

	// landing is the screen shown while signed out.
	landing  *viewmodel.AuthViewModel
	loggedIn bool

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local database and builds every collaborator from cfg.
// Logs go to stderr; prompts and results go to stdout.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	client, err := api.NewHTTPClient(cfg.BaseURL, api.WithLogger(logger))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	opts := []social.Option{
		social.WithOpener(social.PrintOpener(os.Stdout)),
		social.WithCallbackAddr(cfg.CallbackAddr),
		social.WithLogger(logger),
	}
	google := social.NewGoogleAdapter(social.GoogleConfig{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		Issuer:       cfg.Google.Issuer,
	}, opts...)
	facebook := social.NewFacebookAdapter(social.FacebookConfig{
		AppID:     cfg.Facebook.AppID,
		AppSecret: cfg.Facebook.AppSecret,
	}, opts...)

	a := newApp(client, session.NewStore(metadata.NewSQLiteRepository(db)), google, facebook, logger)
	a.db = db
	return a, nil
}

func newApp(client api.Client, store sessionStore, google, facebook social.Adapter, logger logging.Logger) *App {
	return &App{
		session:  store,
		api:      client,
		google:   google,
		facebook: facebook,
		logger:   logger,
		deps: viewmodel.Deps{
			API:     client,
			Session: store,
			Social:  auth.NewFlow(client, logger),
			Logger:  logger,
		},
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// Run blocks in the REPL until the user exits or ctx ends.
func (a *App) Run(ctx context.Context) {
	defer a.close()

	a.landing = viewmodel.NewAuthViewModel(ctx, a.deps)

	fmt.Fprintln(a.out, "Welcome to FoodHub (type 'help' for commands)")
	a.loggedIn = a.session.LoggedIn(ctx)
	if a.loggedIn {
		fmt.Fprintln(a.out, "You are signed in.")
	}

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

func (a *App) status() string {
	if a.loggedIn {
		return "signed in"
	}
	return "guest"
}

func (a *App) close() {
	if a.landing != nil {
		a.landing.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}
