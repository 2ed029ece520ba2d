package social

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/foodhub/internal/logging"
	"github.com/go-chi/chi/v5"
	"golang.org/x/oauth2"
)

const callbackPath = "/callback"

// browserFlow runs an OAuth2 authorization-code flow with PKCE for a native
// app: the redirect URI points at a short-lived listener on the loopback
// interface, the user completes consent in a browser.
type browserFlow struct {
	config     oauth2.Config
	authParams []oauth2.AuthCodeOption
	opts       options
	logger     logging.Logger
}

type callbackResult struct {
	code string
	err  error
}

func newBrowserFlow(cfg oauth2.Config, opts options, authParams ...oauth2.AuthCodeOption) *browserFlow {
	return &browserFlow{
		config:     cfg,
		authParams: authParams,
		opts:       opts,
		logger:     opts.logger,
	}
}

// run blocks until the provider redirects back, the user aborts, or ctx ends.
func (f *browserFlow) run(ctx context.Context) (*oauth2.Token, error) {
	ln, err := net.Listen("tcp", f.opts.callbackAddr)
	if err != nil {
		return nil, fmt.Errorf("listen for oauth callback: %w", err)
	}

	state, err := randomState()
	if err != nil {
		_ = ln.Close()
		return nil, fmt.Errorf("generate state: %w", err)
	}
	verifier := oauth2.GenerateVerifier()

	cfg := f.config
	cfg.RedirectURL = "http://" + ln.Addr().String() + callbackPath

	results := make(chan callbackResult, 1)
	srv := &http.Server{
		Handler:           callbackRouter(state, results),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() { _ = srv.Serve(ln) }()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	authParams := append([]oauth2.AuthCodeOption{oauth2.S256ChallengeOption(verifier)}, f.authParams...)
	authURL := cfg.AuthCodeURL(state, authParams...)

	f.logger.Debug(ctx, "waiting for oauth callback", "redirect_uri", cfg.RedirectURL)
	if err := f.opts.opener(ctx, authURL); err != nil {
		return nil, fmt.Errorf("open authorization url: %w", err)
	}

	var res callbackResult
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrCancelled, ctx.Err())
	case res = <-results:
	}
	if res.err != nil {
		return nil, res.err
	}

	if f.opts.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, f.opts.httpClient)
	}
	tok, err := cfg.Exchange(ctx, res.code, oauth2.VerifierOption(verifier))
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}
	return tok, nil
}

func callbackRouter(state string, results chan<- callbackResult) http.Handler {
	deliver := func(r callbackResult) {
		select {
		case results <- r:
		default:
		}
	}

	r := chi.NewRouter()
	r.Get(callbackPath, func(w http.ResponseWriter, req *http.Request) {
		q := req.URL.Query()

		// Foreign requests are refused without ending the flow; only the
		// redirect carrying our state may complete or abort it.
		if q.Get("state") != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			return
		}

		if e := q.Get("error"); e != "" {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write([]byte("Login was not completed. You can close this window.\n"))
			if e == "access_denied" {
				deliver(callbackResult{err: ErrCancelled})
				return
			}
			deliver(callbackResult{err: fmt.Errorf("provider error %s: %s", e, q.Get("error_description"))})
			return
		}

		code := q.Get("code")
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			deliver(callbackResult{err: errors.New("oauth callback without code")})
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Login complete. You can close this window and return to FoodHub.\n"))
		deliver(callbackResult{code: code})
	})
	return r
}

func randomState() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
