// Package social turns a third-party identity provider's login into a token
// the FoodHub backend can exchange for its own session token.
//
// Each provider is an Adapter with a single capability: obtain a provider
// token. Google and Facebook share the browser authorization-code flow in
// loopback.go; everything provider specific stays in its own file.
package social

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/foodhub/internal/logging"
)

var (
	// ErrCancelled means the user aborted the login or the context ended.
	ErrCancelled = errors.New("cancelled")
	// ErrInvalidCredentialType means the provider answered with something
	// other than the credential we asked for.
	ErrInvalidCredentialType = errors.New("invalid credential type")
	// ErrNotConfigured means the adapter has no client credentials.
	ErrNotConfigured = errors.New("provider not configured")
)

// Adapter obtains a provider-issued token.
type Adapter interface {
	// Provider is the identifier sent to the backend, e.g. "google".
	Provider() string
	ProviderToken(ctx context.Context) (string, error)
}

// Opener shows the authorization URL to the user, normally by opening a browser.
type Opener func(ctx context.Context, authURL string) error

// PrintOpener asks the user to open the URL themselves.
func PrintOpener(w io.Writer) Opener {
	return func(_ context.Context, authURL string) error {
		_, err := io.WriteString(w, "Open this link in your browser to continue:\n"+authURL+"\n")
		return err
	}
}

type options struct {
	opener       Opener
	callbackAddr string
	httpClient   *http.Client
	logger       logging.Logger
}

type Option func(*options)

func WithOpener(o Opener) Option {
	return func(opts *options) { opts.opener = o }
}

// WithCallbackAddr sets the host:port of the loopback redirect listener.
// Port 0 picks a free port.
func WithCallbackAddr(addr string) Option {
	return func(opts *options) { opts.callbackAddr = addr }
}

// WithHTTPClient sets the client used for token and discovery requests.
func WithHTTPClient(c *http.Client) Option {
	return func(opts *options) { opts.httpClient = c }
}

func WithLogger(l logging.Logger) Option {
	return func(opts *options) { opts.logger = l }
}

func buildOptions(opts []Option) options {
	o := options{
		callbackAddr: "127.0.0.1:0",
		logger:       logging.Discard(),
	}
	for _, fn := range opts {
		fn(&o)
	}
	if o.opener == nil {
		o.opener = PrintOpener(io.Discard)
	}
	return o
}
