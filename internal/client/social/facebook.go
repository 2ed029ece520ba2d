package social

import (
	"context"

	"github.com/dmitrijs2005/foodhub/internal/common"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
)

type FacebookConfig struct {
	AppID     string
	AppSecret string
	// Endpoint overrides facebook.Endpoint.
	Endpoint *oauth2.Endpoint
}

// FacebookAdapter yields a Facebook user access token.
type FacebookAdapter struct {
	cfg  FacebookConfig
	flow *browserFlow
}

func NewFacebookAdapter(cfg FacebookConfig, opts ...Option) *FacebookAdapter {
	endpoint := facebook.Endpoint
	if cfg.Endpoint != nil {
		endpoint = *cfg.Endpoint
	}

	o := buildOptions(opts)
	o.logger = o.logger.With("provider", common.ProviderFacebook)

	oc := oauth2.Config{
		ClientID:     cfg.AppID,
		ClientSecret: cfg.AppSecret,
		Endpoint:     endpoint,
		Scopes:       []string{"public_profile", "email"},
	}

	return &FacebookAdapter{cfg: cfg, flow: newBrowserFlow(oc, o)}
}

func (f *FacebookAdapter) Provider() string { return common.ProviderFacebook }

func (f *FacebookAdapter) ProviderToken(ctx context.Context) (string, error) {
	if f.cfg.AppID == "" {
		return "", ErrNotConfigured
	}

	tok, err := f.flow.run(ctx)
	if err != nil {
		return "", err
	}
	if tok.AccessToken == "" {
		return "", ErrInvalidCredentialType
	}
	return tok.AccessToken, nil
}
