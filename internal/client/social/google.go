package social

import (
	"context"
	"fmt"
	"sync"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/dmitrijs2005/foodhub/internal/common"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const defaultGoogleIssuer = "https://accounts.google.com"

// GoogleAccount is what a Google sign-in yields.
type GoogleAccount struct {
	// Token is the raw OpenID Connect id_token; the backend verifies it again.
	Token           string
	DisplayName     string
	ProfileImageURL string
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	// Issuer defaults to https://accounts.google.com.
	Issuer string
	// Endpoint overrides google.Endpoint; tests point it at a fake provider.
	Endpoint *oauth2.Endpoint
}

type GoogleAdapter struct {
	cfg  GoogleConfig
	flow *browserFlow
	opts options

	mu       sync.Mutex
	verifier *oidc.IDTokenVerifier
}

func NewGoogleAdapter(cfg GoogleConfig, opts ...Option) *GoogleAdapter {
	if cfg.Issuer == "" {
		cfg.Issuer = defaultGoogleIssuer
	}
	endpoint := google.Endpoint
	if cfg.Endpoint != nil {
		endpoint = *cfg.Endpoint
	}

	o := buildOptions(opts)
	o.logger = o.logger.With("provider", common.ProviderGoogle)

	oc := oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     endpoint,
		Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
	}

	return &GoogleAdapter{
		cfg:  cfg,
		opts: o,
		flow: newBrowserFlow(oc, o, oauth2.SetAuthURLParam("prompt", "select_account")),
	}
}

// WithVerifier injects a ready id_token verifier instead of discovering one
// from the issuer on first use.
func (g *GoogleAdapter) WithVerifier(v *oidc.IDTokenVerifier) *GoogleAdapter {
	g.mu.Lock()
	g.verifier = v
	g.mu.Unlock()
	return g
}

func (g *GoogleAdapter) Provider() string { return common.ProviderGoogle }

func (g *GoogleAdapter) ProviderToken(ctx context.Context) (string, error) {
	acc, err := g.SignIn(ctx)
	if err != nil {
		return "", err
	}
	return acc.Token, nil
}

// SignIn runs the consent flow and returns the verified Google identity.
func (g *GoogleAdapter) SignIn(ctx context.Context) (GoogleAccount, error) {
	if g.cfg.ClientID == "" {
		return GoogleAccount{}, ErrNotConfigured
	}

	tok, err := g.flow.run(ctx)
	if err != nil {
		return GoogleAccount{}, err
	}

	raw, ok := tok.Extra("id_token").(string)
	if !ok || raw == "" {
		return GoogleAccount{}, ErrInvalidCredentialType
	}

	v, err := g.idTokenVerifier(ctx)
	if err != nil {
		return GoogleAccount{}, err
	}

	idt, err := v.Verify(ctx, raw)
	if err != nil {
		return GoogleAccount{}, fmt.Errorf("verify id_token: %w", err)
	}

	var claims struct {
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := idt.Claims(&claims); err != nil {
		return GoogleAccount{}, fmt.Errorf("parse id_token claims: %w", err)
	}

	g.opts.logger.Debug(ctx, "google sign in complete", "subject", idt.Subject)
	return GoogleAccount{Token: raw, DisplayName: claims.Name, ProfileImageURL: claims.Picture}, nil
}

func (g *GoogleAdapter) idTokenVerifier(ctx context.Context) (*oidc.IDTokenVerifier, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.verifier != nil {
		return g.verifier, nil
	}

	if g.opts.httpClient != nil {
		ctx = oidc.ClientContext(ctx, g.opts.httpClient)
	}
	p, err := oidc.NewProvider(ctx, g.cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("oidc discovery: %w", err)
	}
	g.verifier = p.Verifier(&oidc.Config{ClientID: g.cfg.ClientID})
	return g.verifier, nil
}
