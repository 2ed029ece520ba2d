// Package auth exchanges a social provider token for a FoodHub session token.
package auth

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/foodhub/internal/client/api"
	"github.com/dmitrijs2005/foodhub/internal/client/social"
	"github.com/dmitrijs2005/foodhub/internal/common"
	"github.com/dmitrijs2005/foodhub/internal/logging"
)

// Hooks receive the progress of a social login. Each screen's view-model
// implements them to drive its own state.
type Hooks interface {
	Loading(ctx context.Context)
	OnSocialError(ctx context.Context, provider, message string)
	OnSocialLoginSuccess(ctx context.Context, token string)
}

// Flow composes a social adapter with the backend OAuth exchange.
type Flow struct {
	api    api.Client
	logger logging.Logger
}

func NewFlow(client api.Client, logger logging.Logger) *Flow {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Flow{api: client, logger: logger}
}

// SocialLogin runs one attempt. Exactly one of the terminal hooks is called,
// always after Loading. Adapter failures never reach the exchange.
func (f *Flow) SocialLogin(ctx context.Context, adapter social.Adapter, hooks Hooks) {
	provider := adapter.Provider()
	log := f.logger.With("provider", provider)

	hooks.Loading(ctx)

	providerToken, err := adapter.ProviderToken(ctx)
	if err != nil {
		log.Warn(ctx, "provider sign in failed", "error", err)
		hooks.OnSocialError(ctx, provider, AdapterMessage(provider, err))
		return
	}

	res := f.api.OAuth(ctx, api.OAuthRequest{Provider: provider, Token: providerToken})
	switch res.Outcome {
	case api.OutcomeSuccess:
		if res.Data.Token == "" {
			log.Warn(ctx, "oauth exchange returned empty token")
			hooks.OnSocialError(ctx, provider, api.Fallback)
			return
		}
		log.Info(ctx, "social sign in complete")
		hooks.OnSocialLoginSuccess(ctx, res.Data.Token)
	case api.OutcomeError:
		log.Warn(ctx, "oauth exchange rejected", "status", res.Code, "message", res.Message)
		hooks.OnSocialError(ctx, provider, api.MessageForStatus(res.Code))
	default:
		log.Error(ctx, "oauth exchange failed", "error", res.Err)
		hooks.OnSocialError(ctx, provider, api.Fallback)
	}
}

// AdapterMessage renders an adapter failure the way each provider's screen
// shows it.
func AdapterMessage(provider string, err error) string {
	if provider == common.ProviderFacebook {
		if errors.Is(err, social.ErrCancelled) {
			return "Cancelled"
		}
		return "Failed: " + err.Error()
	}
	return err.Error()
}

// ErrorTitle is the dialog title for a failed social login.
func ErrorTitle(provider string) string {
	switch provider {
	case common.ProviderGoogle:
		return "Google Sign In Failed"
	case common.ProviderFacebook:
		return "Facebook Sign In Failed"
	default:
		return "Sign In Failed"
	}
}
