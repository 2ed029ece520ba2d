package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/foodhub/internal/client/api"
	"github.com/dmitrijs2005/foodhub/internal/client/session"
)

// WhoAmI prints what the stored token says about the user.
func (a *App) WhoAmI(ctx context.Context) error {
	token, err := a.session.Token(ctx)
	if errors.Is(err, session.ErrNoSession) {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	if err != nil {
		return err
	}

	info := session.Describe(token)
	if info.Opaque {
		fmt.Fprintln(a.out, "Signed in (opaque token).")
		return nil
	}

	fmt.Fprintf(a.out, "Signed in as %s\n", info.Subject)
	if info.Issuer != "" {
		fmt.Fprintf(a.out, "Issuer: %s\n", info.Issuer)
	}
	if !info.ExpiresAt.IsZero() {
		state := "valid until"
		if info.Expired(time.Now()) {
			state = "expired at"
		}
		fmt.Fprintf(a.out, "Session %s %s\n", state, info.ExpiresAt.Local().Format(time.RFC1123))
	}
	if at, err := a.session.SavedAt(ctx); err == nil {
		fmt.Fprintf(a.out, "Saved on this device %s\n", at.Local().Format(time.RFC1123))
	}
	return nil
}

// Food prints the menu.
func (a *App) Food(ctx context.Context) error {
	res := a.api.Food(ctx)
	switch res.Outcome {
	case api.OutcomeSuccess:
		if len(res.Data) == 0 {
			fmt.Fprintln(a.out, "The menu is empty.")
			return nil
		}
		for _, item := range res.Data {
			fmt.Fprintf(a.out, "- %s\n", item)
		}
	case api.OutcomeError:
		a.showError("Menu Unavailable", api.MessageForStatus(res.Code))
	default:
		a.logger.Error(ctx, "food request failed", "error", res.Err)
		a.showError("Menu Unavailable", "Failed to load menu")
	}
	return nil
}
