package viewmodel

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/foodhub/internal/client/api"
	"github.com/dmitrijs2005/foodhub/internal/client/auth"
	"github.com/dmitrijs2005/foodhub/internal/client/social"
	"github.com/dmitrijs2005/foodhub/internal/logging"
	"github.com/go-playground/validator/v10"
)

const (
	titleMissingDetails = "Missing Details"
	descMissingDetails  = "Please fill in all fields."

	titleInvalidCredentials = "Invalid Credentials"
	descInvalidCredentials  = "Please enter correct details."

	descSaveFailed = "Could not save session"
)

const (
	keySignIn = "signin"
	keySignUp = "signup"
	keySocial = "social"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// TokenStore persists the session token.
type TokenStore interface {
	StoreToken(ctx context.Context, token string) error
}

// SocialLoginer runs a social login and reports through hooks.
type SocialLoginer interface {
	SocialLogin(ctx context.Context, adapter social.Adapter, hooks auth.Hooks)
}

// Deps are the collaborators shared by every view-model.
type Deps struct {
	API     api.Client
	Session TokenStore
	Social  SocialLoginer
	Logger  logging.Logger
}

// screen is the part every view-model shares: UI state, navigation events,
// task scope and the social login hooks.
type screen struct {
	deps   Deps
	logger logging.Logger
	state  *StateFlow[UIState]
	events *EventStream[NavigationEvent]
	scope  *scope

	// dialogOnError also emits ShowErrorDialog for failed social logins.
	dialogOnError bool
}

func newScreen(ctx context.Context, name string, deps Deps) *screen {
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}
	return &screen{
		deps:   deps,
		logger: deps.Logger.With("screen", name),
		state:  NewStateFlow(UIState{Kind: Idle}),
		events: NewEventStream[NavigationEvent](),
		scope:  newScope(ctx),
	}
}

// State returns the current UI state.
func (s *screen) State() UIState { return s.state.Value() }

// Subscribe streams the current UI state and every later one until ctx ends.
func (s *screen) Subscribe(ctx context.Context) <-chan UIState { return s.state.Subscribe(ctx) }

// Events is the one-shot navigation stream.
func (s *screen) Events() <-chan NavigationEvent { return s.events.Events() }

// Wait blocks until all started actions have finished.
func (s *screen) Wait() { s.scope.wait() }

// Close cancels outstanding actions and waits for them.
func (s *screen) Close() { s.scope.close() }

// SocialLogin starts a login through adapter. Repeated calls while one is in
// progress join it.
func (s *screen) SocialLogin(adapter social.Adapter) {
	s.scope.launch(keySocial, func(ctx context.Context) {
		s.deps.Social.SocialLogin(ctx, adapter, s)
	})
}

func (s *screen) navigate(kind NavKind) {
	s.emit(s.scope.ctx, NavigationEvent{Kind: kind})
}

func (s *screen) emit(ctx context.Context, ev NavigationEvent) {
	if err := s.events.Emit(ctx, ev); err != nil {
		s.logger.Debug(ctx, "navigation event dropped", "event", ev.Kind.String(), "error", err)
	}
}

func (s *screen) Loading(context.Context) {
	s.state.Set(UIState{Kind: Loading})
}

func (s *screen) OnSocialError(ctx context.Context, provider, message string) {
	title := auth.ErrorTitle(provider)
	s.state.Set(ErrorState(title, message))
	if s.dialogOnError {
		s.emit(ctx, NavigationEvent{Kind: ShowErrorDialog, Title: title, Description: message})
	}
}

func (s *screen) OnSocialLoginSuccess(ctx context.Context, token string) {
	s.completeLogin(ctx, token, auth.ErrorTitle(""))
}

// completeLogin stores token, then reports success, then navigates home.
func (s *screen) completeLogin(ctx context.Context, token, failTitle string) {
	if err := s.deps.Session.StoreToken(ctx, token); err != nil {
		s.logger.Error(ctx, "store session token", "error", err)
		s.state.Set(ErrorState(failTitle, descSaveFailed))
		return
	}
	s.state.Set(UIState{Kind: Success})
	s.emit(ctx, NavigationEvent{Kind: NavigateHome})
}

// failureTexts are the messages a credentials screen uses for its own errors.
type failureTexts struct {
	title     string
	exception string
}

// finishAuth maps the result of a sign-in or sign-up call onto UI state.
func (s *screen) finishAuth(ctx context.Context, res api.Result[api.AuthResponse], texts failureTexts) {
	switch res.Outcome {
	case api.OutcomeSuccess:
		if res.Data.Token == "" {
			s.logger.Warn(ctx, "backend returned empty token")
			s.state.Set(ErrorState(texts.title, api.Fallback))
			return
		}
		s.completeLogin(ctx, res.Data.Token, texts.title)
	case api.OutcomeError:
		s.logger.Warn(ctx, "request rejected", "status", res.Code, "message", res.Message)
		if res.Code == http.StatusBadRequest {
			s.state.Set(ErrorState(titleInvalidCredentials, descInvalidCredentials))
			return
		}
		s.state.Set(ErrorState(texts.title, api.MessageForStatus(res.Code)))
	default:
		s.logger.Error(ctx, "request failed", "error", res.Err)
		s.state.Set(ErrorState(texts.title, texts.exception))
	}
}

// present reports whether every required field of form is filled.
func present(form any) bool {
	return validate.Struct(form) == nil
}
