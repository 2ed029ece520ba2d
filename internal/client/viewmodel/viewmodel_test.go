package viewmodel

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/foodhub/internal/client/api"
	"github.com/dmitrijs2005/foodhub/internal/client/auth"
	"github.com/dmitrijs2005/foodhub/internal/client/social"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// journal records the order in which collaborators are touched.
type journal struct {
	mu      sync.Mutex
	entries []string
}

func (j *journal) add(e string) {
	j.mu.Lock()
	j.entries = append(j.entries, e)
	j.mu.Unlock()
}

func (j *journal) list() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.entries...)
}

type fakeAPI struct {
	j      *journal
	result api.Result[api.AuthResponse]
	gate   chan struct{}

	mu    sync.Mutex
	calls int
}

func (f *fakeAPI) do(ctx context.Context, name string) api.Result[api.AuthResponse] {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	f.j.add(name)
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return api.Exception[api.AuthResponse](ctx.Err())
		}
	}
	return f.result
}

func (f *fakeAPI) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeAPI) Food(context.Context) api.Result[[]string] { return api.Success([]string{}) }

func (f *fakeAPI) SignUp(ctx context.Context, _ api.SignUpRequest) api.Result[api.AuthResponse] {
	return f.do(ctx, "signup")
}

func (f *fakeAPI) SignIn(ctx context.Context, _ api.SignInRequest) api.Result[api.AuthResponse] {
	return f.do(ctx, "signin")
}

func (f *fakeAPI) OAuth(ctx context.Context, _ api.OAuthRequest) api.Result[api.AuthResponse] {
	return f.do(ctx, "oauth")
}

type fakeSession struct {
	j     *journal
	err   error
	token string
}

func (s *fakeSession) StoreToken(_ context.Context, token string) error {
	s.j.add("store")
	if s.err != nil {
		return s.err
	}
	s.token = token
	return nil
}

type fakeAdapter struct {
	provider string
	err      error
}

func (a fakeAdapter) Provider() string { return a.provider }

func (a fakeAdapter) ProviderToken(context.Context) (string, error) {
	return "provider-token", a.err
}

type fixture struct {
	j       *journal
	api     *fakeAPI
	session *fakeSession
	deps    Deps
}

func newFixture(result api.Result[api.AuthResponse]) *fixture {
	j := &journal{}
	f := &fixture{
		j:       j,
		api:     &fakeAPI{j: j, result: result},
		session: &fakeSession{j: j},
	}
	f.deps = Deps{API: f.api, Session: f.session, Social: auth.NewFlow(f.api, nil)}
	return f
}

// states subscribes and returns a function collecting states until the
// attempt ends.
func states(t *testing.T, sub interface {
	Subscribe(context.Context) <-chan UIState
}) func() []UIState {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	ch := sub.Subscribe(ctx)
	require.Equal(t, UIState{Kind: Idle}, <-ch)

	return func() []UIState {
		var got []UIState
		for {
			select {
			case s, ok := <-ch:
				require.True(t, ok, "timed out, got %v", got)
				got = append(got, s)
				if s.Terminal() {
					return got
				}
			case <-ctx.Done():
				t.Fatalf("timed out, got %v", got)
			}
		}
	}
}

func nextEvent(t *testing.T, ch <-chan NavigationEvent) NavigationEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("no navigation event")
		return NavigationEvent{}
	}
}

func noEvent(t *testing.T, ch <-chan NavigationEvent) {
	t.Helper()
	select {
	case ev := <-ch:
		t.Fatalf("unexpected event %v", ev.Kind)
	default:
	}
}

func TestSignIn_Success(t *testing.T) {
	f := newFixture(api.Success(api.AuthResponse{Token: "app-token"}))
	vm := NewSignInViewModel(context.Background(), f.deps)
	defer vm.Close()
	collect := states(t, vm)

	vm.Email.Set(" ann@example.com ")
	vm.Password.Set("secret")
	vm.SignIn()

	assert.Equal(t, []UIState{{Kind: Loading}, {Kind: Success}}, collect())
	ev := nextEvent(t, vm.Events())
	assert.Equal(t, NavigateHome, ev.Kind)
	assert.Equal(t, []string{"signin", "store"}, f.j.list())
	assert.Equal(t, "app-token", f.session.token)
}

func TestSignIn_Failures(t *testing.T) {
	tests := []struct {
		name   string
		result api.Result[api.AuthResponse]
		want   UIState
	}{
		{"bad credentials", api.Failure[api.AuthResponse](400, "bad"), ErrorState("Invalid Credentials", "Please enter correct details.")},
		{"unauthorized", api.Failure[api.AuthResponse](401, ""), ErrorState("Sign In Failed", "Invalid Token")},
		{"server error", api.Failure[api.AuthResponse](500, ""), ErrorState("Sign In Failed", "Server Error")},
		{"unknown status", api.Failure[api.AuthResponse](503, ""), ErrorState("Sign In Failed", "Failed")},
		{"transport", api.Exception[api.AuthResponse](errors.New("dial tcp: refused")), ErrorState("Sign In Failed", "Failed to sign in")},
		{"empty token", api.Success(api.AuthResponse{}), ErrorState("Sign In Failed", "Failed")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(tt.result)
			vm := NewSignInViewModel(context.Background(), f.deps)
			defer vm.Close()
			collect := states(t, vm)

			vm.Email.Set("ann@example.com")
			vm.Password.Set("secret")
			vm.SignIn()

			assert.Equal(t, []UIState{{Kind: Loading}, tt.want}, collect())
			vm.Wait()
			noEvent(t, vm.Events())
			assert.NotContains(t, f.j.list(), "store")
		})
	}
}

func TestSignIn_MissingDetailsSkipsNetwork(t *testing.T) {
	f := newFixture(api.Success(api.AuthResponse{Token: "t"}))
	vm := NewSignInViewModel(context.Background(), f.deps)
	defer vm.Close()
	collect := states(t, vm)

	vm.Email.Set("   ")
	vm.Password.Set("secret")
	vm.SignIn()

	assert.Equal(t, []UIState{ErrorState("Missing Details", "Please fill in all fields.")}, collect())
	assert.Zero(t, f.api.callCount())
}

func TestSignIn_SaveFailure(t *testing.T) {
	f := newFixture(api.Success(api.AuthResponse{Token: "t"}))
	f.session.err = errors.New("disk full")
	vm := NewSignInViewModel(context.Background(), f.deps)
	defer vm.Close()
	collect := states(t, vm)

	vm.Email.Set("a@b.c")
	vm.Password.Set("p")
	vm.SignIn()

	assert.Equal(t, []UIState{{Kind: Loading}, ErrorState("Sign In Failed", "Could not save session")}, collect())
	vm.Wait()
	noEvent(t, vm.Events())
}

func TestSignIn_DuplicateSubmitCollapses(t *testing.T) {
	f := newFixture(api.Success(api.AuthResponse{Token: "t"}))
	f.api.gate = make(chan struct{})
	vm := NewSignInViewModel(context.Background(), f.deps)
	defer vm.Close()

	vm.Email.Set("a@b.c")
	vm.Password.Set("p")
	vm.SignIn()
	vm.SignIn()
	vm.SignIn()
	close(f.api.gate)
	vm.Wait()

	assert.Equal(t, 1, f.api.callCount())
	assert.Equal(t, NavigateHome, nextEvent(t, vm.Events()).Kind)
	noEvent(t, vm.Events())
}

func TestSignIn_CloseCancelsRequest(t *testing.T) {
	f := newFixture(api.Success(api.AuthResponse{Token: "t"}))
	f.api.gate = make(chan struct{})
	vm := NewSignInViewModel(context.Background(), f.deps)
	collect := states(t, vm)

	vm.Email.Set("a@b.c")
	vm.Password.Set("p")
	vm.SignIn()
	vm.Close()

	got := collect()
	assert.Equal(t, ErrorState("Sign In Failed", "Failed to sign in"), got[len(got)-1])
	assert.NotContains(t, f.j.list(), "store")
}

func TestSignIn_SignUpClicked(t *testing.T) {
	vm := NewSignInViewModel(context.Background(), newFixture(api.Result[api.AuthResponse]{}).deps)
	defer vm.Close()

	vm.SignUpClicked()
	assert.Equal(t, NavigateSignUp, nextEvent(t, vm.Events()).Kind)
}

func TestSignUp_Success(t *testing.T) {
	f := newFixture(api.Success(api.AuthResponse{Token: "new-token"}))
	vm := NewSignUpViewModel(context.Background(), f.deps)
	defer vm.Close()
	collect := states(t, vm)

	vm.Name.Set("Ann")
	vm.Email.Set("ann@example.com")
	vm.Password.Set("secret")
	vm.SignUp()

	assert.Equal(t, []UIState{{Kind: Loading}, {Kind: Success}}, collect())
	assert.Equal(t, NavigateHome, nextEvent(t, vm.Events()).Kind)
	assert.Equal(t, []string{"signup", "store"}, f.j.list())
}

func TestSignUp_Failures(t *testing.T) {
	tests := []struct {
		name   string
		result api.Result[api.AuthResponse]
		want   UIState
	}{
		{"bad request", api.Failure[api.AuthResponse](400, ""), ErrorState("Invalid Credentials", "Please enter correct details.")},
		{"conflict", api.Failure[api.AuthResponse](409, "email taken"), ErrorState("Sign Up Failed", "Failed")},
		{"transport", api.Exception[api.AuthResponse](errors.New("eof")), ErrorState("Sign Up Failed", "Failed to sign up")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(tt.result)
			vm := NewSignUpViewModel(context.Background(), f.deps)
			defer vm.Close()
			collect := states(t, vm)

			vm.Name.Set("Ann")
			vm.Email.Set("ann@example.com")
			vm.Password.Set("secret")
			vm.SignUp()

			assert.Equal(t, []UIState{{Kind: Loading}, tt.want}, collect())
		})
	}
}

func TestSignUp_MissingName(t *testing.T) {
	f := newFixture(api.Success(api.AuthResponse{Token: "t"}))
	vm := NewSignUpViewModel(context.Background(), f.deps)
	defer vm.Close()
	collect := states(t, vm)

	vm.Email.Set("ann@example.com")
	vm.Password.Set("secret")
	vm.SignUp()

	assert.Equal(t, []UIState{ErrorState("Missing Details", "Please fill in all fields.")}, collect())
	assert.Zero(t, f.api.callCount())
}

func TestSignUp_LoginClicked(t *testing.T) {
	vm := NewSignUpViewModel(context.Background(), newFixture(api.Result[api.AuthResponse]{}).deps)
	defer vm.Close()

	vm.LoginClicked()
	assert.Equal(t, NavigateLogin, nextEvent(t, vm.Events()).Kind)
}

func TestSocialLogin_FromSignInScreen(t *testing.T) {
	f := newFixture(api.Success(api.AuthResponse{Token: "social-token"}))
	vm := NewSignInViewModel(context.Background(), f.deps)
	defer vm.Close()
	collect := states(t, vm)

	vm.SocialLogin(fakeAdapter{provider: "google"})

	assert.Equal(t, []UIState{{Kind: Loading}, {Kind: Success}}, collect())
	assert.Equal(t, NavigateHome, nextEvent(t, vm.Events()).Kind)
	assert.Equal(t, []string{"oauth", "store"}, f.j.list())
	assert.Equal(t, "social-token", f.session.token)
}

func TestSocialLogin_SignInScreenShowsStateOnly(t *testing.T) {
	f := newFixture(api.Failure[api.AuthResponse](401, ""))
	vm := NewSignInViewModel(context.Background(), f.deps)
	defer vm.Close()
	collect := states(t, vm)

	vm.SocialLogin(fakeAdapter{provider: "facebook"})

	assert.Equal(t, []UIState{{Kind: Loading}, ErrorState("Facebook Sign In Failed", "Invalid Token")}, collect())
	vm.Wait()
	noEvent(t, vm.Events())
}

func TestAuthScreen_SocialErrorRaisesDialog(t *testing.T) {
	f := newFixture(api.Success(api.AuthResponse{Token: "t"}))
	vm := NewAuthViewModel(context.Background(), f.deps)
	defer vm.Close()
	collect := states(t, vm)

	vm.SocialLogin(fakeAdapter{provider: "facebook", err: social.ErrCancelled})

	want := ErrorState("Facebook Sign In Failed", "Cancelled")
	assert.Equal(t, []UIState{{Kind: Loading}, want}, collect())

	ev := nextEvent(t, vm.Events())
	assert.Equal(t, NavigationEvent{Kind: ShowErrorDialog, Title: want.Title, Description: want.Description}, ev)
	assert.Zero(t, f.api.callCount(), "adapter failure must not reach the exchange")
}

func TestAuthScreen_Navigation(t *testing.T) {
	vm := NewAuthViewModel(context.Background(), newFixture(api.Result[api.AuthResponse]{}).deps)
	defer vm.Close()

	vm.SignInClicked()
	vm.SignUpClicked()
	assert.Equal(t, NavigateLogin, nextEvent(t, vm.Events()).Kind)
	assert.Equal(t, NavigateSignUp, nextEvent(t, vm.Events()).Kind)
}
