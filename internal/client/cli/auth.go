package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/foodhub/internal/client/viewmodel"
	"github.com/dmitrijs2005/foodhub/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

const (
	switchToSignUp = "signup"
	switchToSignIn = "signin"
)

// SignIn opens the sign-in screen from the landing screen.
func (a *App) SignIn(ctx context.Context) error {
	a.landing.SignInClicked()
	ev, err := nextEvent(ctx, a.landing)
	if err != nil {
		return err
	}
	return a.route(ctx, ev)
}

// SignUp opens the sign-up screen from the landing screen.
func (a *App) SignUp(ctx context.Context) error {
	a.landing.SignUpClicked()
	ev, err := nextEvent(ctx, a.landing)
	if err != nil {
		return err
	}
	return a.route(ctx, ev)
}

func (a *App) signInScreen(ctx context.Context) error {
	vm := viewmodel.NewSignInViewModel(ctx, a.deps)
	defer vm.Close()

	email, err := getSimpleText(a.reader, "Enter email (or 'signup' to create an account)", a.out)
	if err != nil {
		return err
	}
	if email == switchToSignUp {
		vm.SignUpClicked()
		ev, err := nextEvent(ctx, vm)
		if err != nil {
			return err
		}
		return a.route(ctx, ev)
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	vm.Email.Set(email)
	vm.Password.Set(string(password))
	return a.drive(ctx, vm, "Signing in...", vm.SignIn)
}

func (a *App) signUpScreen(ctx context.Context) error {
	vm := viewmodel.NewSignUpViewModel(ctx, a.deps)
	defer vm.Close()

	name, err := getSimpleText(a.reader, "Enter name (or 'signin' to use an existing account)", a.out)
	if err != nil {
		return err
	}
	if name == switchToSignIn {
		vm.LoginClicked()
		ev, err := nextEvent(ctx, vm)
		if err != nil {
			return err
		}
		return a.route(ctx, ev)
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	vm.Name.Set(name)
	vm.Email.Set(email)
	vm.Password.Set(string(password))
	return a.drive(ctx, vm, "Creating account...", vm.SignUp)
}

// Google runs the Google login from the landing screen.
func (a *App) Google(ctx context.Context) error {
	return a.drive(ctx, a.landing, "Waiting for Google sign in...", func() {
		a.landing.SocialLogin(a.google)
	})
}

// Facebook runs the Facebook login from the landing screen.
func (a *App) Facebook(ctx context.Context) error {
	return a.drive(ctx, a.landing, "Waiting for Facebook sign in...", func() {
		a.landing.SocialLogin(a.facebook)
	})
}

// Logout forgets the stored session token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	a.loggedIn = false
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}
