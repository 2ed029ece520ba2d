package viewmodel

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/foodhub/internal/client/api"
)

// SignInViewModel backs the email/password sign-in screen.
type SignInViewModel struct {
	*screen

	Email    Field
	Password Field
}

func NewSignInViewModel(ctx context.Context, deps Deps) *SignInViewModel {
	return &SignInViewModel{screen: newScreen(ctx, "signin", deps)}
}

// SignIn submits the current fields.
func (vm *SignInViewModel) SignIn() {
	req := api.SignInRequest{
		Email:    strings.TrimSpace(vm.Email.Get()),
		Password: vm.Password.Get(),
	}

	vm.scope.launch(keySignIn, func(ctx context.Context) {
		if !present(req) {
			vm.state.Set(ErrorState(titleMissingDetails, descMissingDetails))
			return
		}

		vm.state.Set(UIState{Kind: Loading})
		res := vm.deps.API.SignIn(ctx, req)
		vm.finishAuth(ctx, res, failureTexts{title: "Sign In Failed", exception: "Failed to sign in"})
	})
}

func (vm *SignInViewModel) SignUpClicked() {
	vm.navigate(NavigateSignUp)
}
