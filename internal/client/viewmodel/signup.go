package viewmodel

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/foodhub/internal/client/api"
)

// SignUpViewModel backs the registration screen.
type SignUpViewModel struct {
	*screen

	Name     Field
	Email    Field
	Password Field
}

func NewSignUpViewModel(ctx context.Context, deps Deps) *SignUpViewModel {
	return &SignUpViewModel{screen: newScreen(ctx, "signup", deps)}
}

// SignUp submits the current fields.
func (vm *SignUpViewModel) SignUp() {
	req := api.SignUpRequest{
		Name:     strings.TrimSpace(vm.Name.Get()),
		Email:    strings.TrimSpace(vm.Email.Get()),
		Password: vm.Password.Get(),
	}

	vm.scope.launch(keySignUp, func(ctx context.Context) {
		if !present(req) {
			vm.state.Set(ErrorState(titleMissingDetails, descMissingDetails))
			return
		}

		vm.state.Set(UIState{Kind: Loading})
		res := vm.deps.API.SignUp(ctx, req)
		vm.finishAuth(ctx, res, failureTexts{title: "Sign Up Failed", exception: "Failed to sign up"})
	})
}

func (vm *SignUpViewModel) LoginClicked() {
	vm.navigate(NavigateLogin)
}
