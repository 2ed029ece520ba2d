package viewmodel

import "context"

// AuthViewModel backs the landing screen: social buttons plus links to the
// credential screens. Social errors also raise an error dialog.
type AuthViewModel struct {
	*screen
}

func NewAuthViewModel(ctx context.Context, deps Deps) *AuthViewModel {
	s := newScreen(ctx, "auth", deps)
	s.dialogOnError = true
	return &AuthViewModel{screen: s}
}

func (vm *AuthViewModel) SignUpClicked() {
	vm.navigate(NavigateSignUp)
}

func (vm *AuthViewModel) SignInClicked() {
	vm.navigate(NavigateLogin)
}
