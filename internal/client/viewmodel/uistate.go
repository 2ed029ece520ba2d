package viewmodel

// Kind is the variant of a UIState.
type Kind int

const (
	Idle Kind = iota
	Loading
	Success
	Error
)

func (k Kind) String() string {
	switch k {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// UIState is what a screen renders. Title and Description are set for Error
// only.
type UIState struct {
	Kind        Kind
	Title       string
	Description string
}

func ErrorState(title, description string) UIState {
	return UIState{Kind: Error, Title: title, Description: description}
}

// Terminal reports whether an attempt has finished.
func (s UIState) Terminal() bool {
	return s.Kind == Success || s.Kind == Error
}

// NavKind is the variant of a NavigationEvent.
type NavKind int

const (
	NavigateHome NavKind = iota + 1
	NavigateSignUp
	NavigateLogin
	ShowErrorDialog
)

func (k NavKind) String() string {
	switch k {
	case NavigateHome:
		return "home"
	case NavigateSignUp:
		return "signup"
	case NavigateLogin:
		return "login"
	case ShowErrorDialog:
		return "error-dialog"
	default:
		return "unknown"
	}
}

// NavigationEvent is consumed once by the active screen. Title and
// Description accompany ShowErrorDialog.
type NavigationEvent struct {
	Kind        NavKind
	Title       string
	Description string
}
