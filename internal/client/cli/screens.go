package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/foodhub/internal/client/viewmodel"
)

// screenVM is the observable side of every view-model.
type screenVM interface {
	Subscribe(ctx context.Context) <-chan viewmodel.UIState
	Events() <-chan viewmodel.NavigationEvent
	Wait()
}

// drive starts action on vm and renders the states it goes through until the
// attempt ends, then consumes the events it left behind.
func (a *App) drive(ctx context.Context, vm screenVM, busy string, action func()) error {
	sctx, cancel := context.WithCancel(ctx)
	defer cancel()

	states := vm.Subscribe(sctx)
	<-states

	action()

	var last viewmodel.UIState
loop:
	for st := range states {
		last = st
		switch {
		case st.Kind == viewmodel.Loading:
			fmt.Fprintln(a.out, busy)
		case st.Terminal():
			break loop
		}
	}
	vm.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}
	a.consumeEvents(vm, last)
	return nil
}

func (a *App) consumeEvents(vm screenVM, last viewmodel.UIState) {
	shown := false
	for {
		select {
		case ev := <-vm.Events():
			switch ev.Kind {
			case viewmodel.NavigateHome:
				a.loggedIn = true
				fmt.Fprintln(a.out, "Signed in. Type 'food' to see the menu.")
			case viewmodel.ShowErrorDialog:
				a.showError(ev.Title, ev.Description)
				shown = true
			}
		default:
			if last.Kind == viewmodel.Error && !shown {
				a.showError(last.Title, last.Description)
			}
			return
		}
	}
}

// route opens the screen a navigation event points at.
func (a *App) route(ctx context.Context, ev viewmodel.NavigationEvent) error {
	switch ev.Kind {
	case viewmodel.NavigateSignUp:
		return a.signUpScreen(ctx)
	case viewmodel.NavigateLogin:
		return a.signInScreen(ctx)
	default:
		return nil
	}
}

// nextEvent waits for the event a click has just emitted.
func nextEvent(ctx context.Context, vm screenVM) (viewmodel.NavigationEvent, error) {
	select {
	case ev := <-vm.Events():
		return ev, nil
	case <-ctx.Done():
		return viewmodel.NavigationEvent{}, ctx.Err()
	}
}

func (a *App) showError(title, description string) {
	fmt.Fprintf(a.out, "\n[%s]\n%s\n\n", title, description)
}
