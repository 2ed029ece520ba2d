package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	SignIn(ctx context.Context) error
	SignUp(ctx context.Context) error
	Google(ctx context.Context) error
	Facebook(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Food(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the FoodHub CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF, when ctx ends, or when
// the user types "exit" or "quit".
//
//	Signed out:
//	  - help           : show available commands
//	  - signin         : sign in with email and password
//	  - signup         : create an account
//	  - google         : continue with Google
//	  - facebook       : continue with Facebook
//	  - exit | quit    : leave the program
//
//	Signed in, additionally:
//	  - whoami         : show the current session
//	  - food           : list the menu
//	  - logout         : forget the session
//
// Errors returned by command handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("foodhub (%s) > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, food, logout, signin, signup, google, facebook, exit")
			} else {
				printlnFn("Available commands: signin, signup, google, facebook, exit")
			}

		case "signin", "login":
			cmdErr = a.SignIn(ctx)

		case "signup", "register":
			cmdErr = a.SignUp(ctx)

		case "google":
			cmdErr = a.Google(ctx)

		case "facebook":
			cmdErr = a.Facebook(ctx)

		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "food":
			cmdErr = a.Food(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr.Error())
		}
	}
}
