// Package cli is the interactive FoodHub terminal client.
//
// It wires configuration, the local session store, the backend API client
// and the social login adapters, then runs a REPL whose commands play the
// part of the app's screens: the landing screen (social login), sign in,
// sign up and a signed-in home with whoami, food and logout.
//
// Each screen command drives its view-model and renders the UI states and
// navigation events it produces. The REPL is started via App.Run, which
// blocks until the user exits.
package cli
