// Package viewmodel holds the per-screen state of the FoodHub client.
//
// A view-model exposes editable fields, a UI state that observers can
// subscribe to, and a stream of one-shot navigation events. User actions
// start asynchronous tasks bound to the view-model's lifetime; Close cancels
// whatever is still running.
package viewmodel
