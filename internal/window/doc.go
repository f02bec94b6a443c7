// Package window keeps the launcher window consistent with the application
// lifecycle.
//
// It owns two pieces of coordination logic that are independent of any
// rendering toolkit:
//
//   - StateMachine maps a lifecycle.State to the page on display and to the
//     enablement of the top-level controls and docks.
//   - Coordinator enforces the at-most-one-active-dock policy and makes a
//     newly shown dock the front tab of whatever tab strip it currently
//     lives in.
//
// The host toolkit is reached only through the TabHost interface. Tab strips
// are enumerated on every lookup and matched to docks by title, because the
// host is free to regroup them between two calls.
//
// All functions in this package must be called from the UI goroutine.
package window
