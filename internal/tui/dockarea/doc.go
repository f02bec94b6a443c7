// Package dockarea is the terminal stand-in for a toolkit's dock area. It
// groups docks into tab strips, floats them and remembers the arrangement
// so the window can save and restore it.
package dockarea
