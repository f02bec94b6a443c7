// Package launcher drives the launcher lifecycle. It selects projects and
// applications, resolves package requests against the configured package
// paths and starts applications with the resulting environment.
//
// Every change is published on the Events channel so that a window can
// follow along without polling.
package launcher
