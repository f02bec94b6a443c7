package launcher

import (
	"errors"
	"time"

	"launchapp/internal/lifecycle"
)

var (
	ErrUnknownProject   = errors.New("unknown project")
	ErrUnknownApp       = errors.New("unknown application")
	ErrNoProject        = errors.New("no project selected")
	ErrNotReady         = errors.New("not ready to launch")
	ErrMalformedRequest = errors.New("malformed package request")
	ErrPackagesNotFound = errors.New("packages not found")
)

// Event is emitted by the Controller whenever something the window shows
// has changed.
type Event interface {
	isEvent()
}

// StateChanged reports a new lifecycle state.
type StateChanged struct {
	State lifecycle.State
}

// ProjectChanged reports that a project was selected. Before and After are
// equal when the same project was refreshed.
type ProjectChanged struct {
	Before string
	After  string
}

// AppsReset reports that the application list was replaced.
type AppsReset struct{}

// PackagesChanged reports that the resolved packages or environment changed.
type PackagesChanged struct{}

// CommandsChanged reports that a launched command started or finished.
type CommandsChanged struct{}

func (StateChanged) isEvent()    {}
func (ProjectChanged) isEvent()  {}
func (AppsReset) isEvent()       {}
func (PackagesChanged) isEvent() {}
func (CommandsChanged) isEvent() {}

// Package is one resolved package request of the current application.
type Package struct {
	Name     string
	Request  string
	Version  string
	Versions []string // Every version found on disk, oldest first
	Root     string
	Override string
	Disabled bool
	Found    bool
}

// EnvVar is one variable of the resolved environment.
type EnvVar struct {
	Key   string
	Value string
}

// CommandStatus is the state of a launched process.
type CommandStatus string

const (
	CommandRunning CommandStatus = "running"
	CommandExited  CommandStatus = "exited"
	CommandFailed  CommandStatus = "failed"
)

// Command is a process started by Launch.
type Command struct {
	ID       string
	App      string
	Args     []string
	PID      int
	Status   CommandStatus
	Started  time.Time
	Finished time.Time
	Err      error
}
