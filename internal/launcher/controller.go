package launcher

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"slices"
	"strings"
	"sync"
	"time"

	"launchapp/internal/config"
	"launchapp/internal/lifecycle"
	"launchapp/pkg/logging"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const subsystem = "Launcher"

const eventBufferSize = 256

// Controller owns the lifecycle of the launcher: which project and
// application are selected, how their packages resolve and which processes
// were started. The window observes it through Events.
type Controller struct {
	mu sync.Mutex

	cfg    config.LaunchConfig
	events chan Event

	state          lifecycle.State
	startup        string
	project        string
	projectVersion string
	app            string
	packages       []Package
	env            []EnvVar
	lastErr        string
	commands       []*Command

	overrides map[string]string
	disabled  map[string]bool

	// basePath is appended to the resolved PATH.
	basePath string
}

// New creates a Controller for cfg. It starts in the booting state and
// does nothing until Boot is called.
func New(cfg config.LaunchConfig) *Controller {
	return &Controller{
		cfg:       cfg,
		events:    make(chan Event, eventBufferSize),
		state:     lifecycle.Booting,
		overrides: make(map[string]string),
		disabled:  make(map[string]bool),
		basePath:  os.Getenv("PATH"),
	}
}

// Events returns the channel the window drains. The channel is never closed.
func (c *Controller) Events() <-chan Event {
	return c.events
}

func (c *Controller) emit(ev Event) {
	c.events <- ev
}

// setState must be called without holding mu.
func (c *Controller) setState(s lifecycle.State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
	logging.Debug(subsystem, "state -> %s", s)
	c.emit(StateChanged{State: s})
}

func (c *Controller) fail(s lifecycle.State, err error) error {
	c.mu.Lock()
	c.lastErr = err.Error()
	c.mu.Unlock()
	logging.Error(subsystem, err, "%s", s)
	c.setState(s)
	return err
}

// Boot selects the startup project, or the first configured one when
// startupProject is empty or unknown.
func (c *Controller) Boot(ctx context.Context, startupProject string) error {
	c.setState(lifecycle.Booting)

	c.mu.Lock()
	c.startup = startupProject
	c.lastErr = ""
	names := c.cfg.ProjectNames()
	c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	if len(names) == 0 {
		logging.Warn(subsystem, "No projects configured")
		c.setState(lifecycle.NoApps)
		return nil
	}

	name := names[0]
	if slices.Contains(names, startupProject) {
		name = startupProject
	} else if startupProject != "" {
		logging.Warn(subsystem, "Startup project %q not found, using %q", startupProject, name)
	}
	return c.SelectProject(name)
}

// Reset boots again with the startup project from the last Boot.
func (c *Controller) Reset(ctx context.Context) error {
	c.mu.Lock()
	startup := c.startup
	c.commands = nil
	c.mu.Unlock()
	logging.Info(subsystem, "Resetting")
	c.emit(CommandsChanged{})
	return c.Boot(ctx, startup)
}

// ToReady leaves an error page without changing anything else.
func (c *Controller) ToReady() {
	c.mu.Lock()
	c.lastErr = ""
	c.mu.Unlock()
	c.setState(lifecycle.Ready)
}

// SelectProject makes name the current project and resets the application
// list. The window is expected to pick an application afterwards.
func (c *Controller) SelectProject(name string) error {
	project, ok := c.cfg.Project(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownProject, name)
	}

	c.setState(lifecycle.Loading)

	c.mu.Lock()
	before := c.project
	c.project = name
	c.projectVersion = ""
	if len(project.Versions) > 0 {
		c.projectVersion = project.Versions[0]
	}
	c.app = ""
	c.packages = nil
	c.env = nil
	c.lastErr = ""
	c.overrides = make(map[string]string)
	c.disabled = make(map[string]bool)
	c.mu.Unlock()

	if before == name {
		logging.Info(subsystem, "Refreshing %s", name)
	} else {
		logging.Info(subsystem, "Changing project to %s", name)
	}
	c.emit(ProjectChanged{Before: before, After: name})
	c.emit(PackagesChanged{})

	if len(project.Applications) == 0 {
		c.emit(AppsReset{})
		c.setState(lifecycle.NoApps)
		return nil
	}

	c.emit(AppsReset{})
	c.setState(lifecycle.Ready)
	return nil
}

// SetProjectVersion selects one of the current project's versions.
func (c *Controller) SetProjectVersion(version string) error {
	c.mu.Lock()
	project, ok := c.cfg.Project(c.project)
	c.mu.Unlock()
	if !ok {
		return ErrNoProject
	}
	if !slices.Contains(project.Versions, version) {
		return fmt.Errorf("project %s has no version %q", project.Name, version)
	}
	c.mu.Lock()
	c.projectVersion = version
	app := c.app
	c.mu.Unlock()
	if app == "" {
		return nil
	}
	return c.SelectApplication(app)
}

// SelectApplication resolves the requirements of the named application of
// the current project.
func (c *Controller) SelectApplication(name string) error {
	c.mu.Lock()
	project, ok := c.cfg.Project(c.project)
	c.mu.Unlock()
	if !ok {
		return ErrNoProject
	}

	var app config.ApplicationDefinition
	found := false
	for _, a := range project.Applications {
		if a.Name == name {
			app, found = a, true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %q", ErrUnknownApp, name)
	}

	c.setState(lifecycle.Loading)

	c.mu.Lock()
	c.app = name
	c.lastErr = ""
	pkgs, resolveErr := c.resolveLocked(app)
	c.packages = pkgs
	c.env = resolveEnvironment(c.basePath, c.project, c.projectVersion, pkgs, app.Env)
	c.mu.Unlock()

	c.emit(PackagesChanged{})

	switch {
	case errors.Is(resolveErr, ErrMalformedRequest):
		return c.fail(lifecycle.NotResolved, resolveErr)
	case errors.Is(resolveErr, ErrPackagesNotFound):
		return c.fail(lifecycle.PkgNotFound, resolveErr)
	}

	logging.Info(subsystem, "Resolved %s (%d packages)", app.DisplayName(), len(pkgs))
	c.setState(lifecycle.Ready)
	return nil
}

func (c *Controller) resolveLocked(app config.ApplicationDefinition) ([]Package, error) {
	var (
		pkgs    []Package
		missing []string
	)
	for _, req := range app.Requires {
		name, version, err := parseRequest(req)
		if err != nil {
			return pkgs, err
		}
		if c.disabled[name] {
			pkgs = append(pkgs, Package{Name: name, Request: req, Version: version, Disabled: true})
			continue
		}
		override := c.overrides[name]
		if override != "" {
			version = override
		}
		pkg := findPackage(c.cfg.PackagePaths, name, version)
		pkg.Request = req
		pkg.Override = override
		if !pkg.Found {
			missing = append(missing, req)
		}
		pkgs = append(pkgs, pkg)
	}
	if len(missing) > 0 {
		return pkgs, fmt.Errorf("%w: %s", ErrPackagesNotFound, strings.Join(missing, ", "))
	}
	return pkgs, nil
}

// SetPackageDisabled excludes or includes a package of the current
// application and resolves again.
func (c *Controller) SetPackageDisabled(name string, disabled bool) error {
	c.mu.Lock()
	if disabled {
		c.disabled[name] = true
	} else {
		delete(c.disabled, name)
	}
	app := c.app
	c.mu.Unlock()
	if app == "" {
		return nil
	}
	return c.SelectApplication(app)
}

// SetPackageOverride pins a package to version. An empty version removes
// the override.
func (c *Controller) SetPackageOverride(name, version string) error {
	c.mu.Lock()
	if version == "" {
		delete(c.overrides, name)
	} else {
		c.overrides[name] = version
	}
	app := c.app
	c.mu.Unlock()
	if app == "" {
		return nil
	}
	return c.SelectApplication(app)
}

// Launch starts the current application with the resolved environment.
// The process keeps running after Launch returns; its output is logged and
// its exit recorded on the Command.
func (c *Controller) Launch(ctx context.Context) error {
	c.mu.Lock()
	state := c.state
	appName := c.app
	project, _ := c.cfg.Project(c.project)
	env := slices.Clone(c.env)
	c.mu.Unlock()

	if state != lifecycle.Ready || appName == "" {
		return ErrNotReady
	}
	var app config.ApplicationDefinition
	for _, a := range project.Applications {
		if a.Name == appName {
			app = a
		}
	}
	if len(app.Command) == 0 {
		return c.fail(lifecycle.Errored, fmt.Errorf("application %s has no command", appName))
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	c.setState(lifecycle.Launching)

	cmd := exec.Command(app.Command[0], app.Command[1:]...)
	cmd.Env = mergeEnviron(os.Environ(), env)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return c.fail(lifecycle.Errored, fmt.Errorf("stdout pipe for %s: %w", appName, err))
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return c.fail(lifecycle.Errored, fmt.Errorf("stderr pipe for %s: %w", appName, err))
	}
	if err := cmd.Start(); err != nil {
		return c.fail(lifecycle.Errored, fmt.Errorf("failed to launch %s: %w", appName, err))
	}

	record := &Command{
		ID:      uuid.NewString(),
		App:     appName,
		Args:    slices.Clone(app.Command),
		PID:     cmd.Process.Pid,
		Status:  CommandRunning,
		Started: time.Now(),
	}
	c.mu.Lock()
	c.commands = append(c.commands, record)
	c.mu.Unlock()
	logging.Info(subsystem, "Launched %s (pid %d)", app.DisplayName(), record.PID)
	c.emit(CommandsChanged{})

	go c.supervise(cmd, record, stdout, stderr)

	c.setState(lifecycle.Ready)
	return nil
}

func (c *Controller) supervise(cmd *exec.Cmd, record *Command, stdout, stderr io.Reader) {
	source := record.App
	var g errgroup.Group
	g.Go(func() error { return streamLines(stdout, func(line string) { logging.Info(source, "%s", line) }) })
	g.Go(func() error { return streamLines(stderr, func(line string) { logging.Warn(source, "%s", line) }) })
	streamErr := g.Wait()

	waitErr := cmd.Wait()

	c.mu.Lock()
	record.Finished = time.Now()
	switch {
	case waitErr != nil:
		record.Status = CommandFailed
		record.Err = waitErr
	case streamErr != nil:
		record.Status = CommandExited
		record.Err = streamErr
	default:
		record.Status = CommandExited
	}
	c.mu.Unlock()

	if waitErr != nil {
		logging.Error(subsystem, waitErr, "%s exited", source)
	} else {
		logging.Info(subsystem, "%s exited", source)
	}
	c.emit(CommandsChanged{})
}

// maxLineBytes bounds one line of process output.
const maxLineBytes = 1 << 20

// streamLines emits r line by line. Once a line is too long the rest of r
// is read and discarded so the process never blocks on a full pipe.
func streamLines(r io.Reader, emit func(string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)
	for scanner.Scan() {
		emit(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		_, _ = io.Copy(io.Discard, r)
		return fmt.Errorf("reading output: %w", err)
	}
	return nil
}

// mergeEnviron overlays vars onto a KEY=VALUE environment.
func mergeEnviron(base []string, vars []EnvVar) []string {
	out := make([]string, 0, len(base)+len(vars))
	override := make(map[string]bool, len(vars))
	for _, v := range vars {
		override[v.Key] = true
	}
	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		if !override[key] {
			out = append(out, kv)
		}
	}
	for _, v := range vars {
		out = append(out, v.Key+"="+v.Value)
	}
	return out
}

// State returns the current lifecycle state.
func (c *Controller) State() lifecycle.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Projects lists every configured project.
func (c *Controller) Projects() []string {
	return c.cfg.ProjectNames()
}

// PackagePaths lists the directories searched for packages.
func (c *Controller) PackagePaths() []string {
	return slices.Clone(c.cfg.PackagePaths)
}

func (c *Controller) CurrentProject() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.project
}

// Versions lists the versions of the current project, newest first.
func (c *Controller) Versions() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, _ := c.cfg.Project(c.project)
	return slices.Clone(p.Versions)
}

func (c *Controller) CurrentVersion() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectVersion
}

// Apps lists the applications of the current project.
func (c *Controller) Apps() []config.ApplicationDefinition {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, _ := c.cfg.Project(c.project)
	return slices.Clone(p.Applications)
}

func (c *Controller) CurrentApp() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.app
}

// Packages returns every package request of the current application,
// including disabled and missing ones.
func (c *Controller) Packages() []Package {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.packages)
}

// Context returns only the packages that take part in the launch.
func (c *Controller) Context() []Package {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []Package
	for _, p := range c.packages {
		if p.Found && !p.Disabled {
			out = append(out, p)
		}
	}
	return out
}

// Environment returns the resolved variables, sorted by key.
func (c *Controller) Environment() []EnvVar {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.env)
}

// Commands returns a copy of every launched command, oldest first.
func (c *Controller) Commands() []Command {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Command, 0, len(c.commands))
	for _, cmd := range c.commands {
		out = append(out, *cmd)
	}
	return out
}

// CurrentError returns the message of the last failure, if any.
func (c *Controller) CurrentError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}
