// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"dockbridge/internal/engine"
)

type Id int

const (
	EngineNotInstalledId Id = iota + 1
	EngineUnreachableId
	NameConflictId
	ImageNotFoundId
	TimeoutId
	MalformedOutputId
	UnknownFailureId
	ConfigLoadFailedId
	InvalidRequestId
)

type MarkdownMsg string

type Issue struct {
	id    Id          // ID used to look up the issue
	name  string      // short stable name accepted by `dockbridge explain`
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) Name() string {
	return i.name
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	engineNotInstalledIssue = &Issue{
		id:   EngineNotInstalledId,
		name: "engine-not-installed",
		mdMsg: `
# Container engine not found!

dockbridge could not find a container engine binary on this system.

## Supported container engines:
- **Docker**
- **Podman**

## Things you can try:
- Install Docker: https://docs.docker.com/get-docker/
- Install Podman:
  - Linux: ` + "`sudo apt install podman`" + ` or ` + "`sudo dnf install podman`" + `
  - macOS: ` + "`brew install podman`" + `
- If the binary is installed in a non-standard location, add it to PATH
- Select the engine explicitly in your config:
~~~toml
container_engine = "podman"  # or "docker"
~~~`,
	}

	engineUnreachableIssue = &Issue{
		id:   EngineUnreachableId,
		name: "engine-unreachable",
		mdMsg: `
# Container engine unreachable!

The engine binary exists but its daemon did not answer.

## Things you can try:
- Start the daemon:
~~~
$ sudo systemctl start docker
~~~
- For rootless Podman no daemon is needed; check the socket:
~~~
$ systemctl --user status podman.socket
~~~
- Verify your user is in the engine's group (e.g. ` + "`docker`" + `)
- Run the engine CLI directly to see the raw error:
~~~
$ docker info
~~~`,
	}

	nameConflictIssue = &Issue{
		id:   NameConflictId,
		name: "name-conflict",
		mdMsg: `
# Container name already in use!

A container with the requested name already exists (running or stopped).

## Things you can try:
- Pick a different name for the new container
- Stop and remove the existing container:
~~~
$ dockbridge stop <name>
~~~
- List what is currently running:
~~~
$ dockbridge ps
~~~`,
	}

	imageNotFoundIssue = &Issue{
		id:   ImageNotFoundId,
		name: "image-not-found",
		mdMsg: `
# Image not found!

The requested image could not be resolved locally or pulled from a registry.

## Things you can try:
- Check the image name and tag for typos
- Pull the image manually to see the registry's error:
~~~
$ docker pull <image>
~~~
- For private registries, log in first:
~~~
$ docker login <registry>
~~~`,
	}

	timeoutIssue = &Issue{
		id:   TimeoutId,
		name: "timeout",
		mdMsg: `
# Engine call timed out!

The engine subprocess exceeded its time budget and was terminated.

## Common causes:
- A slow or stalled image pull on first launch
- A wedged daemon
- Severe resource pressure on the host

## Things you can try:
- Pre-pull large images before launching:
~~~
$ docker pull <image>
~~~
- Raise the budget in your config:
~~~toml
command_timeout_seconds = 120
~~~
- Restart the engine daemon`,
	}

	malformedOutputIssue = &Issue{
		id:   MalformedOutputId,
		name: "malformed-output",
		mdMsg: `
# Malformed engine output!

The engine exited cleanly but produced output dockbridge could not accept
(for example, an empty diagnostic report).

## Things you can try:
- Run the engine CLI directly and compare:
~~~
$ docker info
~~~
- Check the engine version — very old CLIs format output differently:
~~~
$ docker version
~~~`,
	}

	unknownFailureIssue = &Issue{
		id:   UnknownFailureId,
		name: "unknown-failure",
		mdMsg: `
# Unrecognized engine failure!

The engine exited with an error dockbridge could not classify. The raw
stderr text is preserved in the error message.

## Things you can try:
- Read the raw engine message in the error output
- Re-run with verbose mode for the full error chain:
~~~
$ dockbridge --verbose <command>
~~~
- Run the equivalent engine CLI command directly`,
	}

	configLoadFailedIssue = &Issue{
		id:   ConfigLoadFailedId,
		name: "config-load-failed",
		mdMsg: `
# Failed to load configuration!

Could not load the dockbridge configuration file.

## Configuration file locations:
- Linux: ~/.config/dockbridge/config.toml
- macOS: ~/Library/Application Support/dockbridge/config.toml
- Windows: %APPDATA%\dockbridge\config.toml

## Things you can try:
- Create a default configuration:
~~~
$ dockbridge config init
~~~
- Check the TOML syntax
- Remove the config file to fall back to defaults

## Example configuration:
~~~toml
container_engine = "auto"
command_timeout_seconds = 30

[ui]
verbose = false
~~~`,
	}

	invalidRequestIssue = &Issue{
		id:   InvalidRequestId,
		name: "invalid-request",
		mdMsg: `
# Invalid request!

The operation was rejected before reaching the engine because a mandatory
field was missing or malformed.

## Rules:
- Launch requires a non-empty **image** and **name**
- Port mappings must look like ` + "`hostPort:containerPort[/protocol]`" + `
  with ports in 1-65535

## Example:
~~~
$ dockbridge launch nginx:alpine --name web -p 8080:80
~~~`,
	}

	issues = map[Id]*Issue{
		engineNotInstalledIssue.Id(): engineNotInstalledIssue,
		engineUnreachableIssue.Id():  engineUnreachableIssue,
		nameConflictIssue.Id():       nameConflictIssue,
		imageNotFoundIssue.Id():      imageNotFoundIssue,
		timeoutIssue.Id():            timeoutIssue,
		malformedOutputIssue.Id():    malformedOutputIssue,
		unknownFailureIssue.Id():     unknownFailureIssue,
		configLoadFailedIssue.Id():   configLoadFailedIssue,
		invalidRequestIssue.Id():     invalidRequestIssue,
	}
)

// Values returns every catalog entry, sorted by id for stable listings.
func Values() []*Issue {
	all := maps.Values(issues)
	slices.SortFunc(all, func(a, b *Issue) int { return int(a.Id()) - int(b.Id()) })
	return all
}

func Get(id Id) *Issue {
	return issues[id]
}

// GetByName returns the catalog entry with the given short name, or nil.
func GetByName(name string) *Issue {
	for _, i := range issues {
		if i.name == name {
			return i
		}
	}
	return nil
}

// ForError maps a dockbridge error onto its catalog id. Unrecognized errors
// map to UnknownFailureId so every failure has an explainable entry.
func ForError(err error) Id {
	switch {
	case errors.Is(err, engine.ErrEngineNotInstalled), errors.Is(err, engine.ErrNoEngineAvailable):
		return EngineNotInstalledId
	case errors.Is(err, engine.ErrEngineUnreachable):
		return EngineUnreachableId
	case errors.Is(err, engine.ErrNameConflict):
		return NameConflictId
	case errors.Is(err, engine.ErrImageNotFound):
		return ImageNotFoundId
	case errors.Is(err, engine.ErrTimeout):
		return TimeoutId
	case errors.Is(err, engine.ErrMalformedOutput):
		return MalformedOutputId
	case errors.Is(err, engine.ErrInvalidLaunchRequest),
		errors.Is(err, engine.ErrInvalidContainerName),
		errors.Is(err, engine.ErrInvalidImageRef),
		errors.Is(err, engine.ErrInvalidPortMapping):
		return InvalidRequestId
	default:
		return UnknownFailureId
	}
}
