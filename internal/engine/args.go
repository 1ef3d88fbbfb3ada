// SPDX-License-Identifier: MPL-2.0

package engine

// psTableFormat asks the engine for a machine-parseable container table:
// one header row, then one tab-separated line per container with exactly
// the four fields the classifier extracts.
const psTableFormat = "table {{.ID}}\t{{.Image}}\t{{.Names}}\t{{.Status}}"

// BuildArgs constructs the engine CLI argument vector for a request.
// It is a pure transformation: no validation, no execution.
//
// HostSystemInfoRequest returns nil — that operation is answered from the
// local execution environment and never reaches the engine CLI.
func BuildArgs(req Request) []string {
	switch r := req.(type) {
	case ListContainersRequest:
		return []string{"ps", "--format", psTableFormat}
	case EngineInfoRequest:
		return []string{"info"}
	case LaunchRequest:
		args := []string{"run", "-d", "--name", string(r.Name)}
		if r.PortMapping != "" {
			args = append(args, "-p", string(r.PortMapping))
		}
		args = append(args, string(r.Image))
		args = append(args, r.Command...)
		return args
	case StopRequest:
		return []string{"stop", string(r.Name)}
	case HostSystemInfoRequest:
		return nil
	default:
		return nil
	}
}

// removeArgs constructs arguments for the best-effort container removal the
// facade issues after a successful stop.
func removeArgs(name ContainerName) []string {
	return []string{"rm", string(name)}
}

// versionArgs constructs the cheap probe used by Available().
func versionArgs() []string {
	return []string{"version", "--format", "{{.Server.Version}}"}
}
