package dot

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/stateforge/stateforge/automaton"
)

// ExternalToolFailedError is returned by Run when the "dot" binary exits
// non-zero or cannot be found.
type ExternalToolFailedError struct {
	Tool   string
	Stderr string
	Err    error
}

func (e *ExternalToolFailedError) Error() string {
	return fmt.Sprintf("dot: external tool %q failed: %v (stderr: %s)", e.Tool, e.Err, e.Stderr)
}

func (e *ExternalToolFailedError) Unwrap() error { return e.Err }

// Run renders a's digraph and pipes it through the "dot" binary found on
// PATH (or at dotPath, if non-empty) to produce rasterized output in the
// requested format (e.g. "svg", "png"). This is the module's one
// dependency on an external process — everything else is pure Go string
// assembly — so it is kept to a single boundary function, which takes a
// context to bound the child process.
func Run(ctx context.Context, a *automaton.Automaton, cfg Config, format, dotPath string) ([]byte, error) {
	var src bytes.Buffer
	if err := Render(&src, a, cfg); err != nil {
		return nil, err
	}
	tool := dotPath
	if tool == "" {
		tool = "dot"
	}
	tracer().Debugf("dot: invoking %s -T%s", tool, format)
	cmd := exec.CommandContext(ctx, tool, "-T"+format)
	cmd.Stdin = &src
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, &ExternalToolFailedError{Tool: tool, Stderr: stderr.String(), Err: err}
	}
	return stdout.Bytes(), nil
}
