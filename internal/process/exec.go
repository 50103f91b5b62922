package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"slices"
	"strings"
)

// Exit code reported when a process could not be started or waited on.
const ExitUnknown = -1

// Runs an argument vector as a subprocess and returns its exit code.
type Executor interface {
	Execute(ctx context.Context, argv []string) (int, error)
}

// Runs subprocesses on the host through os/exec.
type Exec struct {
	Stdin  io.Reader // Standard input. Nil leaves it disconnected.
	Stdout io.Writer // Standard output. Nil discards it.
	Stderr io.Writer // Standard error. Nil discards it.
	Dir    string    // Working directory. Empty uses the current directory.
	Env    []string  // "key=value" overrides applied on top of os.Environ.
}

// Runs argv[0] with the remaining elements as arguments and waits for it.
//
// The process runs synchronously with no timeout; only cancellation of ctx
// stops it early. A non-zero exit code is returned with a nil error.
func (x *Exec) Execute(ctx context.Context, argv []string) (int, error) {
	if len(argv) == 0 {
		return ExitUnknown, ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = x.Stdin
	cmd.Stdout = orDiscard(x.Stdout)
	cmd.Stderr = orDiscard(x.Stderr)
	cmd.Dir = x.Dir
	if len(x.Env) > 0 {
		cmd.Env = mergeEnv(os.Environ(), x.Env)
	}

	slog.Debug("exec", "program", argv[0], "args", len(argv)-1, "dir", x.Dir)

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return exitErr.ExitCode(), nil
	}

	return ExitUnknown, fmt.Errorf("%w: %s: %w", ErrProcess, argv[0], err)
}

// Returns w, or io.Discard when w is nil.
func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

// Merges override env vars on top of a base env slice.
//
// Entries without "=" are skipped. The result is sorted by key so the child
// environment does not depend on map iteration order.
func mergeEnv(base, overrides []string) []string {
	merged := make(map[string]string, len(base)+len(overrides))
	for _, entry := range base {
		if k, v, ok := strings.Cut(entry, "="); ok {
			merged[k] = v
		}
	}
	for _, entry := range overrides {
		if k, v, ok := strings.Cut(entry, "="); ok {
			merged[k] = v
		}
	}

	result := make([]string, 0, len(merged))
	for k, v := range merged {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}
