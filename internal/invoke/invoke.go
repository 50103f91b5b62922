package invoke

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kballard/go-shellquote"

	"github.com/cruciblehq/pyfreeze/internal/command"
	"github.com/cruciblehq/pyfreeze/internal/process"
)

// Message reported when the packager exits with a non-zero status.
const FailureMessage = "packaging failed, see the packager output above"

// The result of one packager invocation.
type Outcome struct {
	Succeeded bool   // Whether the packager exited with status 0.
	Message   string // Human-readable summary.
	ExitCode  int    // Packager exit status, or [process.ExitUnknown] if it did not run.
}

// Renders a command as a single shell-quoted line.
func Render(cmd command.Command) string {
	return shellquote.Join(cmd...)
}

// Executes cmd once and maps its exit status to an [Outcome].
//
// The rendered command is logged before execution. artifact names the
// expected output location and is used in the success message. A process
// that cannot be started is reported as a failed outcome, not as an error.
func Invoke(ctx context.Context, x process.Executor, cmd command.Command, artifact string) Outcome {
	slog.Info("running packager", "command", Render(cmd))

	code, err := x.Execute(ctx, cmd)
	if err != nil {
		slog.Error("packager did not run", "error", err)
		return Outcome{Message: FailureMessage, ExitCode: code}
	}

	if code != 0 {
		slog.Debug("packager exited", "code", code)
		return Outcome{Message: FailureMessage, ExitCode: code}
	}

	return Outcome{
		Succeeded: true,
		Message:   fmt.Sprintf("packaging succeeded: %s", artifact),
		ExitCode:  0,
	}
}
