package build

import (
	"context"
	_ "crypto/sha256"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	goruntime "runtime"

	"github.com/opencontainers/go-digest"

	"github.com/cruciblehq/pyfreeze/internal/command"
	"github.com/cruciblehq/pyfreeze/internal/invoke"
	"github.com/cruciblehq/pyfreeze/internal/probe"
	"github.com/cruciblehq/pyfreeze/internal/process"
	"github.com/cruciblehq/pyfreeze/internal/project"
	"github.com/cruciblehq/pyfreeze/internal/workspace"
)

// Controls a packaging run.
type Options struct {
	Project    *project.Project       // Application to package.
	Root       string                 // Workspace root. Empty uses the current directory.
	GOOS       string                 // Host platform. Empty uses runtime.GOOS.
	Prober     probe.Prober           // Module prober. Nil probes with the project interpreter.
	Executor   process.Executor       // Runs the packager. Nil runs it with inherited output.
	FileExists func(path string) bool // Icon existence check. Nil uses the filesystem.
}

// Returned after a run reaches the packager, whether or not it succeeded.
type Result struct {
	Removed  []string       // Artifact paths removed before the run.
	Probes   []probe.Result // One result per candidate, in declaration order.
	Platform probe.Result   // Platform capability result.
	Command  command.Command
	Outcome  invoke.Outcome
	Artifact string        // Expected artifact path, relative to the root.
	Digest   digest.Digest // Artifact digest. Empty when the artifact was not found.
}

// Runs the packaging pipeline.
//
// Returns an error wrapping [ErrPrerequisiteMissing] or [ErrCleanup] with a
// nil result when the run stops before the packager. When the packager exits
// non-zero, the result is returned together with an error wrapping
// [ErrInvocation] that includes the rendered command.
func Run(ctx context.Context, opts Options) (*Result, error) {
	opts = withDefaults(opts)
	p := opts.Project

	slog.Info("packaging project",
		"name", p.Name,
		"entry", p.Entry,
		"root", opts.Root,
		"candidates", len(p.Candidates),
	)

	if !opts.Prober.IsAvailable(ctx, p.Packager.Module) {
		return nil, fmt.Errorf("%w: %s", ErrPrerequisiteMissing, p.InstallHint())
	}

	removed, err := workspace.Clean(opts.Root, p.ArtifactPaths())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCleanup, err)
	}
	if len(removed) > 0 {
		slog.Info("cleaned workspace", "removed", removed)
	}

	res := &Result{
		Removed:  removed,
		Probes:   probe.ProbeAll(ctx, opts.Prober, p.Candidates),
		Platform: probe.ProbePlatform(ctx, opts.Prober, p.Platform, opts.GOOS),
		Artifact: p.Artifact(opts.GOOS),
	}

	slog.Info("probed optional modules",
		"present", probe.CountPresent(res.Probes),
		"total", len(res.Probes),
		"platform", res.Platform.Present,
	)

	res.Command = newAssembler(opts).Assemble(res.Probes, res.Platform)
	res.Outcome = invoke.Invoke(ctx, opts.Executor, res.Command, res.Artifact)

	if !res.Outcome.Succeeded {
		return res, fmt.Errorf("%w: %s (exit code %d): %s",
			ErrInvocation, res.Outcome.Message, res.Outcome.ExitCode, invoke.Render(res.Command))
	}

	res.Digest = artifactDigest(filepath.Join(opts.Root, res.Artifact))
	return res, nil
}

// Fills unset options from the project.
func withDefaults(opts Options) Options {
	if opts.Root == "" {
		opts.Root = "."
	}
	if opts.GOOS == "" {
		opts.GOOS = goruntime.GOOS
	}
	if opts.Prober == nil {
		opts.Prober = probe.NewPythonProber(opts.Project.Python, hostExec(opts))
	}
	if opts.Executor == nil {
		x := hostExec(opts)
		x.Stdin = os.Stdin
		x.Stdout = os.Stdout
		x.Stderr = os.Stderr
		opts.Executor = x
	}
	return opts
}

// Returns a silent executor rooted at the workspace with the project
// environment applied. Probes and the packager see the same environment.
func hostExec(opts Options) *process.Exec {
	return &process.Exec{
		Dir: opts.Root,
		Env: opts.Project.Environ(),
	}
}

// Creates the command assembler for the project.
func newAssembler(opts Options) *command.Assembler {
	p := opts.Project
	return &command.Assembler{
		Program:       p.Packager.Program,
		Modes:         p.Packager.Modes,
		Name:          p.Name,
		Dist:          p.Dist,
		Entry:         p.Entry,
		Icons:         p.Icons,
		Root:          opts.Root,
		DataSeparator: dataSeparator(opts.GOOS),
		FileExists:    opts.FileExists,
	}
}

// Returns the --add-data separator PyInstaller expects on goos.
func dataSeparator(goos string) string {
	if goos == "windows" {
		return ";"
	}
	return ":"
}

// Returns the sha256 digest of the file at path, or "" if it cannot be read.
//
// A missing artifact after a successful run is logged, not treated as a
// failure; the packager owns its output layout.
func artifactDigest(path string) digest.Digest {
	f, err := os.Open(path)
	if err != nil {
		slog.Warn("artifact not found", "path", path, "error", err)
		return ""
	}
	defer f.Close()

	d, err := digest.FromReader(f)
	if err != nil {
		slog.Warn("failed to digest artifact", "path", path, "error", err)
		return ""
	}

	slog.Debug("artifact digest", "path", path, "digest", d)
	return d
}
