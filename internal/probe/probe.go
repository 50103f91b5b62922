package probe

import (
	"context"
	"log/slog"

	"github.com/cruciblehq/pyfreeze/internal/process"
)

// Script passed to the interpreter. It resolves the module spec without
// importing the module itself and exits 0 only when a spec is found.
const findSpecScript = `import importlib.util, sys
try:
    found = importlib.util.find_spec(sys.argv[1]) is not None
except Exception:
    found = False
sys.exit(0 if found else 1)
`

// Answers whether a named module can be resolved in the current environment.
type Prober interface {
	IsAvailable(ctx context.Context, name string) bool
}

// Probes modules by asking a Python interpreter for their import spec.
type PythonProber struct {
	python string           // Interpreter program name or path.
	exec   process.Executor // Runs the interpreter with output discarded.
}

// Creates a [PythonProber] for the given interpreter.
//
// A nil executor uses a silent [process.Exec].
func NewPythonProber(python string, exec process.Executor) *PythonProber {
	if exec == nil {
		exec = &process.Exec{}
	}
	return &PythonProber{python: python, exec: exec}
}

// Returns the executor used to run the interpreter.
func (p *PythonProber) Executor() process.Executor {
	return p.exec
}

// Returns true if the interpreter can resolve the named module.
//
// Malformed names are rejected without spawning the interpreter. Any failure
// to run the interpreter is reported as absent.
func (p *PythonProber) IsAvailable(ctx context.Context, name string) bool {
	if !ValidName(name) {
		slog.Debug("probe skipped, malformed module name", "name", name)
		return false
	}

	code, err := p.exec.Execute(ctx, []string{p.python, "-c", findSpecScript, name})
	if err != nil {
		slog.Debug("probe failed", "name", name, "error", err)
		return false
	}

	return code == 0
}

// Probes every candidate in order and returns one result per candidate.
//
// Candidates with malformed names are absent and never reach the prober.
func ProbeAll(ctx context.Context, p Prober, candidates []Candidate) []Result {
	results := make([]Result, 0, len(candidates))
	for _, c := range candidates {
		present := ValidName(c.Name) && p.IsAvailable(ctx, c.Name)
		slog.Debug("probe", "name", c.Name, "present", present)
		results = append(results, Result{Candidate: c, Present: present})
	}
	return results
}

// Probes a platform capability.
//
// The capability is present only when goos matches the platform that
// provides it and the module resolves. On any other platform the prober is
// not consulted.
func ProbePlatform(ctx context.Context, p Prober, c Capability, goos string) Result {
	result := Result{Candidate: Candidate{Name: c.Name, Note: c.OS + " only"}}
	if c.Name == "" || c.OS != goos {
		return result
	}
	result.Present = p.IsAvailable(ctx, c.Name)
	slog.Debug("platform probe", "name", c.Name, "os", goos, "present", result.Present)
	return result
}

// Returns the number of present results.
func CountPresent(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Present {
			n++
		}
	}
	return n
}
