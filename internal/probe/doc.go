// Package probe checks whether optional Python modules are importable.
//
// A [Prober] answers one question, whether a named module can be resolved by
// the project's interpreter, without importing or running it. A missing
// module is a normal answer, never an error: probe failures of any kind
// (malformed names, a missing interpreter, an exception during lookup) are
// reported as absent.
//
// Candidates are declared once as an ordered list and probed in that order,
// so the resulting command is reproducible.
//
// Example usage:
//
//	p := probe.NewPythonProber("python", nil)
//	results := probe.ProbeAll(ctx, p, probe.DefaultCandidates())
//	winreg := probe.ProbePlatform(ctx, p, probe.DefaultCapability(), runtime.GOOS)
package probe
