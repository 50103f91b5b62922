// Package process runs host subprocesses.
//
// An [Executor] takes an argument vector (program first) and returns the
// process exit code. A non-zero exit code is not an error; only failures to
// start or wait for the process are. Callers decide what an exit code means.
//
// [Exec] is the os/exec backed implementation. Its streams default to
// io.Discard, so probes run silently, while the packager is run with the
// caller's standard output and error attached.
//
// Example usage:
//
//	x := &process.Exec{Stdout: os.Stdout, Stderr: os.Stderr, Dir: "."}
//	code, err := x.Execute(ctx, []string{"pyinstaller", "--version"})
//	if err != nil {
//	    return err
//	}
package process
