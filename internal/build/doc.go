// Package build runs one packaging pass over a Python project workspace.
//
// A run is strictly sequential. The packager's Python module is checked
// first, before anything on disk is touched. The artifacts of a previous
// run are then removed, each optional module is probed in declaration order
// followed by the platform capability, and the results are folded into a
// single packager command. The command is executed once and its exit status
// decides the outcome.
//
// Prerequisite, cleanup, and invocation failures abort the run. Probe
// failures never do: an optional module that cannot be evaluated is simply
// left out of the command. Nothing is rolled back after a failed invocation.
//
// Example usage:
//
//	p, err := project.Load(".", "")
//	if err != nil {
//	    return err
//	}
//
//	result, err := build.Run(ctx, build.Options{
//	    Project: p,
//	    Root:    ".",
//	})
//	if err != nil {
//	    return err
//	}
package build
