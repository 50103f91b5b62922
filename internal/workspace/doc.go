// Package workspace resets a project directory before a packaging run.
//
// Artifact paths are workspace-relative locations that hold output from a
// previous run (the build and dist directories and the generated .spec
// file). [Clean] removes every one that exists and ignores the rest, so it
// is safe to run on a clean workspace. Paths that would resolve outside the
// workspace root are refused before anything is removed.
package workspace
