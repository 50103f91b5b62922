package internal

import (
	"fmt"
	"runtime"
	"strings"
)

const (

	// Program name, used for the CLI and log output.
	Name = "pyfreeze"

	// String to indicate an undefined variable
	defaultUndefined = "(undefined)"

	// String to indicate a local (non-pipeline) build
	defaultLocalBuild = "(local)"

	// Main branch name, omitted from version strings
	mainBranch = "main"
)

var (
	version   = "" // Version number (e.g., "1.2.3")
	stage     = "" // Development stage or git branch (e.g., "staging", "main")
	gitCommit = "" // Git commit hash (e.g., "a1b2c3d4")

	rawQuiet   = "false" // Whether to enable quiet mode
	rawDebug   = "false" // Whether to enable debug mode
	rawVerbose = "false" // Whether to print the probe table
)

// Build metadata injected through linker flags.
type BuildInfo struct {
	Version  string // Version without a "v" prefix, lower case.
	Stage    string // Branch or stage, lower case.
	Commit   string // Git commit hash.
	Platform string // Host platform as "<os>/<arch>".
	Local    bool   // Set when any linker variable is missing.
}

// Returns the build metadata.
//
// Missing values are reported as "(undefined)". A build is local when any of
// the version, stage, or commit variables is unset; pipeline builds set all
// three.
func Build() BuildInfo {
	v := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(version)), "v")
	s := strings.ToLower(strings.TrimSpace(stage))
	c := strings.TrimSpace(gitCommit)

	return BuildInfo{
		Version:  orUndefined(v),
		Stage:    orUndefined(s),
		Commit:   orUndefined(c),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		Local:    v == "" || s == "" || c == "",
	}
}

// Returns a detailed version string.
//
// If this is a local build, returns "(local)". Otherwise, returns a string
// formatted as "<version>+<stage> <git-commit> [<os>/<arch>]". Builds from
// the main branch omit the stage.
func VersionString() string {
	b := Build()
	if b.Local {
		return defaultLocalBuild
	}

	suffix := ""
	if b.Stage != mainBranch {
		suffix = "+" + b.Stage
	}

	return fmt.Sprintf("%s%s %s [%s]", b.Version, suffix, b.Commit, b.Platform)
}

func orUndefined(s string) string {
	if s == "" {
		return defaultUndefined
	}
	return s
}
