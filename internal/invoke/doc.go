// Package invoke runs the assembled packager command once and reports the
// outcome.
//
// The command is rendered as a shell-quoted line and logged before it runs,
// so every run leaves an auditable record of exactly what was executed. The
// packager inherits the caller's output streams; its output is not parsed.
// Only the exit status decides the [Outcome]. There are no retries.
package invoke
