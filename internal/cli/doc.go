// Parses flags, configures logging, and runs a packaging pass.
//
// pyfreeze takes no arguments and has no subcommands. A bare invocation
// loads the project in the current directory and packages it. The remaining
// flags only affect logging and where configuration is read from:
//
//	-q, --quiet          Suppress informational output.
//	-v, --verbose        Print the module probe table.
//	-d, --debug          Enable debug output.
//	-c, --config=PATH    Read the project from PATH.
//	-C, --dir=PATH       Use PATH as the workspace root.
//	    --version        Show version information.
//
// Flags override build-time defaults set via linker flags. After parsing, the
// global logger is reconfigured to reflect the final level before the run
// starts.
package cli
