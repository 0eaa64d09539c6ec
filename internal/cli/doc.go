// Package cli wires the exercise packages to the lvlkata command line.
//
// Every subcommand parses its positional arguments, calls exactly one
// library function and hands the value to an OutputFormatter, which renders
// it as text, JSON or YAML. Argument problems surface as *ExitError with
// ExitCommandError so main can pick the process exit code.
package cli
