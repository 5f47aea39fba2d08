// Package logger provides leveled logging for pigment commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is formatted with colored prefixes from fatih/color.
//
// # Verbosity Levels
//
//   - --verbose: Shows info messages
//   - --debug: Shows all messages including debug details
//
// Warnings and errors are always shown.
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Loaded settings version %d", v)
//
// Commands create a logger in their PersistentPreRun and pass it to the
// store and workflows.
package logger
