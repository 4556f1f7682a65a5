// Package logger provides leveled console logging for envtray commands
// and the tray host.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info messages
//   - --debug: Shows info and debug messages
//
// Warnings and errors are always written to stderr.
//
// # Log Methods
//
//	Logger.Infof()           // Shown with --verbose or --debug
//	Logger.Debugf()          // Shown only with --debug
//	Logger.Warnf()           // Always shown
//	Logger.WarnfAlways()     // Always shown, even when output is quiet
//	Logger.Errorf()          // Always shown
//	Logger.ErrorfAndReturn() // Shown with --debug, returned as an error
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Loaded %d projects", count)
//
// The root command builds the logger in its PersistentPreRun; the tray host
// receives a copy at construction.
package logger
