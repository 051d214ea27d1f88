// Package debug provides optional structured debug logging.
//
// Logging is silent by default. When the TUI_DEBUG environment variable is
// set to a file path, FromEnv routes debug records to that file; SetLogger
// installs any other slog logger.
package debug
