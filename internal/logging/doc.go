// Package logging constructs the slog loggers used across biaslab.
//
// Console output goes through tint for readable colored lines on stderr so
// command output on stdout stays clean for piping; JSON output uses the
// standard slog handler. Level strings from configuration are parsed leniently
// and unknown values fall back to info.
package logging
