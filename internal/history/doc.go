// Package history persists a local record of submitted analyses in SQLite.
//
// The store keeps one row per successful submission: article id, title,
// outlet, the overall index and its band and verdict, and the submission
// time. It exists so past results remain inspectable offline; the remote
// service stays the source of truth for everything else. Recording is
// best-effort at the call sites -- a history failure never fails an analysis.
//
// Schema changes bump the version in schema.go; users clear the database to
// adopt the new schema.
package history
