// Package disclosure keeps many independently-collapsible items in a globally
// consistent expand/collapse state.
//
// Each list of items shares a Group holding a flag and a generation counter.
// Toggling the group flips the flag and starts a new generation; items re-sync
// to the flag exactly when they observe the generation change and may then
// diverge through their own toggles. The counter is what distinguishes "the
// user just expanded everything" from "the user closed one item afterward" --
// a plain shared boolean cannot represent both at once.
//
// A group and its items belong to a single rendering flow; the package does no
// locking of its own.
package disclosure
