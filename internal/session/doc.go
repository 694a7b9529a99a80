// Package session orchestrates the network calls behind one viewing session.
//
// The Orchestrator owns the "last analyzed" subject and the per-subject fetch
// cycle: an accepted submission (or an opened article) becomes the current
// subject and invalidates highlights, narratives, and the article list, which
// are then re-fetched concurrently. Every fetch carries the generation that
// was current when it was issued; a response arriving after the subject moved
// on compares generations and is discarded instead of applied, so a slow
// response for one article can never render over another article's view.
//
// Panels fail independently. A narrative fetch error leaves highlights and
// scores untouched, and a failed submission leaves the entire previous view
// in place. The clustering trigger fired before the narrative fetch is purely
// advisory; its failure is logged and swallowed.
package session
