// Package highlights filters extraction artifacts out of raw highlight
// records before display.
//
// Upstream generation occasionally leaks instruction text or empty spans into
// the highlight stream; Sanitize drops those defensively so panels only render
// quoted article phrases. The package also owns the rule deciding when a
// highlight's character range is reliable enough to show.
package highlights
