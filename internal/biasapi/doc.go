// Package biasapi provides the HTTP client for the remote bias analysis
// service and the wire types it exchanges.
//
// It exposes article listing and retrieval, analysis submission, highlight and
// narrative listing, the best-effort clustering trigger, and CSV export URL
// construction. Non-2xx responses are decoded into APIError values that prefer
// the service's JSON detail field and tolerate malformed error bodies. Options
// allow tests to supply custom HTTP clients without modifying production code.
package biasapi
