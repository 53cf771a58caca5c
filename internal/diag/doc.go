// Package diag defines the diagnostic model for conditions that a caller may
// choose to skip rather than abort on.
//
// The scanner reports over-long tokens, malformed numbers and invalid UTF-8
// through a Reporter; the driver decides whether such a condition is fatal.
// Diagnostic carries a Severity, a numeric Code with a stable string ID
// (SCN1001, IO4002, ...), a message, the byte span and the 1-based position.
//
// Package diag does not format anything; rendering lives in internal/diagfmt.
package diag
