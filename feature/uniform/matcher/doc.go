// Package matcher resolves a normalized descriptor to exactly one stock record.
//
// Candidates are filtered by canonical category, then narrowed by the first
// type tier with any hit (exact, then containment) and finally by the first
// size tier with any hit (exact, whitespace-insensitive, numeric token, then
// unsized). A tier that yields several records is ambiguous and reported as
// not found, listing what stock does hold.
package matcher
