// package repositories provides the persistence layer for the word cache.
//
// The cache maps a normalized word to the ordered list of candidate tracks
// previously found to start with that word. Entries are append-only per
// word: once a word is populated it is authoritative for the lifetime of
// the store and is never re-queried or expired.
package repositories
