// Package user holds the presentation helpers for user records: display
// names and avatar URLs. All functions are total; bad input degrades to a
// fallback value instead of an error.
package user
