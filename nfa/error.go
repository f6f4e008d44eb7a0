// Package nfa implements Thompson NFA construction (spec §4.3) over the
// ast package's parsed Node tree, plus the Symbol/Matcher, Cursor, and
// Program types the match package's three execution strategies share.
package nfa

import "errors"

// ErrNoMatch indicates no match was found. It is not a failure of the
// engine; callers treat it the same as a nil Record.
var ErrNoMatch = errors.New("nfa: no match found")
