package ast

// Flag is a bitfield of compile-time pattern options.
//
// Flags affect lexing/parsing not at all and matching semantics in a few
// targeted ways: IGNORECASE folds literal and class comparisons, MULTILINE
// changes what '^' and '$' anchor against, and DOTALL lets '.' consume
// a newline.
type Flag uint8

const (
	// NoFlag is the default: case-sensitive, '^'/'$' anchor only at the
	// very start/end of the text, '.' does not match '\n'.
	NoFlag Flag = 0

	// IgnoreCase folds ASCII letter case when comparing literals and
	// character class membership.
	IgnoreCase Flag = 1 << iota

	// Multiline makes '^' match at the start of text and after every
	// '\n', and '$' match at the end of text and before every '\n'.
	Multiline

	// DotAll makes '.' match '\n' in addition to every other character.
	DotAll
)

// Has reports whether all bits in other are set in f.
func (f Flag) Has(other Flag) bool {
	return f&other == other
}
