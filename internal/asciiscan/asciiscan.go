// Package asciiscan answers one question fast: is this rune slice pure
// ASCII? The root package's findRecord asks it once per search to decide
// whether the byte-offset literal prefilter bypass is safe, mirroring the teacher's
// EnableASCIIOptimization runtime dispatch in meta/config.go.
//
// Grounded on the teacher's simd package (cpu.X86 feature-gated
// dispatch between a wide and a narrow scan loop), adapted to a
// pure-Go, assembly-free version: the CPU feature flags here pick
// between an OR-accumulate scan over groups of runes and a branchy
// rune-by-rune one, rather than between SSE4.2/AVX2 assembly kernels.
package asciiscan

import "golang.org/x/sys/cpu"

// hasWideRegisters reports whether this CPU has wide-enough SIMD
// registers that the teacher's assembly kernels would choose a vector
// path; since this package has no assembly, the signal is only used to
// pick an internal word size, not to call into an extended instruction
// set.
var hasWideRegisters = cpu.X86.HasAVX2 || cpu.X86.HasSSE42

const maxASCII = 0x7F

// IsASCII reports whether every rune in s is in the ASCII range.
func IsASCII(s []rune) bool {
	if hasWideRegisters && len(s) >= wordRunes {
		return isASCIIWide(s)
	}
	return isASCIIBranchy(s)
}

func isASCIIBranchy(s []rune) bool {
	for _, r := range s {
		if r > maxASCII {
			return false
		}
	}
	return true
}

// wordRunes is the batch size isASCIIWide processes per iteration,
// chosen so the OR-then-test trick below amortizes loop overhead.
const wordRunes = 8

// isASCIIWide ORs groups of runes together before testing the high
// bits once per group, instead of branching on every single rune — the
// pure-Go analogue of the teacher's vector compare-and-mask approach.
func isASCIIWide(s []rune) bool {
	i := 0
	for ; i+wordRunes <= len(s); i += wordRunes {
		var acc rune
		for j := 0; j < wordRunes; j++ {
			acc |= s[i+j]
		}
		if acc > maxASCII {
			return false
		}
	}
	return isASCIIBranchy(s[i:])
}
