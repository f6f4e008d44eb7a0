// Package regex is a from-scratch regular expression engine: lexer and
// parser (package ast) build an AST, Thompson construction (package nfa)
// compiles it to an NFA, subset construction plus Hopcroft-style
// minimization (package dfa) optionally determinizes it, and package
// match runs whichever of three execution strategies fits — a DFA fast
// path, a PikeVM-style parallel simulation with capture groups, or
// bounded DFS backtracking.
//
// Basic usage:
//
//	re, err := regex.Compile(`(\w+)@(\w+)\.(\w+)`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.MatchString("user@example.com") {
//	    fmt.Println(re.FindStringSubmatch("user@example.com"))
//	}
package regex

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/erastus-murungi/reg/ast"
	"github.com/erastus-murungi/reg/internal/asciiscan"
	"github.com/erastus-murungi/reg/match"
	"github.com/erastus-murungi/reg/nfa"
	"github.com/erastus-murungi/reg/prefilter"
)

// Config controls compilation and matching behavior. Modeled on the
// teacher's meta.Config/DefaultConfig/Validate: range-checked fields, a
// *ConfigError on violation.
type Config struct {
	// Flags are the pattern's compile-time options (IgnoreCase,
	// Multiline, DotAll).
	Flags ast.Flag

	// MaxNFAStates rejects patterns whose compiled Program would exceed
	// this many states, guarding against pathological input. 0 means
	// unbounded.
	MaxNFAStates int

	// StepBudget caps NFA configurations explored per search (spec §5).
	// 0 means unbounded.
	StepBudget int

	// ASCIIFastPath permits Find/MatchString to bypass the NFA/DFA
	// entirely via the literal-alternation prefilter (package prefilter)
	// when the pattern qualifies. The prefilter's automaton works in
	// byte offsets, so this is only sound when the haystack is pure
	// ASCII (byte offset == rune offset); internal/asciiscan checks that
	// cheaply on every call. Disable to always run the general engine.
	ASCIIFastPath bool
}

// DefaultConfig returns the configuration Compile uses.
func DefaultConfig() Config {
	return Config{
		Flags:         ast.NoFlag,
		MaxNFAStates:  1 << 20,
		StepBudget:    0,
		ASCIIFastPath: true,
	}
}

// Validate reports a *ConfigError if any field holds an invalid value.
func (c Config) Validate() error {
	if c.MaxNFAStates < 0 {
		return &ConfigError{Field: "MaxNFAStates", Message: "must be >= 0"}
	}
	if c.StepBudget < 0 {
		return &ConfigError{Field: "StepBudget", Message: "must be >= 0"}
	}
	return nil
}

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("regex: invalid config field %s: %s", e.Field, e.Message)
}

// Stats is a point-in-time snapshot of a Regexp's usage counters,
// incremented with sync/atomic as searches run. This is the teacher's
// observability idiom (coregex never logs; it exposes atomic Stats
// counters instead), carried here in place of a logging library.
type Stats struct {
	Compiles           uint64
	Searches           uint64
	DFAHits            uint64
	PikeVMHits         uint64
	PrefilterHits      uint64
	StepBudgetExceeded uint64
}

// Regexp is a compiled regular expression. The zero value is not usable;
// construct one with Compile, MustCompile, or CompileWithConfig. A
// *Regexp is safe for concurrent use by multiple goroutines.
type Regexp struct {
	pattern    string
	groupCount int
	flags      ast.Flag
	prog       *nfa.Program
	prefilter  *prefilter.Prefilter
	config     Config
	pool       sync.Pool

	compiles      uint64
	searches      uint64
	dfaHits       uint64
	pikeVMHits    uint64
	prefilterHits uint64
	budgetExceed  uint64
}

// Compile parses and compiles pattern with DefaultConfig.
func Compile(pattern string) (*Regexp, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics if pattern is invalid. Intended
// for patterns known to be valid at compile time, e.g. package-level
// vars.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic("regex: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// CompileWithConfig parses and compiles pattern under the given Config.
func CompileWithConfig(pattern string, config Config) (*Regexp, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	root, groupCount, err := ast.Parse(pattern, config.Flags)
	if err != nil {
		return nil, err
	}

	prog, err := nfa.Compile(root, groupCount, config.Flags)
	if err != nil {
		return nil, err
	}
	if config.MaxNFAStates > 0 && prog.NumStates() > config.MaxNFAStates {
		return nil, &ConfigError{Field: "MaxNFAStates", Message: fmt.Sprintf("pattern compiles to %d states, exceeding the limit", prog.NumStates())}
	}

	re := &Regexp{pattern: pattern, groupCount: groupCount, flags: config.Flags, prog: prog, config: config}
	if groupCount == 0 && !config.Flags.Has(ast.IgnoreCase) {
		if pf, ok := prefilter.Build(root); ok {
			re.prefilter = pf
		}
	}
	re.pool.New = func() any {
		e := match.NewEngine(re.prog)
		e.SetStepBudget(re.config.StepBudget)
		return e
	}
	atomic.AddUint64(&re.compiles, 1)
	return re, nil
}

// AcquireEngine takes a *match.Engine from the pool, creating one if
// necessary. Pairs with ReleaseEngine; callers doing high-frequency
// matching can hold one across calls to avoid reallocating the
// PikeVM's thread queues and the backtracker's visited-bit vector on
// every search, mirroring the teacher's pattern of reusing those
// buffers across calls.
func (re *Regexp) AcquireEngine() *match.Engine {
	return re.pool.Get().(*match.Engine)
}

// ReleaseEngine returns e to the pool for reuse.
func (re *Regexp) ReleaseEngine(e *match.Engine) {
	re.pool.Put(e)
}

// String returns the source pattern re was compiled from.
func (re *Regexp) String() string { return re.pattern }

// NumSubexp returns the number of capturing groups in the pattern
// (group 0, the whole match, is not counted).
func (re *Regexp) NumSubexp() int { return re.groupCount }

// Stats returns a snapshot of this Regexp's usage counters.
func (re *Regexp) Stats() Stats {
	return Stats{
		Compiles:           atomic.LoadUint64(&re.compiles),
		Searches:           atomic.LoadUint64(&re.searches),
		DFAHits:            atomic.LoadUint64(&re.dfaHits),
		PikeVMHits:         atomic.LoadUint64(&re.pikeVMHits),
		PrefilterHits:      atomic.LoadUint64(&re.prefilterHits),
		StepBudgetExceeded: atomic.LoadUint64(&re.budgetExceed),
	}
}

// decode splits s into its runes and records, for each rune index, the
// byte offset it starts at (with one trailing entry for len(s)), so a
// rune-index Record can be translated back to the byte offsets Go
// string-slicing expects.
func decode(s string) ([]rune, []int) {
	runes := make([]rune, 0, len(s))
	offsets := make([]int, 0, len(s)+1)
	for i := 0; i < len(s); {
		offsets = append(offsets, i)
		r, size := utf8.DecodeRuneInString(s[i:])
		runes = append(runes, r)
		i += size
	}
	offsets = append(offsets, len(s))
	return runes, offsets
}

// findRecord runs the plain (no-capture) search path, preferring the
// literal-alternation prefilter bypass when one was built and the
// haystack is pure ASCII (so byte and rune offsets coincide).
func (re *Regexp) findRecord(s string) (*match.Record, []int) {
	runes, offsets := decode(s)
	atomic.AddUint64(&re.searches, 1)

	if re.prefilter != nil && re.config.ASCIIFastPath && asciiscan.IsASCII(runes) {
		atomic.AddUint64(&re.prefilterHits, 1)
		start, end, ok := re.prefilter.Find([]byte(s), 0)
		if !ok {
			return nil, offsets
		}
		return &match.Record{Start: start, End: end, Groups: []match.GroupSpan{{Start: start, End: end, Matched: true}}}, offsets
	}

	e := re.AcquireEngine()
	defer re.ReleaseEngine(e)
	ctx := &nfa.Context{Text: runes, Flags: re.flags}
	rec := e.Find(ctx, 0)
	re.recordEngineStats(e)
	return rec, offsets
}

func (re *Regexp) recordEngineStats(e *match.Engine) {
	if e.HasDFA() {
		atomic.AddUint64(&re.dfaHits, 1)
	} else {
		atomic.AddUint64(&re.pikeVMHits, 1)
	}
	if e.BudgetExceeded() {
		atomic.AddUint64(&re.budgetExceed, 1)
	}
}

// Match reports whether b contains a match of re.
func (re *Regexp) Match(b []byte) bool { return re.MatchString(string(b)) }

// MatchString reports whether s contains a match of re.
func (re *Regexp) MatchString(s string) bool {
	rec, _ := re.findRecord(s)
	return rec != nil
}

// Find returns the leftmost match in b, or nil if there is none.
func (re *Regexp) Find(b []byte) []byte {
	s := string(b)
	idx := re.FindStringIndex(s)
	if idx == nil {
		return nil
	}
	return []byte(s[idx[0]:idx[1]])
}

// FindString returns the text of the leftmost match in s, or "" if
// there is none.
func (re *Regexp) FindString(s string) string {
	rec, offsets := re.findRecord(s)
	if rec == nil {
		return ""
	}
	return s[offsets[rec.Start]:offsets[rec.End]]
}

// FindStringIndex returns the byte-offset span [lo, hi) of the leftmost
// match in s, or nil if there is none.
func (re *Regexp) FindStringIndex(s string) []int {
	rec, offsets := re.findRecord(s)
	if rec == nil {
		return nil
	}
	return []int{offsets[rec.Start], offsets[rec.End]}
}

// FindAllStringIndex returns the byte-offset spans of every
// non-overlapping match in s, in order. n bounds the number of matches
// returned; n < 0 means unbounded.
func (re *Regexp) FindAllStringIndex(s string, n int) [][]int {
	if n == 0 {
		return nil
	}
	runes, offsets := decode(s)
	e := re.AcquireEngine()
	defer re.ReleaseEngine(e)
	ctx := &nfa.Context{Text: runes, Flags: re.flags}

	var result [][]int
	for pos := 0; pos <= len(runes); {
		atomic.AddUint64(&re.searches, 1)
		rec := e.Find(ctx, pos)
		re.recordEngineStats(e)
		if rec == nil {
			break
		}
		result = append(result, []int{offsets[rec.Start], offsets[rec.End]})
		if rec.End > pos {
			pos = rec.End
		} else {
			pos++
		}
		if n > 0 && len(result) >= n {
			break
		}
	}
	return result
}

// FindAllString returns the text of every non-overlapping match in s,
// in order. n bounds the number of matches returned; n < 0 means
// unbounded.
func (re *Regexp) FindAllString(s string, n int) []string {
	idx := re.FindAllStringIndex(s, n)
	if idx == nil {
		return nil
	}
	out := make([]string, len(idx))
	for i, p := range idx {
		out[i] = s[p[0]:p[1]]
	}
	return out
}

// findSubmatchRecord always runs the PikeVM, since captures have no
// representation on the DFA fast path.
func (re *Regexp) findSubmatchRecord(s string, from int) (*match.Record, []rune, []int) {
	runes, offsets := decode(s)
	atomic.AddUint64(&re.searches, 1)
	e := re.AcquireEngine()
	defer re.ReleaseEngine(e)
	ctx := &nfa.Context{Text: runes, Flags: re.flags}
	rec := e.FindSubmatch(ctx, from)
	atomic.AddUint64(&re.pikeVMHits, 1)
	if e.BudgetExceeded() {
		atomic.AddUint64(&re.budgetExceed, 1)
	}
	return rec, runes, offsets
}

// FindStringSubmatch returns the leftmost match and its capture groups:
// result[0] is the whole match, result[i] the ith group, "" for a group
// that did not participate. Returns nil if there is no match.
func (re *Regexp) FindStringSubmatch(s string) []string {
	rec, _, offsets := re.findSubmatchRecord(s, 0)
	if rec == nil {
		return nil
	}
	out := make([]string, len(rec.Groups))
	for i, g := range rec.Groups {
		if g.Matched {
			out[i] = s[offsets[g.Start]:offsets[g.End]]
		}
	}
	return out
}

// FindStringSubmatchIndex is FindStringSubmatch, reporting byte-offset
// pairs instead of substrings. An unmatched group reports [-1, -1].
func (re *Regexp) FindStringSubmatchIndex(s string) []int {
	rec, _, offsets := re.findSubmatchRecord(s, 0)
	if rec == nil {
		return nil
	}
	out := make([]int, len(rec.Groups)*2)
	for i, g := range rec.Groups {
		if g.Matched {
			out[2*i] = offsets[g.Start]
			out[2*i+1] = offsets[g.End]
		} else {
			out[2*i] = -1
			out[2*i+1] = -1
		}
	}
	return out
}

// FindAllStringSubmatch is FindAllString extended with capture groups,
// one []string per match in the same layout as FindStringSubmatch.
func (re *Regexp) FindAllStringSubmatch(s string, n int) [][]string {
	if n == 0 {
		return nil
	}
	var result [][]string
	for pos := 0; pos <= len([]rune(s)); {
		rec, _, offsets := re.findSubmatchRecord(s, pos)
		if rec == nil {
			break
		}
		groups := make([]string, len(rec.Groups))
		for i, g := range rec.Groups {
			if g.Matched {
				groups[i] = s[offsets[g.Start]:offsets[g.End]]
			}
		}
		result = append(result, groups)
		if rec.End > pos {
			pos = rec.End
		} else {
			pos++
		}
		if n > 0 && len(result) >= n {
			break
		}
	}
	return result
}

// Match pairs a capture-aware Record with the source string it was
// found in, letting replacement callbacks read group text by index.
type Match struct {
	text    string
	offsets []int
	rec     *match.Record
}

// Span returns the byte-offset [start, end) of the whole match.
func (m *Match) Span() (int, int) { return m.offsets[m.rec.Start], m.offsets[m.rec.End] }

// Group returns the text of capture group k (0 is the whole match), or
// "" if k is out of range or the group did not participate.
func (m *Match) Group(k int) string {
	if k < 0 || k >= len(m.rec.Groups) || !m.rec.Groups[k].Matched {
		return ""
	}
	g := m.rec.Groups[k]
	return m.text[m.offsets[g.Start]:m.offsets[g.End]]
}

// GroupIndex returns the byte-offset [start, end) of group k, or
// [-1, -1] if it did not participate.
func (m *Match) GroupIndex(k int) [2]int {
	if k < 0 || k >= len(m.rec.Groups) || !m.rec.Groups[k].Matched {
		return [2]int{-1, -1}
	}
	g := m.rec.Groups[k]
	return [2]int{m.offsets[g.Start], m.offsets[g.End]}
}

// Groups returns the text of every capture group, Groups()[0] being the
// whole match.
func (m *Match) Groups() []string {
	out := make([]string, len(m.rec.Groups))
	for i := range out {
		out[i] = m.Group(i)
	}
	return out
}

// ReplaceAllString returns a copy of s with every match replaced by
// repl, where repl may reference capture groups with $1, $2, ... ($$
// for a literal dollar sign).
func (re *Regexp) ReplaceAllString(s, repl string) string {
	out, _ := re.replaceAll(s, -1, func(m *Match) string { return expand(repl, m) })
	return out
}

// ReplaceAllStringFunc returns a copy of s with every match replaced by
// the result of calling fn on the matched text.
func (re *Regexp) ReplaceAllStringFunc(s string, fn func(string) string) string {
	out, _ := re.replaceAll(s, -1, func(m *Match) string { return fn(m.Group(0)) })
	return out
}

// ReplaceAllStringN is ReplaceAllString limited to at most n
// replacements (n < 0 means unbounded), also returning the number of
// replacements made.
func (re *Regexp) ReplaceAllStringN(s, repl string, n int) (string, int) {
	return re.replaceAll(s, n, func(m *Match) string { return expand(repl, m) })
}

func (re *Regexp) replaceAll(s string, n int, replFn func(*Match) string) (string, int) {
	if n == 0 {
		return s, 0
	}
	_, offsets := decode(s)

	var b strings.Builder
	count, last := 0, 0
	for pos := 0; pos <= len(offsets)-1; {
		rec, _, curOffsets := re.findSubmatchRecord(s, pos)
		if rec == nil {
			break
		}
		b.WriteString(s[last:curOffsets[rec.Start]])
		b.WriteString(replFn(&Match{text: s, offsets: curOffsets, rec: rec}))
		last = curOffsets[rec.End]
		count++
		if rec.End > pos {
			pos = rec.End
		} else {
			pos++
		}
		if n > 0 && count >= n {
			break
		}
	}
	b.WriteString(s[last:])
	return b.String(), count
}

// expand substitutes $1, $2, ... in repl with m's capture groups ($$
// for a literal dollar sign), the same minimal syntax stdlib regexp's
// Expand uses.
func expand(repl string, m *Match) string {
	var b strings.Builder
	for i := 0; i < len(repl); i++ {
		c := repl[i]
		if c != '$' || i+1 >= len(repl) {
			b.WriteByte(c)
			continue
		}
		if repl[i+1] == '$' {
			b.WriteByte('$')
			i++
			continue
		}
		j := i + 1
		for j < len(repl) && repl[j] >= '0' && repl[j] <= '9' {
			j++
		}
		if j == i+1 {
			b.WriteByte(c)
			continue
		}
		idx, _ := strconv.Atoi(repl[i+1 : j])
		b.WriteString(m.Group(idx))
		i = j - 1
	}
	return b.String()
}
