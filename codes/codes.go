// Package codes classifies tokens as merchandise-code fragments and
// reassembles them into canonical dot-joined codes such as TX.860.01.0004.
//
// PDF renderers frequently split a single code across several
// whitespace-delimited tokens ("TX", ".", "860", ".", "01"); classification
// and reassembly recovers the intended identifier. Every accepted code must
// start with one of an enumerated set of category prefixes followed by at
// least one numeric segment.
package codes

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultPrefixes is the merchandise-category prefix set observed in real
// manifests. Callers needing more categories pass their own set; the
// classifier never mutates it.
var DefaultPrefixes = []string{
	"DC", "TX", "IMPO",
	"TU", "FK", "PT", "RTN", "HRS", "DG", "TN", "PE", "TEC",
}

// Kind is the classification of a single token with respect to code
// assembly.
type Kind int

const (
	// None marks a token that cannot be part of a code.
	None Kind = iota
	// Prefix marks a token matching a known category prefix.
	Prefix
	// Separator marks a bare separator token (".", "-", "·").
	Separator
	// Segment marks a numeric segment token (digits, optional trailing ".").
	Segment
)

var (
	segmentRE   = regexp.MustCompile(`^\d+\.?$`)
	nonWordRE   = regexp.MustCompile(`[^\w.]`)
	dotRunRE    = regexp.MustCompile(`\.+`)
	spaceRunRE  = regexp.MustCompile(`\s+`)
	alphaGateRE = regexp.MustCompile(`^[A-Za-z]{2,6}$`)
)

// separators are the token texts rewritten to "." during assembly.
var separators = map[string]bool{".": true, "-": true, "·": true}

// Classifier decides whether tokens belong to a merchandise code and
// assembles accepted runs into canonical codes. The prefix set is fixed at
// construction; Classifier is safe for concurrent use.
type Classifier struct {
	prefixes map[string]bool
	prefixRE *regexp.Regexp // matches any prefix, longest first
	startRE  *regexp.Regexp // anchored "<prefix>." check on assembled codes
	shapeRE  *regexp.Regexp // whole-cell "<prefix>[space/./digit]+" shape
}

// NewClassifier builds a classifier for the given prefix set. Prefixes are
// matched case-insensitively. An empty set falls back to DefaultPrefixes.
func NewClassifier(prefixes []string) *Classifier {
	if len(prefixes) == 0 {
		prefixes = DefaultPrefixes
	}
	set := make(map[string]bool, len(prefixes))
	quoted := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p == "" || set[p] {
			continue
		}
		set[p] = true
		quoted = append(quoted, regexp.QuoteMeta(p))
	}
	// Longest alternative first so IMPO is not consumed as a shorter match.
	sort.Slice(quoted, func(i, j int) bool {
		if len(quoted[i]) != len(quoted[j]) {
			return len(quoted[i]) > len(quoted[j])
		}
		return quoted[i] < quoted[j]
	})
	alt := "(?:" + strings.Join(quoted, "|") + ")"
	return &Classifier{
		prefixes: set,
		prefixRE: regexp.MustCompile(`^` + alt + `$`),
		startRE:  regexp.MustCompile(`^` + alt + `\.`),
		shapeRE:  regexp.MustCompile(`^` + alt + `[\s.\d]+$`),
	}
}

// PrefixPattern returns the alternation source for the prefix set, for
// embedding in larger patterns (the line-fallback strategy builds its
// composite expression from it).
func (c *Classifier) PrefixPattern() string {
	re := c.prefixRE.String()
	return strings.TrimSuffix(strings.TrimPrefix(re, "^"), "$")
}

// Classify reports the code-assembly role of a single token.
func (c *Classifier) Classify(tok string) Kind {
	t := strings.TrimSpace(tok)
	if t == "" {
		return None
	}
	if separators[t] {
		return Separator
	}
	if segmentRE.MatchString(t) {
		return Segment
	}
	u := strings.ToUpper(t)
	if c.prefixRE.MatchString(u) || c.prefixRE.MatchString(strings.TrimSuffix(u, ".")) {
		return Prefix
	}
	return None
}

// Eligible reports whether the token can participate in code assembly.
func (c *Classifier) Eligible(tok string) bool {
	return c.Classify(tok) != None
}

// Assemble joins a run of code-eligible tokens into a canonical code.
// Separator tokens are rewritten to ".", dot runs collapse to a single
// ".", and leading/trailing dots are stripped. The empty string is
// returned when the result does not start with "<prefix>." — a code with
// no numeric segments is invalid.
func (c *Classifier) Assemble(tokens []string) string {
	var b strings.Builder
	for _, tok := range tokens {
		t := strings.TrimSpace(tok)
		if separators[t] {
			b.WriteString(".")
			continue
		}
		b.WriteString(t)
	}
	code := nonWordRE.ReplaceAllString(b.String(), "")
	code = dotRunRE.ReplaceAllString(code, ".")
	code = strings.Trim(code, ".")
	if !c.startRE.MatchString(strings.ToUpper(code)) {
		return ""
	}
	return code
}

// Consume takes tokens from the front of toks while they remain
// code-eligible and returns the assembled code plus the number of tokens
// used. A failed prefix check yields ("", 0) so the caller can reject the
// row wholesale.
func (c *Classifier) Consume(toks []string) (code string, used int) {
	for used < len(toks) && c.Eligible(toks[used]) {
		used++
	}
	if used == 0 {
		return "", 0
	}
	code = c.Assemble(toks[:used])
	if code == "" {
		return "", 0
	}
	return code, used
}

// CellCode normalizes a whole table cell shaped like "TX 860 01 0004" into
// a canonical code. Internal whitespace becomes ".", duplicate dots
// collapse, and surrounding dots are stripped. Returns "" when the cell is
// not prefix-shaped.
func (c *Classifier) CellCode(cell string) string {
	t := strings.TrimSpace(cell)
	if t == "" || !c.shapeRE.MatchString(strings.ToUpper(t)) {
		return ""
	}
	code := spaceRunRE.ReplaceAllString(t, ".")
	code = dotRunRE.ReplaceAllString(code, ".")
	code = strings.Trim(code, ".")
	if !c.startRE.MatchString(strings.ToUpper(code)) {
		return ""
	}
	return code
}

// PrefixShaped reports whether cell looks like a code cell (prefix followed
// by spaces, dots and digits). Used to keep code cells out of description
// candidates.
func (c *Classifier) PrefixShaped(cell string) bool {
	t := strings.TrimSpace(cell)
	return t != "" && c.shapeRE.MatchString(strings.ToUpper(t))
}

// HasAlphabeticToken reports whether any token is a bare 2-6 letter word.
// Item rows must contain at least one such token, expected to be the code
// prefix; rows of nothing but numbers are noise.
func HasAlphabeticToken(toks []string) bool {
	for _, t := range toks {
		if alphaGateRE.MatchString(t) {
			return true
		}
	}
	return false
}
