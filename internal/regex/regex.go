// Package regex implements the byte-oriented regular expression engine
// (C10 in the design): a tokenizer, a shunting-yard infix-to-postfix pass,
// a Thompson NFA builder, and a tagged ε-closure simulator that gives
// greedy and lazy quantifiers their expected capture semantics without a
// backtracking search.
//
// The surface syntax is deliberately small: literals, `\x` escapes,
// concatenation, `|` alternation, `?`/`*`/`+` with their lazy `?`-suffixed
// forms, and `(...)` capture groups numbered left to right from 0. There
// are no anchors, character classes, or a dot metacharacter, and matching
// is whole-input rather than leftmost-search.
package regex

import "github.com/pkg/errors"

// Regex is a compiled pattern, ready to match repeatedly.
type Regex struct {
	prog *program
}

// Compile builds a Regex from pattern. The only error this package
// reports is a malformed pattern: an unmatched parenthesis, a trailing
// unescaped backslash, or a quantifier/operator with no operand.
func Compile(pattern string) (*Regex, error) {
	tokens, err := lex(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "compile regex %q", pattern)
	}
	tokens = insertConcat(tokens)

	postfix, err := toPostfix(tokens, pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "compile regex %q", pattern)
	}

	prog, err := compileProgram(postfix, pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "compile regex %q", pattern)
	}

	return &Regex{prog: prog}, nil
}

// MustCompile is Compile, panicking on a malformed pattern. Intended for
// patterns fixed at compile time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// Match reports whether input matches the pattern in its entirety.
func (r *Regex) Match(input []byte) bool {
	matched, _ := r.prog.run(input)
	return matched
}

// Capture is one capture group's matched span. An unset endpoint reports
// as -1.
type Capture struct {
	Start int
	End   int
}

// FindSubmatch matches input against the pattern and, on success, returns
// one Capture per group in left-to-right opening-paren order. It returns
// (nil, false) if input does not match.
func (r *Regex) FindSubmatch(input []byte) ([]Capture, bool) {
	matched, tags := r.prog.run(input)
	if !matched {
		return nil, false
	}
	out := make([]Capture, len(tags))
	for i, tg := range tags {
		out[i] = Capture{Start: tg.start, End: tg.end}
	}
	return out, true
}
