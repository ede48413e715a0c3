package uritemplate

import (
	"cmp"
	"slices"
)

// MatchResult describes one successful match of a path against a template.
type MatchResult struct {
	// Matched is the part of the path consumed by the template.
	Matched string
	// Remaining is the unmatched tail, always starting with "/", or empty when
	// the template consumed the whole path.
	Remaining string
	// PathParameters maps variable names to the captured values.
	PathParameters map[string]string

	template *Template
}

// Template returns the template that produced the result.
func (r *MatchResult) Template() *Template {
	return r.template
}

// FullyMatched reports whether nothing of the path is left over.
func (r *MatchResult) FullyMatched() bool {
	return r.Remaining == ""
}

// Compare orders results by specificity. It returns a negative number when r
// is more specific than o, a positive number when it is less specific and 0
// when neither is preferred.
func (r *MatchResult) Compare(o *MatchResult) int {
	return Compare(r, o)
}

// Compare orders two match results; see MatchResult.Compare.
func Compare(a, b *MatchResult) int {
	if c := cmp.Compare(b.template.literalChars, a.template.literalChars); c != 0 {
		return c
	}
	if c := cmp.Compare(len(b.template.variables), len(a.template.variables)); c != 0 {
		return c
	}
	return cmp.Compare(b.template.explicitVariables, a.template.explicitVariables)
}

// Accept decides whether a match result is usable by a caller.
type Accept func(*MatchResult) bool

// AnyRemaining accepts every match.
func AnyRemaining(*MatchResult) bool { return true }

// FullMatch accepts only matches that consumed the whole path.
func FullMatch(r *MatchResult) bool { return r.FullyMatched() }

// Candidate pairs a handler with the result of matching its template.
type Candidate[T any] struct {
	Handler T
	Result  *MatchResult
}

// MatchAll matches path against the template of every handler and returns the
// accepted candidates, most specific first. Handlers of equal specificity keep
// their relative order.
func MatchAll[T any](path string, handlers []T, templateOf func(T) *Template, accept Accept) []Candidate[T] {
	var out []Candidate[T]
	for _, h := range handlers {
		tmpl := templateOf(h)
		if tmpl == nil {
			continue
		}
		result, ok := tmpl.Match(path)
		if !ok || !accept(result) {
			continue
		}
		out = append(out, Candidate[T]{Handler: h, Result: result})
	}
	slices.SortStableFunc(out, func(a, b Candidate[T]) int {
		return Compare(a.Result, b.Result)
	})
	return out
}

// Best returns the most specific accepted candidate.
func Best[T any](path string, handlers []T, templateOf func(T) *Template, accept Accept) (Candidate[T], bool) {
	all := MatchAll(path, handlers, templateOf, accept)
	if len(all) == 0 {
		return Candidate[T]{}, false
	}
	return all[0], true
}

// Tied returns the leading candidates that are exactly as specific as the
// first one.
func Tied[T any](sorted []Candidate[T]) []Candidate[T] {
	if len(sorted) == 0 {
		return nil
	}
	n := 1
	for n < len(sorted) && Compare(sorted[0].Result, sorted[n].Result) == 0 {
		n++
	}
	return sorted[:n]
}
