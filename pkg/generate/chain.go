package generate

import "strings"

// Replacement is one literal substring substitution.
type Replacement struct {
	Find    string
	Replace string
}

// Chain is an ordered list of replacements applied as a sequential fold:
// each replacement operates on the output of the previous one, so a
// placeholder that is a substring of another token's replacement value must
// be ordered before it. Replacement is literal and case-sensitive, all
// occurrences per pair; a placeholder absent from the content is a no-op.
type Chain []Replacement

// Apply runs the chain over content.
func (c Chain) Apply(content string) string {
	for _, r := range c {
		content = strings.ReplaceAll(content, r.Find, r.Replace)
	}
	return content
}

// tokenized expands a chain so each bare token is also matched in its
// explicit $(token) form, keeping both placeholder families working across
// the same file set. The $(token) pair runs first so the bare pass cannot
// clip it.
func tokenized(pairs ...Replacement) Chain {
	chain := make(Chain, 0, 2*len(pairs))
	for _, p := range pairs {
		chain = append(chain, Replacement{Find: "$(" + p.Find + ")", Replace: p.Replace})
		chain = append(chain, p)
	}
	return chain
}
