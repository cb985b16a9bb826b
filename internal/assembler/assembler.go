// Package assembler merges the fragments of a finished round into one
// French sentence, applying contraction and elision rules between
// adjacent fragments.
package assembler

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cadavrebot/cadavre/internal/style"
)

// ligature is a French contraction rule: a fragment boundary reading
// "... left | right ..." collapses to the contracted form.
type ligature struct {
	left, right, contracted string
}

// At most one rule can match a given boundary.
var ligatures = []ligature{
	{"à", "le", "au"},
	{"à", "les", "aux"},
	{"de", "le", "du"},
	{"de", "les", "des"},
	{"de", "un", "d'un"},
	{"de", "une", "d'une"},
	{"de", "des", "des"},
}

// unit is one marked span of the sentence under construction. Merges
// (comma, ligature, elision) rewrite the last unit in place so that a
// marker pair never straddles a merge boundary.
type unit struct {
	text string
	sep  string
	st   style.Style
}

// Assemble merges fragments into a sentence without any markers.
func Assemble(parts []string) string {
	return AssembleStyled(parts, nil)
}

// AssembleStyled merges fragments into a sentence, wrapping fragment i
// with styles[i]. A nil or short styles slice leaves the remaining
// fragments unmarked. When fragments merge into a single unit, the
// unit keeps the first non-empty style among its members and is
// re-wrapped as a whole.
func AssembleStyled(parts []string, styles []style.Style) string {
	var units []unit

	styleAt := func(i int) style.Style {
		if i < len(styles) {
			return styles[i]
		}
		return style.None()
	}

	// plain is the accumulated sentence without markers; the suffix
	// checks below must look across unit boundaries.
	plain := func() string {
		var b strings.Builder
		for _, u := range units {
			b.WriteString(u.sep)
			b.WriteString(u.text)
		}
		return b.String()
	}

	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		st := styleAt(i)

		if len(units) == 0 {
			units = append(units, unit{text: capitalize(part), st: st})
			continue
		}

		last := &units[len(units)-1]
		acc := plain()
		switch {
		case strings.HasSuffix(last.text, ",") && strings.HasPrefix(part, ","):
			last.merge(last.text+" "+strings.TrimSpace(part[1:]), st)
		case mergeLigature(last, acc, part, st):
		case mergeElision(last, acc, part, st):
		case strings.HasPrefix(part, ","):
			units = append(units, unit{text: part, st: st})
		default:
			units = append(units, unit{text: part, sep: " ", st: st})
		}
	}

	var b strings.Builder
	for _, u := range units {
		b.WriteString(u.sep)
		b.WriteString(u.st.Apply(u.text))
	}
	b.WriteString(".")
	return b.String()
}

// merge replaces the unit's text, keeping its style unless it had
// none, in which case the incoming fragment's style takes over.
func (u *unit) merge(text string, st style.Style) {
	u.text = text
	if u.st.IsZero() {
		u.st = st
	}
}

// mergeLigature contracts boundaries like "… à | le …" into "… au …".
// Detection is case-insensitive; the contracted form is emitted as
// written in the table.
func mergeLigature(last *unit, acc, part string, st style.Style) bool {
	lowerAcc := strings.ToLower(acc)
	lowerPart := strings.ToLower(part)
	for _, l := range ligatures {
		if !strings.HasSuffix(lowerAcc, " "+l.left) {
			continue
		}
		if !strings.HasPrefix(lowerPart, l.right+" ") {
			continue
		}
		if len(last.text) < len(l.left) {
			return false
		}
		head := last.text[:len(last.text)-len(l.left)]
		last.merge(head+l.contracted+" "+part[len(l.right)+1:], st)
		return true
	}
	return false
}

// mergeElision elides "… que | il …" into "… qu'il …". The trailing
// "e" is dropped case-preservingly ("QUE" becomes "QU'"), and the
// fragment must start with an unaccented vowel.
func mergeElision(last *unit, acc, part string, st style.Style) bool {
	if !strings.HasSuffix(strings.ToLower(acc), " que") {
		return false
	}
	if len(last.text) < 3 || !strings.HasSuffix(strings.ToLower(last.text), "que") {
		return false
	}
	r, _ := utf8.DecodeRuneInString(part)
	if !strings.ContainsRune("aeiou", unicode.ToLower(r)) {
		return false
	}
	last.merge(last.text[:len(last.text)-1]+"'"+part, st)
	return true
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
