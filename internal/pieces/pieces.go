// Package pieces is the static catalog of grammatical pieces: their
// labels, example pools, subject/object classification and the
// round-size tables fixing which pieces are in play and in which
// order the final sentence is assembled.
package pieces

// Code identifies a grammatical piece.
type Code string

const (
	Subject          Code = "S"
	SubjectAttribute Code = "Se"
	Verb             Code = "V"
	Object           Code = "C"
	ObjectAttribute  Code = "Ce"
	Circumstantial   Code = "Cc"
)

var labels = map[Code]string{
	Subject:          "sujet",
	SubjectAttribute: "attribut du sujet",
	Verb:             "verbe",
	Object:           "complément d'objet",
	ObjectAttribute:  "attribut du complément d'objet",
	Circumstantial:   "complément circonstantiel (temps, lieu, manière, cause, …)",
}

// Indexed pools are ordered féminin pluriel, féminin singulier,
// masculin pluriel, masculin singulier so that an example can be
// addressed by gender*2 + plurality. The circumstantial pool has no
// agreement and is drawn from uniformly.
var examples = map[Code][]string{
	Subject:          {"les sorcières", "la voisine", "les hommes", "le pape"},
	SubjectAttribute: {"chamboulées", "toute jaune", "terrifiés", "confiant"},
	Verb:             {"sont amusées par", "est émue par", "s'amusent avec", "parle avec"},
	Object:           {"les sorcières", "la voisine", "les hommes", "le pape"},
	ObjectAttribute:  {"chamboulées", "toute jaune", "terrifiés", "confiant"},
	Circumstantial:   {"près du lampadaire", "la veille de Noël", "sans bouger"},
}

// modes maps a round size to the ordered piece sequence for that
// size. The order is both the assignment order (zipped against the
// shuffled players) and the canonical sentence-assembly order.
var modes = map[int][]Code{
	3: {Subject, Verb, Object},
	4: {Subject, SubjectAttribute, Verb, Object},
	5: {Subject, SubjectAttribute, Verb, Object, ObjectAttribute},
	6: {Subject, SubjectAttribute, Verb, Object, ObjectAttribute, Circumstantial},
}

// Supported round sizes.
const (
	MinRoundSize = 3
	MaxRoundSize = 6
)

// ForSize returns the ordered piece sequence for a round of n
// players, or false if n is outside the supported range.
func ForSize(n int) ([]Code, bool) {
	codes, ok := modes[n]
	if !ok {
		return nil, false
	}
	out := make([]Code, len(codes))
	copy(out, codes)
	return out, true
}

// Agreement fixes the gender and number a piece must agree with.
type Agreement struct {
	Masculine bool
	Singular  bool
}

// String renders the agreement the way a prompt spells it out.
func (a Agreement) String() string {
	gender := "féminin"
	if a.Masculine {
		gender = "masculin"
	}
	number := "pluriel"
	if a.Singular {
		number = "singulier"
	}
	return gender + " " + number
}

// index addresses the 4-entry example pools.
func (a Agreement) index() int {
	i := 0
	if a.Masculine {
		i += 2
	}
	if a.Singular {
		i++
	}
	return i
}

// Label returns the human-readable name of the piece.
func (c Code) Label() string {
	return labels[c]
}

// IsSubjectSide reports whether the piece agrees with the sentence's
// subject (as opposed to its object).
func (c Code) IsSubjectSide() bool {
	return c == Subject || c == SubjectAttribute || c == Verb
}

// IsCircumstantial reports whether the piece carries no agreement at
// all.
func (c Code) IsCircumstantial() bool {
	return c == Circumstantial
}

// Example returns the example matching the agreement. Meaningless for
// circumstantial pieces; use ExampleAt with a random index instead.
func (c Code) Example(a Agreement) string {
	return examples[c][a.index()]
}

// ExampleAt returns the i-th example of the piece's pool.
func (c Code) ExampleAt(i int) string {
	return examples[c][i]
}

// ExampleCount returns the size of the piece's example pool.
func (c Code) ExampleCount() int {
	return len(examples[c])
}
