package assembler

import (
	"testing"

	"github.com/cadavrebot/cadavre/internal/style"
	"github.com/stretchr/testify/assert"
)

func TestAssemble(t *testing.T) {
	cases := []struct {
		parts []string
		want  string
	}{
		{[]string{"meuf à", "le voisin"}, "Meuf au voisin."},
		{[]string{"meuf à", "la voisine"}, "Meuf à la voisine."},
		{[]string{"meuf à", "les voisins"}, "Meuf aux voisins."},
		{[]string{"meuf à", "mes voisins"}, "Meuf à mes voisins."},
		{[]string{"meuf de", "le voisin"}, "Meuf du voisin."},
		{[]string{"meuf de", "la voisine"}, "Meuf de la voisine."},
		{[]string{"meuf de", "les voisins"}, "Meuf des voisins."},
		{[]string{"meuf de", "mon fils"}, "Meuf de mon fils."},
		{[]string{"meuf de", "un voisin"}, "Meuf d'un voisin."},
		{[]string{"meuf de", "une nana"}, "Meuf d'une nana."},
		{[]string{"meuf de", "des voisins"}, "Meuf des voisins."},
		{[]string{"meuf que", ", en bon prince, il nique"}, "Meuf que, en bon prince, il nique."},
		{[]string{"meuf que, moi,", ", en bon prince, je nique"}, "Meuf que, moi, en bon prince, je nique."},
		{[]string{"meuf que", "il nique"}, "Meuf qu'il nique."},
		{[]string{"meuf QUE", "il nique"}, "Meuf QU'il nique."},
		{[]string{"meuf que", "elle nique"}, "Meuf qu'elle nique."},
		{[]string{"meuf que", "on baise"}, "Meuf qu'on baise."},
		{[]string{"meuf que", "Aristote démonte"}, "Meuf qu'Aristote démonte."},
		{[]string{"meuf que", "Ursule encule"}, "Meuf qu'Ursule encule."},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Assemble(c.parts), "parts=%q", c.parts)
	}
}

func TestAssembleRealisticRound(t *testing.T) {
	parts := []string{
		"les sorcières",
		"chamboulées",
		"parlent avec",
		"le pape",
		"confiant",
		"près du lampadaire",
	}
	want := "Les sorcières chamboulées parlent avec le pape confiant près du lampadaire."
	assert.Equal(t, want, Assemble(parts))
}

func TestAssembleTrimsAndCapitalizes(t *testing.T) {
	assert.Equal(t, "Le pape danse.", Assemble([]string{"  le pape ", "  danse "}))
	assert.Equal(t, "À genoux.", Assemble([]string{"à genoux"}))
}

func TestAssembleSkipsEmptyFragments(t *testing.T) {
	assert.Equal(t, "Le pape danse.", Assemble([]string{"le pape", "   ", "danse"}))
}

func TestAssembleLigatureAcrossFragmentBoundary(t *testing.T) {
	// The left token may arrive as its own fragment.
	assert.Equal(t, "Meuf au voisin.", Assemble([]string{"meuf", "à", "le voisin"}))
}

func TestAssembleStyledWrapsEveryFragment(t *testing.T) {
	b := style.Bold()
	got := AssembleStyled([]string{"le pape", "danse"}, []style.Style{b, b})
	assert.Equal(t, "\x02Le pape\x02 \x02danse\x02.", got)
}

func TestAssembleStyledHighlightsOneFragment(t *testing.T) {
	styles := []style.Style{{}, style.Reverse(), {}}
	got := AssembleStyled([]string{"le pape", "danse avec", "la voisine"}, styles)
	assert.Equal(t, "Le pape \x16danse avec\x16 la voisine.", got)
}

func TestAssembleStyledNeverStraddlesMerge(t *testing.T) {
	b := style.Bold()

	// Ligature: the merged unit is wrapped as a single span keeping
	// the first member's style.
	got := AssembleStyled([]string{"meuf à", "le voisin"}, []style.Style{b, style.None()})
	assert.Equal(t, "\x02Meuf au voisin\x02.", got)

	// Elision: when only the second member is styled, the combined
	// unit takes that style.
	got = AssembleStyled([]string{"meuf que", "il nique"}, []style.Style{style.None(), b})
	assert.Equal(t, "\x02Meuf qu'il nique\x02.", got)

	// The terminating period is never wrapped.
	got = AssembleStyled([]string{"meuf"}, []style.Style{b})
	assert.Equal(t, "\x02Meuf\x02.", got)
}

func TestAssembleStyledEmptyStylesMatchesPlain(t *testing.T) {
	parts := []string{"meuf de", "un voisin", ", sans bouger"}
	assert.Equal(t, Assemble(parts), AssembleStyled(parts, make([]style.Style, len(parts))))
}
