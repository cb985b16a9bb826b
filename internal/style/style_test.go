package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	assert.Equal(t, "\x02gros\x02", Bold().Apply("gros"))
	assert.Equal(t, "\x1Ffin\x1F", Underline().Apply("fin"))
	assert.Equal(t, "\x16nega\x16", Reverse().Apply("nega"))
	assert.Equal(t, "plain", None().Apply("plain"))
}

func TestColors(t *testing.T) {
	assert.Equal(t, "\x0304rouge\x0399", Foreground(Red).Apply("rouge"))
	assert.Equal(t, "\x0300,04alerte\x0399,99", ColorPair(White, Red).Apply("alerte"))
}

func TestIsZero(t *testing.T) {
	assert.True(t, None().IsZero())
	assert.False(t, Bold().IsZero())
}

func TestStrip(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"\x02gros\x02 mot", "gros mot"},
		{"\x0304rouge\x0399 et \x0300,04alerte\x0399,99", "rouge et alerte"},
		{"rien du tout", "rien du tout"},
		{"\x03seul", "seul"},
		{"\x0F\x1Dfin\x1D", "fin"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Strip(c.in))
	}
}
