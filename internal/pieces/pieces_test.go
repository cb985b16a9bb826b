package pieces

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForSize(t *testing.T) {
	expected := map[int][]Code{
		3: {Subject, Verb, Object},
		4: {Subject, SubjectAttribute, Verb, Object},
		5: {Subject, SubjectAttribute, Verb, Object, ObjectAttribute},
		6: {Subject, SubjectAttribute, Verb, Object, ObjectAttribute, Circumstantial},
	}
	for n := MinRoundSize; n <= MaxRoundSize; n++ {
		codes, ok := ForSize(n)
		require.True(t, ok, "size %d", n)
		assert.Len(t, codes, n)
		assert.Equal(t, expected[n], codes)
	}

	_, ok := ForSize(2)
	assert.False(t, ok)
	_, ok = ForSize(7)
	assert.False(t, ok)
}

func TestForSizeReturnsACopy(t *testing.T) {
	codes, ok := ForSize(3)
	require.True(t, ok)
	codes[0] = Circumstantial

	again, _ := ForSize(3)
	assert.Equal(t, Subject, again[0])
}

func TestSubjectSide(t *testing.T) {
	assert.True(t, Subject.IsSubjectSide())
	assert.True(t, SubjectAttribute.IsSubjectSide())
	assert.True(t, Verb.IsSubjectSide())
	assert.False(t, Object.IsSubjectSide())
	assert.False(t, ObjectAttribute.IsSubjectSide())
	assert.False(t, Circumstantial.IsSubjectSide())
}

func TestAgreementString(t *testing.T) {
	assert.Equal(t, "masculin singulier", Agreement{Masculine: true, Singular: true}.String())
	assert.Equal(t, "masculin pluriel", Agreement{Masculine: true}.String())
	assert.Equal(t, "féminin singulier", Agreement{Singular: true}.String())
	assert.Equal(t, "féminin pluriel", Agreement{}.String())
}

func TestExampleIndexing(t *testing.T) {
	// Pools are addressed by gender*2 + plurality.
	assert.Equal(t, "les sorcières", Subject.Example(Agreement{}))
	assert.Equal(t, "la voisine", Subject.Example(Agreement{Singular: true}))
	assert.Equal(t, "les hommes", Subject.Example(Agreement{Masculine: true}))
	assert.Equal(t, "le pape", Subject.Example(Agreement{Masculine: true, Singular: true}))

	assert.Equal(t, "est émue par", Verb.Example(Agreement{Singular: true}))
}

func TestCircumstantialPool(t *testing.T) {
	require.True(t, Circumstantial.IsCircumstantial())
	assert.Equal(t, 3, Circumstantial.ExampleCount())
	assert.Equal(t, "la veille de Noël", Circumstantial.ExampleAt(1))
}

func TestEveryAgreedPoolHasFourEntries(t *testing.T) {
	for _, c := range []Code{Subject, SubjectAttribute, Verb, Object, ObjectAttribute} {
		assert.Equal(t, 4, c.ExampleCount(), "piece %s", c)
	}
}
