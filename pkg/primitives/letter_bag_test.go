package primitives

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLetterBag(t *testing.T) {
	phrase := NewLetterBag("poultry outwits ants")
	assert.Equal(t, 18, phrase.Len())
	assert.Equal(t, "ailnooprssttttuuwy", phrase.String())

	word := NewLetterBag("printout")
	assert.True(t, phrase.Contains(word))
	assert.False(t, word.Contains(phrase))

	left := phrase.Minus(word)
	assert.Equal(t, 10, left.Len())
	assert.Equal(t, "alossttuwy", left.String())
	assert.Equal(t, 18, phrase.Len(), "Minus must not change the receiver")

	assert.True(t, left.Minus(NewLetterBag("stout")).Equal(NewLetterBag("yawls")))
	assert.True(t, left.Minus(left).Empty())
}

func TestLetterBagMinusClampsAtZero(t *testing.T) {
	b := NewLetterBag("abc").Minus(NewLetterBag("aazz"))
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, "bc", b.String())
}

func TestLetterBagPassthrough(t *testing.T) {
	b := NewLetterBag("it's")
	assert.Equal(t, 4, b.Len())
	assert.True(t, b.Contains(NewLetterBag("'s")))
	assert.False(t, b.Contains(NewLetterBag("s-")))

	left := b.Minus(NewLetterBag("'"))
	assert.True(t, left.Equal(NewLetterBag("its")))
	assert.Equal(t, 4, b.Len())
	assert.True(t, b.Equal(NewLetterBag("s'ti")))
}

func TestLetterBagCharSet(t *testing.T) {
	set := NewLetterBag("hello").CharSet()
	assert.Equal(t, 4, set.Count())
	assert.Equal(t, "letters ['e', 'h', 'l', 'o'] (4/26)", set.String())
}
