package metadata

import (
	"strings"
	"testing"

	assert_ "github.com/stretchr/testify/assert"
)

const stockDescription = "Enjoy the videos and music you love, upload original content, " +
	"and share it all with friends, family, and the world on YouTube."

func TestCanonicalize(t *testing.T) {
	assert := assert_.New(t)

	assert.Equal("hello world 42", Canonicalize("  Hello,\n\tWORLD!  42 "))
	assert.Equal("", Canonicalize("!!!"))
	assert.Equal("hello world", Canonicalize("Hello\u00a0\u2003World"), "non-ASCII whitespace")
}

func TestIsBoilerplate(t *testing.T) {
	assert := assert_.New(t)

	assert.True(DefaultBoilerplate.IsBoilerplate(stockDescription))
	assert.True(DefaultBoilerplate.IsBoilerplate(
		"  ENJOY the videos and music you love,\nupload original content,\n" +
			"and share it all with friends, family, and the world on YouTube!  ",
	))
	assert.True(DefaultBoilerplate.IsBoilerplate("Prefix. "+stockDescription+" Suffix."), "all phrases present")
	assert.True(DefaultBoilerplate.IsBoilerplate(strings.ReplaceAll(stockDescription, " ", "\u00a0")), "non-breaking spaces")
	assert.False(DefaultBoilerplate.IsBoilerplate("Quick walkthrough of the top 3 keyboard shortcuts."))
	assert.False(DefaultBoilerplate.IsBoilerplate("Enjoy the videos and music you love"), "only one phrase present")
}

func TestAccept(t *testing.T) {
	assert := assert_.New(t)

	_, ok := DefaultBoilerplate.Accept(stockDescription)
	assert.False(ok)
	_, ok = DefaultBoilerplate.Accept("   ")
	assert.False(ok)

	value, ok := DefaultBoilerplate.Accept("  Quick walkthrough of the top 3 keyboard shortcuts!  ")
	assert.True(ok)
	assert.Equal("Quick walkthrough of the top 3 keyboard shortcuts!", value)
}

func TestCustomBoilerplate(t *testing.T) {
	assert := assert_.New(t)

	filter := BoilerplateFilter{Phrases: []string{"no description", "available"}}
	assert.True(filter.IsBoilerplate("No description is available."))
	assert.False(filter.IsBoilerplate(stockDescription))

	empty := BoilerplateFilter{}
	assert.False(empty.IsBoilerplate("anything"), "empty phrase list never matches")
}
