package generic

import (
	"sort"
	"testing"

	assert_ "github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	assert := assert_.New(t)

	s := NewSet[string]()
	assert.Equal(0, s.Count())
	assert.True(s.Add("en"))
	assert.False(s.Add("en"))
	assert.True(s.Add("fr"))
	assert.Equal(2, s.Count())
	assert.True(s.Contains("en", "fr"))
	assert.False(s.Contains("en", "de"))

	assert.True(s.Remove("fr"))
	assert.False(s.Remove("fr"))
	assert.Equal([]string{"en"}, s.ToSlice())

	clone := s.Clone()
	clone.Add("de")
	assert.False(s.Contains("de"))
	items := clone.ToSlice()
	sort.Strings(items)
	assert.Equal([]string{"de", "en"}, items)

	clone.Clear()
	assert.Equal(0, clone.Count())
	assert.Equal(1, s.Count())
}

func TestNewSetDeduplicates(t *testing.T) {
	assert := assert_.New(t)

	s := NewSet("watch", "v", "watch")
	assert.Equal(2, s.Count())
}
