package favourites

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dulina20231254-glitch/urbannest/internal/model"
	"github.com/dulina20231254-glitch/urbannest/internal/testutil"
)

func ids(s *Set) []string {
	return testutil.IDs(s.List())
}

func TestSet_AddIsIdempotent(t *testing.T) {
	listings := testutil.Listings()
	s := New()

	assert.True(t, s.Add(listings[0]))
	assert.False(t, s.Add(listings[0]))
	assert.True(t, s.Add(listings[1]))

	assert.Equal(t, []string{"1", "2"}, ids(s))
	assert.True(t, s.Contains("1"))
	assert.Equal(t, 2, s.Len())

	// Re-adding keeps the original position.
	s.Add(listings[0])
	assert.Equal(t, []string{"1", "2"}, ids(s))

	assert.True(t, s.Clear())
	assert.Empty(t, s.List())
	assert.False(t, s.Clear())
}

func TestSet_Remove(t *testing.T) {
	listings := testutil.Listings()
	s := New()
	for _, l := range listings[:3] {
		s.Add(l)
	}

	assert.True(t, s.Remove("2"))
	assert.False(t, s.Remove("2"))
	assert.False(t, s.Remove("99"))
	assert.Equal(t, []string{"1", "3"}, ids(s))
	assert.False(t, s.Contains("2"))

	s.Add(listings[1])
	assert.Equal(t, []string{"1", "3", "2"}, ids(s))
}

func TestSet_ZeroValue(t *testing.T) {
	var s Set

	assert.False(t, s.Contains("1"))
	assert.False(t, s.Remove("1"))
	assert.True(t, s.Add(model.Listing{ID: "1"}))
	assert.Equal(t, 1, s.Len())
}

func TestSet_ListIsACopy(t *testing.T) {
	s := New()
	s.Add(model.Listing{ID: "1", Price: 10})

	list := s.List()
	list[0].Price = 99
	assert.InDelta(t, 10.0, s.List()[0].Price, 0)
}

func TestSet_ImagesAreCopied(t *testing.T) {
	l := model.Listing{ID: "1", Images: []string{"a.jpg", "b.jpg"}}
	s := New()
	s.Add(l)

	l.Images[0] = "added.jpg"
	s.List()[0].Images[1] = "listed.jpg"

	assert.Equal(t, []string{"a.jpg", "b.jpg"}, s.List()[0].Images)
}
