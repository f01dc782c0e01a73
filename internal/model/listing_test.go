package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePropertyType(t *testing.T) {
	tests := []struct {
		in   string
		want PropertyType
		ok   bool
	}{
		{"House", TypeHouse, true},
		{" flat ", TypeFlat, true},
		{"BUNGALOW", TypeBungalow, true},
		{"Any", "", false},
		{"", "", false},
		{"Castle", "", false},
	}

	for _, tt := range tests {
		got, ok := ParsePropertyType(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	assert.False(t, PropertyType("house").IsValid())
}

func TestListing_Images(t *testing.T) {
	l := Listing{Images: []string{"a.jpg", "b.jpg"}}

	assert.Equal(t, "a.jpg", l.Thumbnail())
	assert.Equal(t, 1, l.ImageIndex("b.jpg"))
	assert.True(t, l.HasImage("a.jpg"))
	assert.False(t, l.HasImage("c.jpg"))
	assert.Equal(t, "", Listing{}.Thumbnail())
}

func TestListing_Clone(t *testing.T) {
	l := Listing{ID: "1", Images: []string{"a.jpg", "b.jpg"}}

	c := l.Clone()
	c.Images[0] = "changed.jpg"
	c.Images = append(c.Images, "c.jpg")

	assert.Equal(t, []string{"a.jpg", "b.jpg"}, l.Images)
	assert.Equal(t, "1", c.ID)
	assert.Nil(t, Listing{}.Clone().Images)
}
