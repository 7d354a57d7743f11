package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathValidate(t *testing.T) {
	a, b, c := Point{0, 0}, Point{3, 4}, Point{3, 10}

	valid := Path{
		Start: a,
		Segments: []Segment{
			{Start: a, End: b, Cost: 5},
			{Start: b, End: c, Cost: 6},
		},
		TotalCost: 11,
	}
	require.NoError(t, valid.Validate())
	assert.Equal(t, c, valid.End())

	empty := Path{Start: a, TotalCost: 0}
	require.NoError(t, empty.Validate())
	assert.Equal(t, a, empty.End())

	broken := valid
	broken.Segments = []Segment{{Start: a, End: b, Cost: 5}, {Start: a, End: c, Cost: 6}}
	require.Error(t, broken.Validate())

	wrongTotal := valid
	wrongTotal.TotalCost = 12
	require.Error(t, wrongTotal.Validate())

	negative := Path{Start: a, Segments: []Segment{{Start: a, End: b, Cost: -1}}, TotalCost: -1}
	require.ErrorIs(t, negative.Validate(), ErrInvalidCost)
}
