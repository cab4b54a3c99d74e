package quickcodes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearGrid(t *testing.T) {
	g := NewLinearGrid([]bool{true, false, true, true})
	assert.False(t, g.IsMatrix())
	assert.False(t, g.Empty())
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 1, g.Height())
	assert.True(t, g.At(3, 7))
	assert.Nil(t, g.Matrix())
	assert.Equal(t, "#.##\n", g.String())

	mods := g.Linear()
	mods[0] = false
	assert.True(t, g.At(0, 0), "Linear returns a copy")

	rows := g.Rows()
	require.Len(t, rows, 1)
	rows[0][1] = true
	assert.False(t, g.At(1, 0), "Rows returns a copy")
}

func TestMatrixGrid(t *testing.T) {
	g, err := NewMatrixGrid([][]bool{
		{true, false, false},
		{false, true, false},
	})
	require.NoError(t, err)
	assert.True(t, g.IsMatrix())
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.True(t, g.At(1, 1))
	assert.False(t, g.At(2, 1))
	assert.Nil(t, g.Linear())
	assert.Equal(t, "#..\n.#.\n", g.String())

	m := g.Matrix()
	m[0][0] = false
	assert.True(t, g.At(0, 0), "Matrix returns a copy")
}

func TestNewMatrixGridErrors(t *testing.T) {
	_, err := NewMatrixGrid(nil)
	assert.ErrorIs(t, err, ErrGeneration)

	_, err = NewMatrixGrid([][]bool{{true, false}, {true}})
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestGridEqual(t *testing.T) {
	a, err := NewMatrixGrid([][]bool{{true}})
	require.NoError(t, err)
	b, err := NewMatrixGrid([][]bool{{true}})
	require.NoError(t, err)
	c, err := NewMatrixGrid([][]bool{{false}})
	require.NoError(t, err)
	lin := NewLinearGrid([]bool{true})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(lin), "shape differs")
	assert.True(t, ModuleGrid{}.Empty())
	assert.True(t, ModuleGrid{}.Equal(ModuleGrid{}))
}
