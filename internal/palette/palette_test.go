package palette

import (
	"testing"

	"github.com/PolarWolf314/pigment/internal/rgba"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = rgba.MustParse("#ff0000")
	blue = rgba.MustParse("#0000ff")
)

func TestCloseAppendsFirstStop(t *testing.T) {
	closed := Close([]rgba.Color{red, blue})
	require.Len(t, closed, 3)
	assert.Equal(t, red, closed[2])
}

func TestCloseLeavesClosedListAlone(t *testing.T) {
	closed := Close([]rgba.Color{red, blue, red})
	assert.Len(t, closed, 3)

	single := Close([]rgba.Color{red})
	assert.Equal(t, []rgba.Color{red}, single)
}

func TestCloseDoesNotAliasInput(t *testing.T) {
	in := make([]rgba.Color, 2, 8)
	in[0], in[1] = red, blue
	closed := Close(in)
	closed[0] = blue
	assert.Equal(t, red, in[0])
}

func TestStopsFallsBackToDefault(t *testing.T) {
	p := Palette{Light: nil, Dark: []rgba.Color{blue}}
	assert.Equal(t, Close(DefaultLight), p.Stops(Light))
	assert.Equal(t, []rgba.Color{blue}, p.Stops(Dark))
}

func TestDefaultIsACopy(t *testing.T) {
	p := Default()
	p.Light[0] = blue
	assert.NotEqual(t, blue, DefaultLight[0])
}

func TestParseTheme(t *testing.T) {
	theme, err := ParseTheme("Dark")
	require.NoError(t, err)
	assert.Equal(t, Dark, theme)
	assert.Equal(t, "dark", theme.String())

	_, err = ParseTheme("sepia")
	assert.Error(t, err)
}
