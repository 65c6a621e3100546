package matrix

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	m, err := Parse(strings.NewReader("  1 2 \n\n3 4"))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1.0, 2.0}, {3.0, 4.0}}, m)
}

func TestParseErrors(t *testing.T) {
	inputs := map[string]string{
		"empty":       "",
		"blank only":  "\n  \n\t\n",
		"non-numeric": "1 2\n3 x",
		"ragged":      "1 2\n3\n4 5",
	}
	for name, input := range inputs {
		_, err := Parse(strings.NewReader(input))
		assert.Error(t, err, name)
	}
}

func TestRoundTrip(t *testing.T) {
	m := [][]float64{
		{0.1, -2.5, 1e-9},
		{6.0, 0.0, 3.0},
		{-1.0 / 3.0, 14.0 / 3.0, 1e20},
	}

	var buf bytes.Buffer
	require.NoError(t, Format(&buf, m))

	parsed, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, m, parsed)
}
