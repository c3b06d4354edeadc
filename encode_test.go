package tilegrid

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bytes"
	"strings"
	"testing"
)

const emptyRow = "0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 \n"

func TestEncodeTextEmpty(t *testing.T) {
	buf := bytes.Buffer{}
	err := New(DefaultConfig()).EncodeText(&buf, false)

	require.Nil(t, err)
	assert.Equal(t, strings.Repeat(emptyRow, 15), buf.String())
}

func TestEncodeTextShape(t *testing.T) {
	g, err := convert(t, `<tile x="32" y="48" id="7" /><tile x="240" y="224" id="11" />`)
	require.Nil(t, err)

	buf := bytes.Buffer{}
	require.Nil(t, g.EncodeText(&buf, false))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Equal(t, 15, len(lines))
	for _, line := range lines {
		assert.True(t, strings.HasSuffix(line, " "))
		assert.Equal(t, 16, len(strings.Fields(line)))
	}
	assert.Equal(t, "0 0 7 0 0 0 0 0 0 0 0 0 0 0 0 0 ", lines[3])
	assert.Equal(t, "11", strings.Fields(lines[14])[15])
}

func TestEncodeTextTrim(t *testing.T) {
	g, err := convert(t, `<tile x="0" y="0" id="4" />`)
	require.Nil(t, err)

	buf := bytes.Buffer{}
	require.Nil(t, g.EncodeText(&buf, true))

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "4 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0", lines[0])
	assert.Equal(t, "0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0", lines[14])
}

func TestEncodeJS(t *testing.T) {
	g, err := convert(t, `<tile x="16" y="0" id="3" />`)
	require.Nil(t, err)

	buf := bytes.Buffer{}
	require.Nil(t, g.Encode(&buf, FormatJS, false))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "[\n    [0,3,0,0,0,0,0,0,0,0,0,0,0,0,0,0],\n"))
	assert.True(t, strings.HasSuffix(out, "    [0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0]\n]\n"))
	assert.Equal(t, 17, strings.Count(out, "\n"))
}

func TestEncodeIdempotent(t *testing.T) {
	tiles := `<tile x="32" y="48" id="7" /><tile x="0" y="0" id="1" />`

	outputs := []string{}
	for i := 0; i < 2; i++ {
		g, err := convert(t, tiles)
		require.Nil(t, err)
		buf := bytes.Buffer{}
		require.Nil(t, g.Encode(&buf, FormatText, false))
		outputs = append(outputs, buf.String())
	}
	assert.Equal(t, outputs[0], outputs[1])
}

func TestEncodeUnknownFormat(t *testing.T) {
	buf := bytes.Buffer{}
	err := New(DefaultConfig()).Encode(&buf, "csv", false)
	assert.NotNil(t, err)
	assert.Equal(t, 0, buf.Len())
}
