package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"pocketfin/internal/encoding"
)

func decode(t *testing.T, input []byte) string {
	t.Helper()

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(got)
}

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	input := "Date,Description,Amount\n2025-06-01,Café,-3.20\n"
	assert.Equal(t, input, decode(t, []byte(input)))
}

func TestNewUTF8Reader_UTF8BOMStripped(t *testing.T) {
	content := "Date,Description\n"
	input := append([]byte{0xEF, 0xBB, 0xBF}, content...)

	assert.Equal(t, content, decode(t, input))
}

func TestNewUTF8Reader_UTF16LE(t *testing.T) {
	content := "Date,Description\n2025-06-01,Café\n"

	encoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	raw, err := encoder.Bytes([]byte(content))
	require.NoError(t, err)

	assert.Equal(t, content, decode(t, raw))
}

func TestNewUTF8Reader_Windows1252(t *testing.T) {
	// "Café" with é as 0xE9: not valid UTF-8, decoded as Windows-1252.
	input := []byte{'C', 'a', 'f', 0xE9, ',', '1', '2', '\n'}

	assert.Equal(t, "Café,12\n", decode(t, input))
}

func TestNewUTF8Reader_EmptyInput(t *testing.T) {
	assert.Empty(t, decode(t, nil))
}
