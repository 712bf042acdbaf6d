package document_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deepflat/internal/document"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want document.Format
	}{
		{"json", document.JSON},
		{" JSON ", document.JSON},
		{"yaml", document.YAML},
		{"yml", document.YAML},
	}
	for _, tt := range tests {
		got, err := document.ParseFormat(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := document.ParseFormat("toml")
	assert.ErrorIs(t, err, document.ErrUnknownFormat)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, document.YAML, document.FormatFromPath("a/b.yaml"))
	assert.Equal(t, document.YAML, document.FormatFromPath("B.YML"))
	assert.Equal(t, document.JSON, document.FormatFromPath("c.json"))
	assert.Equal(t, document.JSON, document.FormatFromPath("noext"))
}

func TestDecodeJSON(t *testing.T) {
	docs, err := document.Decode(strings.NewReader(`[1,[2,3]] {"a":1}`+"\n"+`"x"`), document.JSON)
	require.NoError(t, err)
	require.Len(t, docs, 3)

	assert.Equal(t, []any{json.Number("1"), []any{json.Number("2"), json.Number("3")}}, docs[0])
	assert.Equal(t, map[string]any{"a": json.Number("1")}, docs[1])
	assert.Equal(t, "x", docs[2])
}

func TestDecodeYAML(t *testing.T) {
	input := "- 1\n- [2, 3]\n---\n- a\n- {k: v}\n"
	docs, err := document.Decode(strings.NewReader(input), document.YAML)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, []any{1, []any{2, 3}}, docs[0])
	assert.Equal(t, []any{"a", map[string]any{"k": "v"}}, docs[1])
}

func TestDecodeEmpty(t *testing.T) {
	for _, f := range []document.Format{document.JSON, document.YAML} {
		docs, err := document.Decode(strings.NewReader(""), f)
		require.NoError(t, err)
		assert.Empty(t, docs)
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := document.Decode(strings.NewReader(`[1,`), document.JSON)
	assert.ErrorIs(t, err, document.ErrDecode)

	_, err = document.Decode(strings.NewReader("- [unclosed\n"), document.YAML)
	assert.ErrorIs(t, err, document.ErrDecode)

	_, err = document.Decode(strings.NewReader("[]"), document.Format("xml"))
	assert.ErrorIs(t, err, document.ErrUnknownFormat)
}

func TestEncode(t *testing.T) {
	docs := []any{[]any{1, 2}, []any{"a"}}

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, document.Encode(&buf, docs, document.JSON))
		assert.Equal(t, "[1,2]\n[\"a\"]\n", buf.String())
	})

	t.Run("YAML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, document.Encode(&buf, docs, document.YAML))
		assert.Equal(t, "- 1\n- 2\n---\n- a\n", buf.String())
	})

	t.Run("Unencodable", func(t *testing.T) {
		var buf bytes.Buffer
		err := document.Encode(&buf, []any{make(chan int)}, document.JSON)
		assert.ErrorIs(t, err, document.ErrEncode)
	})
}
