package printer

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type angled string

func (a angled) PrintInline(w io.Writer) error {
	_, err := fmt.Fprintf(w, "<%s>", string(a))

	return err
}

func TestIndent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Indent(2, 0))
	assert.Equal(t, "  ", Indent(2, 1))
	assert.Equal(t, "      ", Indent(2, 3))
	assert.Equal(t, "    ", Indent(4, 1))
}

func TestIntercalate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(
		t,
		Intercalate([]angled{"foo", "bar", "baz"}, &buf, ", "),
	)

	assert.Equal(t, "<foo>, <bar>, <baz>", buf.String())
}

func TestIntercalateSingle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, Intercalate([]angled{"foo"}, &buf, "\n"))
	assert.Equal(t, "<foo>", buf.String())
}

func TestIntercalateEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, Intercalate[angled](nil, &buf, ", "))
	assert.Equal(t, "", buf.String())
}
