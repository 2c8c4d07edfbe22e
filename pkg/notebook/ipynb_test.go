package notebook

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsolo1/grove-slides/pkg/models"
)

const sampleNotebook = `{
 "cells": [
  {
   "cell_type": "markdown",
   "id": "intro",
   "metadata": {
    "slideshow": {
     "slide_type": "slide"
    }
   },
   "source": [
    "# Title\n",
    "Welcome <b>all</b>"
   ]
  },
  {
   "cell_type": "code",
   "execution_count": 3,
   "id": "calc",
   "metadata": {},
   "outputs": [
    {
     "name": "stdout",
     "output_type": "stream",
     "text": [
      "2\n"
     ]
    }
   ],
   "source": "print(1 + 1)"
  }
 ],
 "metadata": {
  "kernelspec": {
   "name": "python3"
  }
 },
 "nbformat": 4,
 "nbformat_minor": 5
}
`

func TestDecode(t *testing.T) {
	nb, err := Decode(strings.NewReader(sampleNotebook), "sample.ipynb")
	require.NoError(t, err)

	assert.Equal(t, "sample.ipynb", nb.ID())
	require.Equal(t, 2, nb.CellCount())

	intro := nb.CellAt(0)
	assert.Equal(t, "intro", intro.ID)
	assert.Equal(t, models.CellKindMarkdown, intro.Kind)
	assert.Equal(t, "# Title\nWelcome <b>all</b>", intro.Source)
	assert.Equal(t, map[string]any{"slide_type": "slide"}, intro.Metadata["slideshow"])
	assert.Empty(t, intro.Extra)

	calc := nb.CellAt(1)
	assert.Equal(t, "print(1 + 1)", calc.Source)
	assert.Contains(t, calc.Extra, "outputs")
	assert.Contains(t, calc.Extra, "execution_count")
	assert.Equal(t, 5, nb.FormatMinor)
}

func TestEncodeMatchesJupyterLayout(t *testing.T) {
	nb, err := Decode(strings.NewReader(sampleNotebook), "sample.ipynb")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, nb))

	want := strings.Replace(sampleNotebook, `"source": "print(1 + 1)"`, "\"source\": [\n    \"print(1 + 1)\"\n   ]", 1)
	assert.Equal(t, want, buf.String())
}

func TestDecodeRejectsOtherFormats(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"nbformat": 3, "cells": []}`), "old")
	assert.ErrorIs(t, err, ErrNotNotebook)

	_, err = Decode(strings.NewReader(`not json`), "junk")
	assert.ErrorIs(t, err, ErrNotNotebook)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.ipynb")
	require.NoError(t, os.WriteFile(path, []byte(sampleNotebook), 0644))

	nb, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, nb.ID())
	assert.Equal(t, 2, nb.CellCount())

	_, err = Load(filepath.Join(t.TempDir(), "missing.ipynb"))
	assert.Error(t, err)
}

func TestEncodeFillsCodeCellFields(t *testing.T) {
	nb := New("new", []models.Cell{{Kind: models.CellKindCode, Source: "x = 1\ny = 2\n"}})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, nb))

	out := buf.String()
	assert.Contains(t, out, `"outputs": []`)
	assert.Contains(t, out, `"execution_count": null`)
	assert.Contains(t, out, "\"x = 1\\n\",\n    \"y = 2\\n\"")
}

func TestSplitSource(t *testing.T) {
	assert.Equal(t, []string{}, splitSource(""))
	assert.Equal(t, []string{"a\n", "b"}, splitSource("a\nb"))
	assert.Equal(t, []string{"a\n"}, splitSource("a\n"))
}
