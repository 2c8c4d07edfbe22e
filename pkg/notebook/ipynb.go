package notebook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattsolo1/grove-slides/pkg/models"
)

// ErrNotNotebook is returned when input is not an nbformat 4 document.
var ErrNotNotebook = errors.New("not an nbformat 4 notebook")

// known top-level cell keys; everything else is kept in Cell.Extra.
var cellKeys = map[string]bool{
	"id":        true,
	"cell_type": true,
	"source":    true,
	"metadata":  true,
}

type rawNotebook struct {
	Cells         []map[string]json.RawMessage `json:"cells"`
	Metadata      map[string]any               `json:"metadata"`
	NBFormat      int                          `json:"nbformat"`
	NBFormatMinor int                          `json:"nbformat_minor"`
}

// Load reads an .ipynb file; the notebook's ID is the path.
func Load(path string) (*Notebook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open notebook: %w", err)
	}
	defer f.Close()

	nb, err := Decode(f, path)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return nb, nil
}

// Decode parses nbformat 4 JSON.
func Decode(r io.Reader, id string) (*Notebook, error) {
	var raw rawNotebook
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotNotebook, err)
	}
	if raw.NBFormat != 4 {
		return nil, fmt.Errorf("%w: nbformat %d", ErrNotNotebook, raw.NBFormat)
	}

	cells := make([]models.Cell, 0, len(raw.Cells))
	for i, rc := range raw.Cells {
		c, err := decodeCell(rc)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		cells = append(cells, c)
	}

	nb := New(id, cells)
	if raw.Metadata != nil {
		nb.Metadata = raw.Metadata
	}
	nb.Format = raw.NBFormat
	nb.FormatMinor = raw.NBFormatMinor
	return nb, nil
}

func decodeCell(rc map[string]json.RawMessage) (models.Cell, error) {
	var c models.Cell
	if v, ok := rc["id"]; ok {
		if err := json.Unmarshal(v, &c.ID); err != nil {
			return c, fmt.Errorf("id: %w", err)
		}
	}
	var kind string
	if err := json.Unmarshal(rc["cell_type"], &kind); err != nil {
		return c, fmt.Errorf("cell_type: %w", err)
	}
	c.Kind = models.CellKind(kind)

	if v, ok := rc["source"]; ok {
		src, err := decodeSource(v)
		if err != nil {
			return c, fmt.Errorf("source: %w", err)
		}
		c.Source = src
	}
	if v, ok := rc["metadata"]; ok {
		if err := json.Unmarshal(v, &c.Metadata); err != nil {
			return c, fmt.Errorf("metadata: %w", err)
		}
	}
	if c.Metadata == nil {
		c.Metadata = map[string]any{}
	}

	for k, v := range rc {
		if cellKeys[k] {
			continue
		}
		if c.Extra == nil {
			c.Extra = make(map[string]json.RawMessage)
		}
		c.Extra[k] = v
	}
	return c, nil
}

// decodeSource accepts both the single-string and the line-list form.
func decodeSource(v json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s, nil
	}
	var lines []string
	if err := json.Unmarshal(v, &lines); err != nil {
		return "", err
	}
	return strings.Join(lines, ""), nil
}

// Encode writes nb as nbformat 4 JSON in the layout Jupyter itself writes:
// one-space indent, sorted keys, source as a list of lines.
func Encode(w io.Writer, nb *Notebook) error {
	cells := make([]map[string]any, 0, nb.CellCount())
	for _, c := range nb.cells {
		cells = append(cells, encodeCell(c))
	}

	meta := nb.Metadata
	if meta == nil {
		meta = map[string]any{}
	}
	doc := map[string]any{
		"cells":          cells,
		"metadata":       meta,
		"nbformat":       nb.Format,
		"nbformat_minor": nb.FormatMinor,
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode notebook: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func encodeCell(c models.Cell) map[string]any {
	out := make(map[string]any, len(c.Extra)+4)
	for k, v := range c.Extra {
		out[k] = v
	}
	if c.ID != "" {
		out["id"] = c.ID
	}
	out["cell_type"] = string(c.Kind)
	out["source"] = splitSource(c.Source)
	meta := c.Metadata
	if meta == nil {
		meta = map[string]any{}
	}
	out["metadata"] = meta
	// code cells must carry outputs and execution_count
	if c.Kind == models.CellKindCode {
		if _, ok := out["outputs"]; !ok {
			out["outputs"] = []any{}
		}
		if _, ok := out["execution_count"]; !ok {
			out["execution_count"] = nil
		}
	}
	return out
}

// splitSource splits into lines that keep their trailing newline.
func splitSource(s string) []string {
	if s == "" {
		return []string{}
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
