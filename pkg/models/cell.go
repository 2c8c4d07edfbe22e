package models

import "encoding/json"

// CellKind is the ipynb cell_type.
type CellKind string

const (
	CellKindCode     CellKind = "code"
	CellKindMarkdown CellKind = "markdown"
	CellKindRaw      CellKind = "raw"
)

// Cell is a single notebook cell as the host exposes it.
type Cell struct {
	ID       string         `json:"id,omitempty"`
	Kind     CellKind       `json:"cell_type"`
	Source   string         `json:"source"`
	Metadata map[string]any `json:"metadata"`

	// Extra holds ipynb fields this tool does not interpret (outputs,
	// execution_count, attachments) so they survive a save untouched.
	Extra map[string]json.RawMessage `json:"-"`
}

// IsMarkup reports whether the cell is presentation markup rather than code.
func (c Cell) IsMarkup() bool {
	return c.Kind != CellKindCode
}

// Clone returns a deep copy of the cell's metadata bag and extra fields.
func (c Cell) Clone() Cell {
	out := c
	out.Metadata = cloneMap(c.Metadata)
	if c.Extra != nil {
		out.Extra = make(map[string]json.RawMessage, len(c.Extra))
		for k, v := range c.Extra {
			out.Extra[k] = append(json.RawMessage(nil), v...)
		}
	}
	return out
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
