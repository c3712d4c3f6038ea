// Package dynview defines the dynamic view payload that a chat exchange can
// produce: a table, a set of cards, a chart or a free-form item list that the
// UI can show inline, keep dismissed for later, or promote to fullscreen.
//
// The orchestrator treats a View as opaque. Only the presenter looks inside.
package dynview

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	apperrors "github.com/nicorai/nicorai/internal/errors"
)

// Kind is the viewType discriminator used by the backend
type Kind string

const (
	KindTable  Kind = "table"
	KindCard   Kind = "card"
	KindChart  Kind = "chart"
	KindCustom Kind = "custom"
	KindText   Kind = "text"
)

// Valid reports whether k is a known kind
func (k Kind) Valid() bool {
	switch k {
	case KindTable, KindCard, KindChart, KindCustom, KindText:
		return true
	}
	return false
}

// Card is one entry of a card view
type Card struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Dataset is one series of a chart view
type Dataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

// Item is one entry of a custom view
type Item struct {
	Title    string            `json:"title"`
	Details  string            `json:"details"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Data holds the kind-specific body. Only the fields for the view's Kind are set.
type Data struct {
	Columns   []string   `json:"columns,omitempty"`
	Rows      [][]string `json:"rows,omitempty"`
	Cards     []Card     `json:"cards,omitempty"`
	ChartType string     `json:"chartType,omitempty"`
	Labels    []string   `json:"labels,omitempty"`
	Datasets  []Dataset  `json:"datasets,omitempty"`
	Items     []Item     `json:"items,omitempty"`
	Text      string     `json:"text,omitempty"`
}

// View is a dynamic view payload
type View struct {
	Kind  Kind   `json:"viewType"`
	Title string `json:"title,omitempty"`
	Data  Data   `json:"data"`
}

// Parse decodes and validates a viewSpec document
func Parse(raw []byte) (*View, error) {
	var v View
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, apperrors.E(apperrors.Op("dynview.Parse"), apperrors.KindInvalid, "malformed view spec", err)
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// Validate checks that the body matches the kind
func (v *View) Validate() error {
	if !v.Kind.Valid() {
		return apperrors.ViewInvalid(fmt.Sprintf("unknown viewType %q", v.Kind))
	}
	switch v.Kind {
	case KindTable:
		if len(v.Data.Columns) == 0 {
			return apperrors.ViewInvalid("table view has no columns")
		}
		for i, row := range v.Data.Rows {
			if len(row) != len(v.Data.Columns) {
				return apperrors.ViewInvalid(fmt.Sprintf("table row %d has %d cells, want %d", i, len(row), len(v.Data.Columns)))
			}
		}
	case KindChart:
		for _, ds := range v.Data.Datasets {
			if len(ds.Data) != len(v.Data.Labels) {
				return apperrors.ViewInvalid(fmt.Sprintf("dataset %q has %d points for %d labels", ds.Label, len(ds.Data), len(v.Data.Labels)))
			}
		}
	}
	return nil
}

// Equal compares two views structurally. Two nil views are equal.
func Equal(a, b *View) bool {
	if a == nil || b == nil {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// Clone returns a deep copy
func (v *View) Clone() *View {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		c := *v
		return &c
	}
	var c View
	if err := json.Unmarshal(raw, &c); err != nil {
		c = *v
	}
	return &c
}

// DisplayTitle returns the title, falling back to a label derived from the kind
func (v *View) DisplayTitle() string {
	if v.Title != "" {
		return v.Title
	}
	switch v.Kind {
	case KindTable:
		return "Table"
	case KindCard:
		return "Cards"
	case KindChart:
		return "Chart"
	case KindCustom:
		return "Details"
	default:
		return "Response"
	}
}

// Summary is a one-line description used in hints and notifications
func (v *View) Summary() string {
	switch v.Kind {
	case KindTable:
		return fmt.Sprintf("%s (%d rows)", v.DisplayTitle(), len(v.Data.Rows))
	case KindCard:
		return fmt.Sprintf("%s (%d cards)", v.DisplayTitle(), len(v.Data.Cards))
	case KindChart:
		return fmt.Sprintf("%s (%d points)", v.DisplayTitle(), len(v.Data.Labels))
	case KindCustom:
		return fmt.Sprintf("%s (%d items)", v.DisplayTitle(), len(v.Data.Items))
	default:
		return v.DisplayTitle()
	}
}

// PlainText renders the view without styling, for the clipboard and the CLI
func (v *View) PlainText() string {
	var sb strings.Builder
	sb.WriteString(v.DisplayTitle())
	sb.WriteString("\n")

	switch v.Kind {
	case KindTable:
		sb.WriteString(strings.Join(v.Data.Columns, "\t"))
		sb.WriteString("\n")
		for _, row := range v.Data.Rows {
			sb.WriteString(strings.Join(row, "\t"))
			sb.WriteString("\n")
		}
	case KindCard:
		for _, c := range v.Data.Cards {
			fmt.Fprintf(&sb, "- %s: %s\n", c.Title, c.Content)
		}
	case KindChart:
		for _, ds := range v.Data.Datasets {
			fmt.Fprintf(&sb, "%s\n", ds.Label)
			for i, label := range v.Data.Labels {
				if i >= len(ds.Data) {
					break
				}
				fmt.Fprintf(&sb, "  %s: %g\n", label, ds.Data[i])
			}
		}
	case KindCustom:
		for _, it := range v.Data.Items {
			fmt.Fprintf(&sb, "- %s: %s\n", it.Title, it.Details)
		}
	case KindText:
		sb.WriteString(v.Data.Text)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
