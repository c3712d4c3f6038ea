package dynview

import (
	"strings"
	"testing"

	apperrors "github.com/nicorai/nicorai/internal/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantKind Kind
		wantErr  bool
	}{
		{
			name:     "table",
			raw:      `{"viewType":"table","data":{"columns":["Name","Description"],"rows":[["A","a"],["B","b"]]}}`,
			wantKind: KindTable,
		},
		{
			name:     "cards",
			raw:      `{"viewType":"card","data":{"cards":[{"title":"Case Study","content":"Shipped"}]}}`,
			wantKind: KindCard,
		},
		{
			name:     "chart",
			raw:      `{"viewType":"chart","data":{"chartType":"bar","labels":["A","B"],"datasets":[{"label":"Impact","data":[30,15]}]}}`,
			wantKind: KindChart,
		},
		{
			name:     "custom",
			raw:      `{"viewType":"custom","data":{"items":[{"title":"x","details":"y","metadata":{"k":"v"}}]}}`,
			wantKind: KindCustom,
		},
		{name: "unknown kind", raw: `{"viewType":"carousel","data":{}}`, wantErr: true},
		{name: "malformed json", raw: `{"viewType":`, wantErr: true},
		{name: "ragged table", raw: `{"viewType":"table","data":{"columns":["A","B"],"rows":[["only one"]]}}`, wantErr: true},
		{name: "table without columns", raw: `{"viewType":"table","data":{}}`, wantErr: true},
		{name: "chart label mismatch", raw: `{"viewType":"chart","data":{"labels":["A"],"datasets":[{"label":"x","data":[1,2]}]}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse([]byte(tt.raw))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !apperrors.Is(err, apperrors.KindInvalid) {
					t.Errorf("expected KindInvalid, got %v", apperrors.GetKind(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", v.Kind, tt.wantKind)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	a := &View{Kind: KindTable, Data: Data{Columns: []string{"A"}, Rows: [][]string{{"1"}}}}
	b := &View{Kind: KindTable, Data: Data{Columns: []string{"A"}, Rows: [][]string{{"1"}}}}
	c := &View{Kind: KindTable, Data: Data{Columns: []string{"A"}, Rows: [][]string{{"2"}}}}

	if !Equal(a, b) {
		t.Error("structurally identical views should be equal")
	}
	if Equal(a, c) {
		t.Error("views with different rows should not be equal")
	}
	if !Equal(nil, nil) {
		t.Error("nil views should be equal")
	}
	if Equal(a, nil) || Equal(nil, a) {
		t.Error("nil and non-nil should not be equal")
	}
}

func TestClone(t *testing.T) {
	orig := &View{Kind: KindCard, Data: Data{Cards: []Card{{Title: "t", Content: "c"}}}}
	clone := orig.Clone()

	if !Equal(orig, clone) {
		t.Fatal("clone should be structurally equal")
	}
	clone.Data.Cards[0].Title = "changed"
	if orig.Data.Cards[0].Title != "t" {
		t.Error("mutating the clone should not affect the original")
	}
	if (*View)(nil).Clone() != nil {
		t.Error("cloning nil should return nil")
	}
}

func TestSummary(t *testing.T) {
	v := &View{Kind: KindTable, Title: "Services", Data: Data{Columns: []string{"A"}, Rows: [][]string{{"1"}, {"2"}}}}
	if got := v.Summary(); got != "Services (2 rows)" {
		t.Errorf("Summary() = %q", got)
	}

	untitled := &View{Kind: KindChart, Data: Data{Labels: []string{"a", "b", "c"}}}
	if got := untitled.Summary(); got != "Chart (3 points)" {
		t.Errorf("Summary() = %q", got)
	}
}

func TestPlainText(t *testing.T) {
	v := &View{
		Kind:  KindChart,
		Title: "Impact",
		Data: Data{
			Labels:   []string{"Project A", "Project B"},
			Datasets: []Dataset{{Label: "Impact %", Data: []float64{30, 15.5}}},
		},
	}
	out := v.PlainText()
	for _, want := range []string{"Impact", "Project A: 30", "Project B: 15.5"} {
		if !strings.Contains(out, want) {
			t.Errorf("PlainText() missing %q:\n%s", want, out)
		}
	}
}
