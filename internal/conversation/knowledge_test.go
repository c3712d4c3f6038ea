package conversation

import (
	"context"
	"testing"

	"github.com/nicorai/nicorai/internal/dynview"
)

func TestKnowledgeBase_Respond(t *testing.T) {
	tests := []struct {
		query    string
		wantKind dynview.Kind // "" means no view
	}{
		{"What services do you offer?", dynview.KindTable},
		{"Which technologies do you use", dynview.KindTable},
		{"show me case studies", dynview.KindCard},
		{"tell me about your projects", dynview.KindCard},
		{"chart of project impact", dynview.KindChart},
		{"hello!", ""},
		{"what is the weather", ""},
	}

	kb := NewKnowledgeBase()
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			reply, err := kb.Respond(context.Background(), nil, tt.query)
			if err != nil {
				t.Fatalf("Respond() error: %v", err)
			}
			if reply.Text == "" {
				t.Error("reply should always carry text")
			}
			if tt.wantKind == "" {
				if reply.View != nil {
					t.Errorf("expected no view, got %s", reply.View.Kind)
				}
				return
			}
			if reply.View == nil {
				t.Fatalf("expected %s view, got none", tt.wantKind)
			}
			if reply.View.Kind != tt.wantKind {
				t.Errorf("Kind = %s, want %s", reply.View.Kind, tt.wantKind)
			}
			if err := reply.View.Validate(); err != nil {
				t.Errorf("generated view is invalid: %v", err)
			}
		})
	}
}

func TestKnowledgeBase_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewKnowledgeBase().Respond(ctx, nil, "services"); err == nil {
		t.Error("expected an error for a cancelled context")
	}
}
