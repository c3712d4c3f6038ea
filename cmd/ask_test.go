package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/nicorai/nicorai/internal/conversation"
	apperrors "github.com/nicorai/nicorai/internal/errors"
)

func TestAsk(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     []string
	}{
		{"plain answer", "hello", []string{"Doing great"}},
		{"table view", "what services do you offer?", []string{"Here is an overview", "Services", "Custom AI Agents"}},
		{"chart view", "show me a chart", []string{"Project Impact", "Retail Assistant"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := conversation.NewService(conversation.NewKnowledgeBase())
			var out bytes.Buffer

			if err := ask(context.Background(), svc, tt.question, time.Second, &out); err != nil {
				t.Fatalf("ask() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q:\n%s", want, out.String())
				}
			}
		})
	}
}

func TestAsk_Empty(t *testing.T) {
	svc := conversation.NewService(conversation.NewKnowledgeBase())

	err := ask(context.Background(), svc, "   ", time.Second, &bytes.Buffer{})
	if !apperrors.Is(err, apperrors.KindInvalid) {
		t.Errorf("ask() error = %v, want invalid", err)
	}
}

func TestAsk_Timeout(t *testing.T) {
	kb := conversation.NewKnowledgeBase()
	kb.Delay = time.Second
	svc := conversation.NewService(kb)

	err := ask(context.Background(), svc, "hello", 10*time.Millisecond, &bytes.Buffer{})
	if !apperrors.Is(err, apperrors.KindTimeout) {
		t.Errorf("ask() error = %v, want timeout", err)
	}
}
