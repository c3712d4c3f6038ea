package orchestrator

import (
	"testing"

	"github.com/nicorai/nicorai/internal/conversation"
	"github.com/nicorai/nicorai/internal/dynview"
)

// fakeTranscript reports a fixed message count
type fakeTranscript int

func (f fakeTranscript) MessageCount() int { return int(f) }

// fakeBackend implements Backend on top of a real Bus
type fakeBackend struct {
	count   int
	created []string
	bus     *conversation.Bus
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{bus: conversation.NewBus()}
}

func (f *fakeBackend) MessageCount() int { return f.count }

func (f *fakeBackend) CreateNewChat() string {
	id := "chat-" + string(rune('a'+len(f.created)))
	f.created = append(f.created, id)
	f.count = 0
	return id
}

func (f *fakeBackend) Publish(ev conversation.Changed) { f.bus.Publish(ev) }

func (f *fakeBackend) Subscribe() *conversation.Subscription { return f.bus.Subscribe() }

func strPtr(s string) *string { return &s }

func tableView(title string) *dynview.View {
	return &dynview.View{
		Kind:  dynview.KindTable,
		Title: title,
		Data: dynview.Data{
			Columns: []string{"Name"},
			Rows:    [][]string{{title}},
		},
	}
}

// chatState is a snapshot with an ongoing conversation
func chatState() State {
	s := Initial()
	s.IsInitialView = false
	s.HasMessages = true
	return s
}

// reduceAll applies events in order, checking invariants after each one
func reduceAll(t *testing.T, s State, tr Transcript, events ...Event) State {
	t.Helper()
	for _, ev := range events {
		s = Reduce(s, ev, tr)
		if err := CheckInvariants(s); err != nil {
			t.Fatalf("after %s: %v", EventName(ev), err)
		}
	}
	return s
}
