package orchestrator

import (
	"math/rand"
	"testing"

	"github.com/nicorai/nicorai/internal/dynview"
)

// randomEvent draws an event from the full event set
func randomEvent(r *rand.Rand, views []*dynview.View) Event {
	pickView := func() *dynview.View {
		if r.Intn(3) == 0 {
			return nil
		}
		return views[r.Intn(len(views))]
	}
	ids := []string{"services", "reports", "about", ReservedDynamicViewID, ""}

	switch r.Intn(9) {
	case 0:
		return Mount{}
	case 1:
		return ConversationChanged{ChatID: "c", MessageCount: r.Intn(3)}
	case 2:
		return MessageSent{IsClosing: r.Intn(2) == 0, View: pickView(), IsClosed: r.Intn(2) == 0}
	case 3:
		return NavClick{ViewID: ids[r.Intn(len(ids))]}
	case 4:
		return CloseView{}
	case 5:
		keys := []string{"esc", "enter", "q"}
		return KeyPress{Key: keys[r.Intn(len(keys))]}
	case 6:
		return StartChatting{}
	case 7:
		return SidebarToggled{Expanded: r.Intn(2) == 0}
	default:
		return ViewportResized{Width: 40 + r.Intn(120)}
	}
}

func TestReduce_InvariantsHoldForRandomSequences(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	views := []*dynview.View{tableView("A"), tableView("B"), tableView("C")}

	for run := 0; run < 500; run++ {
		s := Initial()
		tr := fakeTranscript(r.Intn(3))
		var history []string

		for step := 0; step < 40; step++ {
			ev := randomEvent(r, views)
			history = append(history, EventName(ev))
			s = Reduce(s, ev, tr)
			if err := CheckInvariants(s); err != nil {
				t.Fatalf("run %d: %v after %v", run, err, history)
			}
		}
	}
}

func TestReduce_PropertiesFromAnyState(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	views := []*dynview.View{tableView("A"), tableView("B")}

	for run := 0; run < 300; run++ {
		s := Initial()
		for step, n := 0, r.Intn(20); step < n; step++ {
			s = Reduce(s, randomEvent(r, views), fakeTranscript(r.Intn(2)))
		}

		if got := Reduce(s, Mount{}, nil); got.Mode() != ModeLanding {
			t.Fatalf("mount from %s gave %s", s, got.Mode())
		}
		if got := Reduce(s, ConversationChanged{MessageCount: 0}, nil); got.Mode() != ModeLanding {
			t.Fatalf("empty conversation from %s gave %s", s, got.Mode())
		}

		sent := Reduce(s, MessageSent{View: views[0]}, nil)
		if !sent.IsChatVisible || sent.ActiveViewID != nil {
			t.Fatalf("send from %s gave %s", s, sent)
		}

		promoted := Reduce(s, MessageSent{IsClosing: true, View: views[1]}, nil)
		if twice := Reduce(promoted, MessageSent{IsClosing: true, View: views[1]}, nil); !twice.Equal(promoted) {
			t.Fatalf("promotion from %s is not idempotent", s)
		}

		if s.ActiveViewID != nil {
			for _, tr := range []fakeTranscript{0, 3} {
				closed := Reduce(s, CloseView{}, tr)
				if m := closed.Mode(); m != ModeChatActive && m != ModeLanding {
					t.Fatalf("close view from %s gave %s", s, m)
				}
			}
		} else if esc := Reduce(s, KeyPress{Key: "esc"}, fakeTranscript(1)); !esc.Equal(s) {
			t.Fatalf("escape without a view changed %s", s)
		}
	}
}
