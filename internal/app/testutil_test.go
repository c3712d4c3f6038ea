package app

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/nicorai/nicorai/internal/clipboard"
	"github.com/nicorai/nicorai/internal/config"
	"github.com/nicorai/nicorai/internal/conversation"
	"github.com/nicorai/nicorai/internal/keys"
	"github.com/nicorai/nicorai/internal/logger"
)

// testClipboard stands in for the system clipboard in every test
var testClipboard = &fakeClipboard{}

type fakeClipboard struct {
	mu   sync.Mutex
	text string
}

func (f *fakeClipboard) Init() error { return nil }

func (f *fakeClipboard) WriteText(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.text = text
}

func (f *fakeClipboard) ReadText() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.text
}

func TestMain(m *testing.M) {
	logger.InitWriter(io.Discard)
	clipboard.SetBackend(testClipboard)
	os.Exit(m.Run())
}

// failingResponder always errors
type failingResponder struct{}

func (failingResponder) Respond(context.Context, []conversation.Message, string) (conversation.Reply, error) {
	return conversation.Reply{}, errors.New("backend unavailable")
}

// testConfig creates a config with built-in defaults that is never saved.
func testConfig() *config.Config {
	return config.Default()
}

// testModel creates a test Model backed by the built-in knowledge base.
func testModel(t *testing.T, cfg *config.Config) *Model {
	t.Helper()
	return testModelWith(t, cfg, conversation.NewKnowledgeBase())
}

// testModelWith creates a test Model answering with r.
func testModelWith(t *testing.T, cfg *config.Config, r conversation.Responder) *Model {
	t.Helper()
	m := New(cfg, conversation.NewService(r), "0.0.0-test")
	t.Cleanup(m.Close)
	return m
}

// testModelWithSize creates a test Model and sets its size.
func testModelWithSize(t *testing.T, cfg *config.Config, width, height int) *Model {
	t.Helper()
	return setSize(testModel(t, cfg), width, height)
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "tab", "esc", "ctrl+f", "up"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Left:
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case keys.Right:
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.CtrlB, keys.CtrlC, keys.CtrlD, keys.CtrlF, keys.CtrlN,
		keys.CtrlO, keys.CtrlR, keys.CtrlX, keys.CtrlY:
		return tea.KeyPressMsg{Code: rune(key[len(key)-1]), Mod: tea.ModCtrl}
	default:
		// Regular character - for single characters, set both Code and Text
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the updated model.
func sendKey(m *Model, key string) *Model {
	result, _ := m.Update(keyPress(key))
	return result.(*Model)
}

// sendKeyCmd sends a key press and returns the resulting command.
func sendKeyCmd(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(keyPress(key))
	return cmd
}

// setSize sends a window size message to the model.
func setSize(m *Model, width, height int) *Model {
	result, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return result.(*Model)
}

// runAsync executes cmd and every command it batches in the background,
// delivering each produced message to sink. Ticks keep running after the
// test returns; their messages are dropped.
func runAsync(cmd tea.Cmd, sink func(tea.Msg)) {
	if cmd == nil {
		return
	}
	go func() {
		msg := cmd()
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, sub := range batch {
				runAsync(sub, sink)
			}
			return
		}
		if msg != nil {
			sink(msg)
		}
	}()
}

// waitFor runs cmd and returns the first message of type T it produces.
func waitFor[T tea.Msg](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	found := make(chan T, 1)
	runAsync(cmd, func(msg tea.Msg) {
		if v, ok := msg.(T); ok {
			select {
			case found <- v:
			default:
			}
		}
	})

	select {
	case v := <-found:
		return v
	case <-time.After(2 * time.Second):
		var zero T
		t.Fatalf("timed out waiting for %T", zero)
		return zero
	}
}

// sendMessage types text into the composer, submits it and applies the reply.
func sendMessage(t *testing.T, m *Model, text string) ReplyMsg {
	t.Helper()
	m.chat.Composer().SetValue(text)
	cmd := sendKeyCmd(m, keys.Enter)
	if !m.IsWaiting() {
		t.Fatalf("expected to be waiting after sending %q", text)
	}
	reply := waitFor[ReplyMsg](t, cmd)
	m.Update(reply)
	return reply
}

// deliverChange reads the next conversation-changed notification and feeds it
// to the model, the way the listener command would.
func deliverChange(t *testing.T, m *Model) {
	t.Helper()
	select {
	case ev, ok := <-m.orch.Changes():
		if !ok {
			t.Fatal("subscription closed")
		}
		m.Update(conversationChangedMsg{Event: ev})
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for conversation change")
	}
}
