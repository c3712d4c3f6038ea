package ui

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nicorai/nicorai/internal/conversation"
	"github.com/nicorai/nicorai/internal/dynview"
)

func testChat() *Chat {
	c := NewChat()
	c.SetSize(80, 30)
	return c
}

func tableView() *dynview.View {
	return &dynview.View{
		Kind:  dynview.KindTable,
		Title: "Stack",
		Data: dynview.Data{
			Columns: []string{"Layer", "Tech"},
			Rows:    [][]string{{"API", "Go"}, {"UI", "React"}},
		},
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
	}{
		{"short text within width", "hello world", 20},
		{"long text needs wrap", "this is a longer text that needs wrapping", 20},
		{"narrow", "one two three four five", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.text, tt.width)
			for _, line := range strings.Split(got, "\n") {
				if w := lipgloss.Width(line); w > tt.width {
					t.Errorf("line %q is %d wide, limit %d", line, w, tt.width)
				}
			}
			if strings.Join(strings.Fields(got), " ") != tt.text {
				t.Errorf("wrapping lost words: %q", got)
			}
		})
	}

	if got := wrapText("keep me", 0); got != "keep me" {
		t.Errorf("zero width should return the input, got %q", got)
	}
}

func TestRenderInlineMarkdown(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		notWant string
	}{
		{"bold", "a **strong** word", "strong", "**"},
		{"italic", "an _emphasized_ word", "emphasized", "_emphasized_"},
		{"code", "run `go test` now", "go test", "`"},
		{"link", "see [docs](https://example.com)", "docs (https://example.com)", "]("},
		{"identifier untouched", "call foo_bar_baz here", "foo_bar_baz", ""},
		{"bold inside code kept", "`**raw**`", "**raw**", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripANSI(renderInlineMarkdown(tt.in))
			if !strings.Contains(got, tt.want) {
				t.Errorf("renderInlineMarkdown(%q) = %q, want it to contain %q", tt.in, got, tt.want)
			}
			if tt.notWant != "" && strings.Contains(got, tt.notWant) {
				t.Errorf("renderInlineMarkdown(%q) = %q, should not contain %q", tt.in, got, tt.notWant)
			}
		})
	}
}

func TestRenderMarkdownLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"# Title", "Title"},
		{"## Section", "Section"},
		{"- item", "• item"},
		{"3. third", "3. third"},
		{"> quoted", "quoted"},
		{"---", "─"},
	}
	for _, tt := range tests {
		got := stripANSI(renderMarkdownLine(tt.in, 40))
		if !strings.Contains(got, tt.want) {
			t.Errorf("renderMarkdownLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderMarkdown_CodeBlock(t *testing.T) {
	content := "Intro\n```go\nfunc main() {}\n```\nOutro"
	got := stripANSI(renderMarkdown(content, 60))
	for _, want := range []string{"Intro", "func main() {}", "Outro"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
	if strings.Contains(got, "```") {
		t.Error("fences should not be rendered")
	}
}

func TestRenderMarkdown_UnterminatedBlock(t *testing.T) {
	got := stripANSI(renderMarkdown("```\nx := 1", 60))
	if !strings.Contains(got, "x := 1") {
		t.Errorf("unterminated block content lost: %q", got)
	}
}

func TestNewChat_Landing(t *testing.T) {
	c := testChat()
	text := c.TranscriptText()
	if !strings.Contains(text, "Welcome to nicorai") {
		t.Errorf("new chat should show the landing screen, got:\n%s", text)
	}
	for _, s := range landingSuggestions {
		if !strings.Contains(text, s) {
			t.Errorf("landing should suggest %q", s)
		}
	}

	c.SetLanding(false)
	if !strings.Contains(c.TranscriptText(), "Start a conversation...") {
		t.Error("empty chat without landing should show the placeholder")
	}
}

func TestChat_Messages(t *testing.T) {
	c := testChat()
	c.SetMessages([]conversation.Message{
		{ID: "1", Role: conversation.RoleUser, Content: "What do you build?"},
		{ID: "2", Role: conversation.RoleAssistant, Content: "Mostly **APIs**."},
	})

	text := c.TranscriptText()
	if strings.Contains(text, "Welcome to nicorai") {
		t.Error("landing should be hidden once there are messages")
	}
	for _, want := range []string{"You:", "What do you build?", "nicorai:", "Mostly APIs."} {
		if !strings.Contains(text, want) {
			t.Errorf("transcript missing %q:\n%s", want, text)
		}
	}

	last := c.LastResponse()
	if last == nil || last.ID != "2" {
		t.Errorf("LastResponse() = %+v, want message 2", last)
	}
}

func TestChat_AddUserMessage(t *testing.T) {
	c := testChat()
	c.AddUserMessage("hello there")

	if len(c.Messages()) != 1 || c.Messages()[0].Role != conversation.RoleUser {
		t.Fatalf("Messages() = %+v", c.Messages())
	}
	if c.LastResponse() != nil {
		t.Error("no assistant message yet")
	}
}

func TestChat_DynamicViews(t *testing.T) {
	c := testChat()
	v := tableView()

	c.SetDynamicViews(v, nil)
	text := c.TranscriptText()
	for _, want := range []string{"Stack", "Layer", "React", "[ctrl+f]", "[ctrl+d]"} {
		if !strings.Contains(text, want) {
			t.Errorf("pending view missing %q:\n%s", want, text)
		}
	}

	c.SetDynamicViews(nil, v)
	text = c.TranscriptText()
	if !strings.Contains(text, "Response hidden: Stack (2 rows)") || !strings.Contains(text, "[ctrl+r]") {
		t.Errorf("closed hint missing:\n%s", text)
	}
	if strings.Contains(text, "React") {
		t.Error("closed view body should not be drawn")
	}

	// Pending wins when both are set
	c.SetDynamicViews(v, v)
	if strings.Contains(c.TranscriptText(), "Response hidden") {
		t.Error("pending view should take precedence over the closed hint")
	}
}

func TestChat_Waiting(t *testing.T) {
	c := testChat()
	c.SetFocused(true)
	c.SetWaitingWithStart(true, time.Now().Add(-3*time.Second))

	if !c.IsWaiting() {
		t.Fatal("chat should be waiting")
	}
	if !strings.Contains(c.TranscriptText(), "(3s)") {
		t.Errorf("waiting status should show elapsed time:\n%s", c.TranscriptText())
	}

	// Typing is blocked while waiting
	c.Composer().SetValue("draft")
	c.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if got := c.Composer().Value(); got != "draft" {
		t.Errorf("composer changed while waiting: %q", got)
	}

	if cmd := c.handleStopwatchTick(); cmd == nil {
		t.Error("stopwatch should keep ticking while waiting")
	}

	c.SetWaiting(false)
	if cmd := c.handleStopwatchTick(); cmd != nil {
		t.Error("stopwatch should stop after waiting ends")
	}
}

func TestChat_CompletionFlash(t *testing.T) {
	c := testChat()
	if c.IsCompletionFlashing() {
		t.Fatal("flash should start inactive")
	}

	if cmd := c.StartCompletionFlash(); cmd == nil {
		t.Fatal("StartCompletionFlash should schedule a tick")
	}
	if !strings.Contains(c.TranscriptText(), "Reply received") {
		t.Error("flash should be rendered")
	}

	ticks := 0
	for c.IsCompletionFlashing() && ticks < 10 {
		c.Update(CompletionFlashTickMsg(time.Now()))
		ticks++
	}
	if ticks != 3 {
		t.Errorf("flash lasted %d ticks, want 3", ticks)
	}
	if strings.Contains(c.TranscriptText(), "Reply received") {
		t.Error("flash should be gone after the last frame")
	}
}

func TestChat_UnfocusedIgnoresKeys(t *testing.T) {
	c := testChat()
	c.Composer().SetValue("draft")
	_, cmd := c.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd != nil {
		t.Error("unfocused chat should ignore keys")
	}
	if c.Composer().Value() != "draft" {
		t.Error("unfocused chat should not edit the composer")
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{5 * time.Second, "5s"},
		{59 * time.Second, "59s"},
		{90 * time.Second, "1m 30s"},
		{10 * time.Minute, "10m 0s"},
	}
	for _, tt := range tests {
		if got := formatElapsed(tt.d); got != tt.want {
			t.Errorf("formatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestComposer(t *testing.T) {
	c := NewComposer()
	c.SetWidth(60)

	if c.IsFocused() {
		t.Error("composer should start blurred")
	}
	c.SetValue("  hi  ")
	if c.Value() != "hi" {
		t.Errorf("Value() = %q, want trimmed text", c.Value())
	}

	if _, cmd := c.Update(tea.KeyPressMsg{Code: 'x', Text: "x"}); cmd != nil {
		t.Error("blurred composer should ignore input")
	}

	c.SetFocused(true)
	if !c.IsFocused() {
		t.Error("composer should be focused")
	}

	c.Reset()
	if c.Value() != "" {
		t.Errorf("Reset left %q", c.Value())
	}
	if c.View() == "" {
		t.Error("composer should render")
	}
}
