package orchestrator

import (
	"log/slog"

	"github.com/nicorai/nicorai/internal/conversation"
	"github.com/nicorai/nicorai/internal/dynview"
	"github.com/nicorai/nicorai/internal/logger"
)

// ChatCreator starts a new, empty conversation
type ChatCreator interface {
	CreateNewChat() string
}

// Notifier announces conversation changes
type Notifier interface {
	Publish(conversation.Changed)
}

// Subscriber hands out conversation-changed subscriptions
type Subscriber interface {
	Subscribe() *conversation.Subscription
}

// Backend is everything the orchestrator needs from the conversation service.
type Backend interface {
	Transcript
	ChatCreator
	Notifier
	Subscriber
}

// Orchestrator owns the presentation snapshot and applies events in the order
// they are delivered. It is driven from a single event loop and is not safe
// for concurrent use.
type Orchestrator struct {
	state        State
	backend      Backend
	sub          *conversation.Subscription
	compactWidth int
	log          *slog.Logger
}

// New creates an orchestrator in the initial landing state. compactWidth <= 0
// selects DefaultCompactWidth.
func New(backend Backend, compactWidth int) *Orchestrator {
	if compactWidth <= 0 {
		compactWidth = DefaultCompactWidth
	}
	return &Orchestrator{
		state:        Initial(),
		backend:      backend,
		compactWidth: compactWidth,
		log:          logger.WithComponent("orchestrator"),
	}
}

// Snapshot returns the current state. Callers get a copy.
func (o *Orchestrator) Snapshot() State {
	return o.state
}

// Mode returns the derived presentation mode
func (o *Orchestrator) Mode() Mode {
	return o.state.Mode()
}

// Surfaces returns the render selection for the current state
func (o *Orchestrator) Surfaces(l Layout) Surfaces {
	return Select(o.state, l)
}

// CompactWidth returns the compact-viewport breakpoint in columns
func (o *Orchestrator) CompactWidth() int {
	return o.compactWidth
}

// SetCompactWidth changes the breakpoint. It takes effect on the next Resize.
func (o *Orchestrator) SetCompactWidth(w int) {
	if w <= 0 {
		w = DefaultCompactWidth
	}
	o.compactWidth = w
}

// Dispatch applies ev and returns the new snapshot.
func (o *Orchestrator) Dispatch(ev Event) State {
	prev := o.state
	var tr Transcript
	if o.backend != nil {
		tr = o.backend
	}
	next := Reduce(prev, ev, tr)

	if err := CheckInvariants(next); err != nil {
		// Reduce normalizes every result, so this only fires on a bug.
		o.log.Error("transition broke an invariant, keeping previous state",
			"event", EventName(ev), "error", err)
		return prev
	}

	o.state = next
	if !prev.Equal(next) {
		o.log.Debug("transition", "event", EventName(ev),
			"from", prev.Mode().String(), "to", next.Mode().String(), "state", next.String())
	}
	return next
}

// Start registers the conversation-changed subscription and mounts. Calling
// Start again while running does nothing.
func (o *Orchestrator) Start() {
	if o.sub != nil {
		o.log.Debug("start ignored, already subscribed")
		return
	}
	if o.backend != nil {
		o.sub = o.backend.Subscribe()
	}
	o.Mount()
}

// Stop releases the subscription. Safe to call more than once.
func (o *Orchestrator) Stop() {
	if o.sub == nil {
		return
	}
	o.sub.Close()
	o.sub = nil
	o.log.Debug("stopped")
}

// Running reports whether Start has subscribed
func (o *Orchestrator) Running() bool {
	return o.sub != nil
}

// Changes returns the subscription channel, or nil before Start.
func (o *Orchestrator) Changes() <-chan conversation.Changed {
	if o.sub == nil {
		return nil
	}
	return o.sub.C
}

// Mount resets to the landing presentation
func (o *Orchestrator) Mount() State {
	return o.Dispatch(Mount{})
}

// ConversationChanged handles a notification from the subscription
func (o *Orchestrator) ConversationChanged(ev conversation.Changed) State {
	return o.Dispatch(ConversationChanged{ChatID: ev.ChatID, MessageCount: len(ev.Messages)})
}

// MessageSent handles a composer completion or close request
func (o *Orchestrator) MessageSent(isClosing bool, view *dynview.View, isClosed bool) State {
	return o.Dispatch(MessageSent{IsClosing: isClosing, View: view, IsClosed: isClosed})
}

// NavClick activates a navigable view
func (o *Orchestrator) NavClick(viewID string) State {
	return o.Dispatch(NavClick{ViewID: viewID})
}

// ToggleSidebar records the navigation panel state
func (o *Orchestrator) ToggleSidebar(expanded bool) State {
	return o.Dispatch(SidebarToggled{Expanded: expanded})
}

// CloseView closes the active view
func (o *Orchestrator) CloseView() State {
	return o.Dispatch(CloseView{})
}

// KeyPress handles a global key
func (o *Orchestrator) KeyPress(key string) State {
	return o.Dispatch(KeyPress{Key: key})
}

// Escape is KeyPress("esc")
func (o *Orchestrator) Escape() State {
	return o.KeyPress("esc")
}

// StartChatting creates a conversation, announces it and shows the landing
// chat. The announcement comes back through the subscription as an empty
// ConversationChanged.
func (o *Orchestrator) StartChatting() State {
	if o.backend != nil {
		id := o.backend.CreateNewChat()
		o.backend.Publish(conversation.Changed{ChatID: id})
		o.log.Info("started new chat from idle", "chatID", id)
	}
	return o.Dispatch(StartChatting{})
}

// Resize updates the compact-viewport flag for a new width
func (o *Orchestrator) Resize(width int) State {
	return o.Dispatch(ViewportResized{Width: width, Breakpoint: o.compactWidth})
}
