// Package conversation is the in-process conversation backend: it keeps chats in
// memory, produces replies through a Responder and announces conversation
// switches on a Bus.
package conversation

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nicorai/nicorai/internal/dynview"
	apperrors "github.com/nicorai/nicorai/internal/errors"
	"github.com/nicorai/nicorai/internal/logger"
)

// Role identifies the author of a message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// maxTitleLength bounds chat titles derived from the first message
const maxTitleLength = 40

// Message is one entry of a transcript
type Message struct {
	ID        string
	Role      Role
	Content   string
	View      *dynview.View
	CreatedAt time.Time
}

// Chat is one conversation
type Chat struct {
	ID        string
	Title     string
	Messages  []Message
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ChatSummary is the history-list projection of a chat
type ChatSummary struct {
	ID           string
	Title        string
	MessageCount int
	UpdatedAt    time.Time
}

// Reply is the resolved result of sending a message
type Reply struct {
	ResponseID string
	ChatID     string
	Text       string
	View       *dynview.View
	Model      string
}

// Responder produces the assistant side of an exchange
type Responder interface {
	Respond(ctx context.Context, history []Message, query string) (Reply, error)
}

// Service holds every chat and tracks the current one
type Service struct {
	mu        sync.RWMutex
	chats     map[string]*Chat
	currentID string
	responder Responder
	bus       *Bus
	now       func() time.Time
}

// NewService creates a service that answers with r
func NewService(r Responder) *Service {
	return &Service{
		chats:     make(map[string]*Chat),
		responder: r,
		bus:       NewBus(),
		now:       time.Now,
	}
}

// Bus returns the conversation-changed bus
func (s *Service) Bus() *Bus {
	return s.bus
}

// Subscribe registers a conversation-changed listener
func (s *Service) Subscribe() *Subscription {
	return s.bus.Subscribe()
}

// Publish announces a conversation change
func (s *Service) Publish(ev Changed) {
	s.bus.Publish(ev)
}

// CurrentChatID returns the active chat, or "" when none exists yet
func (s *Service) CurrentChatID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentID
}

// CurrentChatMessages returns a copy of the active chat's transcript
func (s *Service) CurrentChatMessages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	chat := s.chats[s.currentID]
	if chat == nil {
		return nil
	}
	return slices.Clone(chat.Messages)
}

// MessageCount returns the length of the active chat's transcript
func (s *Service) MessageCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if chat := s.chats[s.currentID]; chat != nil {
		return len(chat.Messages)
	}
	return 0
}

// CreateNewChat starts an empty chat and makes it current. It does not publish;
// callers announce the switch when they are ready.
func (s *Service) CreateNewChat() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createLocked()
}

func (s *Service) createLocked() string {
	now := s.now()
	id := uuid.New().String()
	s.chats[id] = &Chat{ID: id, Title: "New chat", CreatedAt: now, UpdatedAt: now}
	s.currentID = id
	logger.WithChat(id).Info("chat created")
	return id
}

// SelectChat makes an existing chat current and publishes the switch
func (s *Service) SelectChat(id string) error {
	s.mu.Lock()
	chat := s.chats[id]
	if chat == nil {
		s.mu.Unlock()
		return apperrors.ChatNotFound(id)
	}
	s.currentID = id
	ev := Changed{ChatID: id, Messages: slices.Clone(chat.Messages)}
	s.mu.Unlock()

	logger.WithChat(id).Debug("chat selected", "messages", len(ev.Messages))
	s.bus.Publish(ev)
	return nil
}

// Chats lists every chat, most recently updated first
func (s *Service) Chats() []ChatSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ChatSummary, 0, len(s.chats))
	for _, c := range s.chats {
		out = append(out, ChatSummary{ID: c.ID, Title: c.Title, MessageCount: len(c.Messages), UpdatedAt: c.UpdatedAt})
	}
	slices.SortFunc(out, func(a, b ChatSummary) int {
		if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Send appends text to the current chat (creating one if needed), asks the
// responder for a reply and records it. The returned Reply is fully resolved.
// On a responder failure the question stays in the transcript without a
// reply, so the chat shows what was asked.
func (s *Service) Send(ctx context.Context, text string) (Reply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Reply{}, apperrors.EmptyMessage()
	}

	s.mu.Lock()
	if s.chats[s.currentID] == nil {
		s.createLocked()
	}
	chatID := s.currentID
	chat := s.chats[chatID]
	chat.Messages = append(chat.Messages, Message{ID: uuid.New().String(), Role: RoleUser, Content: text, CreatedAt: s.now()})
	if len(chat.Messages) == 1 {
		chat.Title = titleFrom(text)
	}
	chat.UpdatedAt = s.now()
	history := slices.Clone(chat.Messages)
	s.mu.Unlock()

	log := logger.WithChat(chatID)
	log.Debug("sending message", "length", len(text))

	reply, err := s.responder.Respond(ctx, history, text)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
			return Reply{}, apperrors.ResponseTimeout(chatID)
		}
		log.Error("responder failed", "error", err)
		return Reply{}, apperrors.ResponderFailed(chatID, err)
	}
	reply.ChatID = chatID
	if reply.ResponseID == "" {
		reply.ResponseID = uuid.New().String()
	}

	s.mu.Lock()
	if chat := s.chats[chatID]; chat != nil {
		chat.Messages = append(chat.Messages, Message{
			ID:        reply.ResponseID,
			Role:      RoleAssistant,
			Content:   reply.Text,
			View:      reply.View,
			CreatedAt: s.now(),
		})
		chat.UpdatedAt = s.now()
	}
	s.mu.Unlock()

	log.Info("reply recorded", "responseID", reply.ResponseID, "hasView", reply.View != nil)
	return reply, nil
}

// titleFrom derives a chat title from the opening message
func titleFrom(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	runes := []rune(strings.TrimSpace(line))
	if len(runes) > maxTitleLength {
		return string(runes[:maxTitleLength-1]) + "…"
	}
	return string(runes)
}
