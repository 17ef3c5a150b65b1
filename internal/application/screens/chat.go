package screens

import (
	"context"
	"sync"

	"github.com/zatekoja/arovia/web/internal/domain/entities"
	"github.com/zatekoja/arovia/web/internal/infrastructure/clients/arovia"
	apperrors "github.com/zatekoja/arovia/web/pkg/errors"
)

// ChatFallback is appended as the assistant's turn when a message fails
const ChatFallback = "I'm sorry beta, I couldn't understand that. Can you ask again?"

// ChatGreeting is shown while the transcript is empty
const ChatGreeting = "Namaste beta! I am your Dadi. Tell me, what is troubling you today?"

// ChatView is the chat screen's state
type ChatView struct {
	Transcript []entities.ChatMessage `json:"transcript"`
	Greeting   string                 `json:"greeting,omitempty"`
	Sending    ActionState            `json:"sending"`
}

// DadiChat is a turn-based conversation with the assistant. The transcript
// lives only as long as the activation.
type DadiChat struct {
	base

	sending Action

	mu         sync.RWMutex
	transcript []entities.ChatMessage
}

func NewDadiChat(deps Deps) *DadiChat {
	return &DadiChat{base: newBase(deps)}
}

func (s *DadiChat) Path() string  { return PathDadiChat }
func (s *DadiChat) Title() string { return "Dadi Chatbot" }

func (s *DadiChat) Activate(ctx context.Context) {}

// Send appends the user's message, asks the assistant and appends its reply
// or the fallback. Whitespace-only input is ignored.
func (s *DadiChat) Send(ctx context.Context, text string) error {
	if blank(text) {
		return nil
	}
	if !s.sending.Begin() {
		return ErrBusy
	}

	s.appendMessage(entities.ChatRoleUser, text)

	reqCtx, done := s.activation.Bind(ctx)
	defer done()

	resp, err := s.deps.API.SendChat(reqCtx, entities.ChatRequest{Message: text, UserID: s.deps.UserID})
	if !s.Live() {
		s.sending.Abandon()
		return apperrors.NewCanceledError("screen left before reply arrived", err)
	}
	s.sending.Settle(err)
	if err != nil {
		s.fail(ctx, arovia.OpSendChat, err)
		s.appendMessage(entities.ChatRoleAssistant, ChatFallback)
		return err
	}

	s.appendMessage(entities.ChatRoleAssistant, resp.Response)
	return nil
}

func (s *DadiChat) appendMessage(role entities.ChatRole, text string) {
	s.mu.Lock()
	s.transcript = append(s.transcript, entities.ChatMessage{Role: role, Text: text})
	s.mu.Unlock()
}

// Transcript returns a copy of the conversation so far
func (s *DadiChat) Transcript() []entities.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.ChatMessage, len(s.transcript))
	copy(out, s.transcript)
	return out
}

func (s *DadiChat) View() interface{} {
	view := ChatView{Transcript: s.Transcript(), Sending: s.sending.State()}
	if len(view.Transcript) == 0 {
		view.Greeting = ChatGreeting
	}
	return view
}
