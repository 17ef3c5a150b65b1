package entities

// ChatRole identifies who authored a transcript entry
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one transcript entry
type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

// ChatRequest is the POST /chat/dadi payload
type ChatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// ChatResponse is the POST /chat/dadi reply
type ChatResponse struct {
	Response string `json:"response"`
	ChatID   string `json:"chat_id,omitempty"`
}
