package chatbot

import (
	"fmt"

	"github.com/openai/openai-go"
)

// Role is the role for a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is the provider-agnostic chat message DTO.
type Message struct {
	Role    Role
	Content string
}

// Conversation is the fixed system-then-user pair sent in one request.
type Conversation struct {
	system Message
	user   Message
}

// NewConversation builds the two-message conversation for one question.
func NewConversation(systemPrompt, userInput string) Conversation {
	return Conversation{
		system: Message{Role: RoleSystem, Content: systemPrompt},
		user:   Message{Role: RoleUser, Content: userInput},
	}
}

// Messages returns a copy of the conversation in send order.
func (c Conversation) Messages() []Message {
	return []Message{c.system, c.user}
}

func toOpenAIMessages(messages []Message) ([]openai.ChatCompletionMessageParamUnion, error) {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for i, msg := range messages {
		switch msg.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(msg.Content))
		case RoleUser:
			out = append(out, openai.UserMessage(msg.Content))
		case RoleAssistant:
			out = append(out, openai.AssistantMessage(msg.Content))
		default:
			return nil, fmt.Errorf("invalid message role at index %d: %q", i, msg.Role)
		}
	}
	return out, nil
}
