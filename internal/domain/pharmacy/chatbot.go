package pharmacy

import (
	"fmt"
	"strings"
)

const fallbackReply = "I'm sorry, I don't understand. You can ask me to 'list all drugs' " +
	"or ask about a specific drug's inventory, for example: 'how much aspirin do you have?'"

// Chatbot answers stock questions by keyword matching against the inventory.
type Chatbot struct {
	inv *Inventory
}

// NewChatbot creates a chatbot backed by the given inventory.
func NewChatbot(inv *Inventory) *Chatbot {
	return &Chatbot{inv: inv}
}

// Reply produces the answer for one message. Matching is case-insensitive;
// an inventory-wide listing wins over individual drug mentions, and the
// first matching drug in inventory order answers the rest.
func (b *Chatbot) Reply(message string) string {
	msg := strings.ToLower(message)

	if strings.Contains(msg, "list all") || strings.Contains(msg, "inventory") {
		var sb strings.Builder
		sb.WriteString("Here is the current drug inventory:")
		for _, d := range b.inv.List() {
			sb.WriteString(fmt.Sprintf("\n- %s: %d", d.Name, d.Quantity))
		}
		return sb.String()
	}

	for _, d := range b.inv.List() {
		if strings.Contains(msg, strings.ToLower(d.Name)) {
			return fmt.Sprintf("We have %d units of %s in stock.", d.Quantity, d.Name)
		}
	}

	return fallbackReply
}
