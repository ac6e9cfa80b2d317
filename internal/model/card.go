package model

// Text is a tagged text node inside a card element.
// Tag is "plain_text" for titles and "lark_md" for markdown body blocks.
type Text struct {
	Tag     string `json:"tag"`
	Content string `json:"content"`
}

// Element is one div block in the card body.
type Element struct {
	Tag  string `json:"tag"`
	Text Text   `json:"text"`
}

// CardConfig holds card-level display settings.
type CardConfig struct {
	WideScreenMode bool `json:"wide_screen_mode"`
}

// Header is the colored title bar of the card. Template names one of the
// endpoint's fixed color themes.
type Header struct {
	Template string `json:"template"`
	Title    Text   `json:"title"`
}

// Card is the assembled interactive-card document: a header element followed
// by one element per rendered record, in input order. Assembled once and
// never mutated afterward.
type Card struct {
	Config   CardConfig `json:"config"`
	Header   Header     `json:"header"`
	Elements []Element  `json:"elements"`
}

// Message is the webhook envelope wrapping a card.
type Message struct {
	MsgType string `json:"msg_type"`
	Card    Card   `json:"card"`
}

// NewMessage wraps a card in the interactive-message envelope.
func NewMessage(c Card) Message {
	return Message{MsgType: "interactive", Card: c}
}
