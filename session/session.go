// Package session holds the conversation state for one interactive chat:
// an append-only log of role-tagged messages and at most one grounding
// document. Nothing is persisted; Reset is the only way to clear state.
package session

// Role tags a message author.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single conversation turn. Immutable once appended.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// GroundingKind identifies the source of a grounding document.
type GroundingKind int

const (
	GroundingNone GroundingKind = iota
	GroundingPDF
	GroundingTranscript
)

// Grounding is the document prefixed into prompts to give the model context
// beyond the chat history. Absence is represented by the session holding no
// grounding at all, never by an empty-string sentinel.
type Grounding struct {
	Kind         GroundingKind
	Text         string
	Instructions string
	Truncated    bool
}

// Session owns the message log and grounding state for one conversation.
// Single-owner: one interaction drives it at a time, so no locking.
type Session struct {
	messages         []Message
	grounding        *Grounding
	requireGrounding bool
}

// New creates an empty session. When requireGrounding is set, posting is
// disabled until a grounding document has been loaded.
func New(requireGrounding bool) *Session {
	return &Session{requireGrounding: requireGrounding}
}

// LoadGrounding sets the grounding document. The document can be loaded at
// most once per session: repeated calls are no-ops and report false, leaving
// the first successful load in place.
func (s *Session) LoadGrounding(g Grounding) bool {
	if s.grounding != nil {
		return false
	}
	if g.Kind == GroundingNone {
		return false
	}
	s.grounding = &g
	return true
}

// Grounding returns the loaded grounding document, if any.
func (s *Session) Grounding() (Grounding, bool) {
	if s.grounding == nil {
		return Grounding{}, false
	}
	return *s.grounding, true
}

// CanPost reports whether user input is currently accepted. It is false only
// when grounding is required and not yet loaded, mirroring a disabled input
// control.
func (s *Session) CanPost() bool {
	return !s.requireGrounding || s.grounding != nil
}

func (s *Session) AddUserMessage(content string) {
	s.messages = append(s.messages, Message{Role: RoleUser, Content: content})
}

func (s *Session) AddAssistantMessage(content string) {
	s.messages = append(s.messages, Message{Role: RoleAssistant, Content: content})
}

// Messages returns the chronological message log as a copy.
func (s *Session) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Len returns the number of messages in the log.
func (s *Session) Len() int {
	return len(s.messages)
}

// Reset clears all messages and the grounding document, returning the
// session to its initial empty state.
func (s *Session) Reset() {
	s.messages = nil
	s.grounding = nil
}
