package entity

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is immutable once appended to a history. Assistant content is
// markdown; how it is rendered is the view's business.
type Message struct {
	Role    Role
	Content string
}

// Mode is one of the three chat contexts. The set is closed; histories and
// preset questions are keyed by it.
type Mode string

const (
	ModeGeneral Mode = "general"
	ModeAnalyze Mode = "analyze"
	ModeRewrite Mode = "rewrite"
)

func Modes() []Mode {
	return []Mode{ModeGeneral, ModeAnalyze, ModeRewrite}
}

// Label returns the display name used for tabs and placeholders.
func (m Mode) Label() string {
	switch m {
	case ModeAnalyze:
		return "深度解析"
	case ModeRewrite:
		return "仿写指导"
	default:
		return "自由对话"
	}
}

// ChatHistory maps each mode to its ordered message sequence. One explicit
// field per mode keeps the mode set exhaustive instead of hiding it behind a
// dynamically-keyed map. Histories are append-only for the life of the view.
type ChatHistory struct {
	general []Message
	analyze []Message
	rewrite []Message
}

func (h *ChatHistory) slot(m Mode) *[]Message {
	switch m {
	case ModeAnalyze:
		return &h.analyze
	case ModeRewrite:
		return &h.rewrite
	default:
		return &h.general
	}
}

// Messages returns the history for one mode, oldest first.
func (h *ChatHistory) Messages(m Mode) []Message {
	return *h.slot(m)
}

func (h *ChatHistory) Append(m Mode, msg Message) {
	slot := h.slot(m)
	*slot = append(*slot, msg)
}

func (h *ChatHistory) Len(m Mode) int {
	return len(*h.slot(m))
}
