package cfg

import (
	"log/slog"
	"strings"
)

// Kind discriminates the three statement shapes.
//
// The declaration order of the constants is the fixed output group order:
// commands sort before binds, which sort before settings. [Statement.Compare]
// relies on the ordinal values.
type Kind int

const (
	// KindCommand is a bare console command with no arguments.
	KindCommand Kind = iota

	// KindBind is a key-bind directive: bind "<key>" "<action>".
	KindBind

	// KindSetting is a key/value setting: <key> "<value>".
	KindSetting
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindBind:
		return "bind"
	case KindSetting:
		return "setting"
	default:
		return "unknown"
	}
}

// ParseKind parses a string representation of a statement kind.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "command":
		return KindCommand, true
	case "bind":
		return KindBind, true
	case "setting":
		return KindSetting, true
	default:
		return KindCommand, false
	}
}

// Statement is the parsed unit of one non-empty, non-comment line.
//
// Key is the statement identity within its kind: the command name, the
// setting key, or the bound key. Val is payload: empty for commands, the
// setting value, or the bound action.
type Statement struct {
	Kind Kind
	Key  string
	Val  string
}

// Command returns a bare console command statement.
func Command(name string) Statement {
	return Statement{Kind: KindCommand, Key: name}
}

// Setting returns a key/value setting statement.
func Setting(key, value string) Statement {
	return Statement{Kind: KindSetting, Key: key, Val: value}
}

// Bind returns a key-bind statement mapping key to action.
func Bind(key, action string) Statement {
	return Statement{Kind: KindBind, Key: key, Val: action}
}

// Compare orders statements by kind group (command < bind < setting), then
// lexically by key within a group. Payload never participates: two
// statements with equal (kind, key) compare equal even when their payloads
// differ, which is exactly the identity used for merging.
func (s Statement) Compare(other Statement) int {
	if s.Kind != other.Kind {
		if s.Kind < other.Kind {
			return -1
		}

		return 1
	}

	return strings.Compare(s.Key, other.Key)
}

// SameIdentity reports whether both statements name the same entry for
// merge purposes, ignoring payload.
func (s Statement) SameIdentity(other Statement) bool {
	return s.Kind == other.Kind && s.Key == other.Key
}

// String returns the canonical serialized form of the statement,
// without a trailing newline.
//
// Payloads are written verbatim between the quotes. The grammar has no
// escape sequences, so any escaping here would produce output that
// re-parses to a different payload; the parser guarantees payloads never
// contain a quote character.
func (s Statement) String() string {
	switch s.Kind {
	case KindCommand:
		return s.Key
	case KindBind:
		return `bind "` + s.Key + `" "` + s.Val + `"`
	case KindSetting:
		return s.Key + ` "` + s.Val + `"`
	default:
		return ""
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s Statement) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("kind", s.Kind.String()),
		slog.String("key", s.Key),
	}

	if s.Kind != KindCommand {
		attrs = append(attrs, slog.String("value", s.Val))
	}

	return slog.GroupValue(attrs...)
}
