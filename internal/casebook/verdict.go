package casebook

import "fmt"

// VerdictType is the closed set of verdicts a juror can deliver.
type VerdictType string

const (
	Guilty    VerdictType = "guilty"
	NotGuilty VerdictType = "not_guilty"
	Mixed     VerdictType = "mixed"
)

// AllVerdicts returns every verdict type in display order.
func AllVerdicts() []VerdictType {
	return []VerdictType{Guilty, NotGuilty, Mixed}
}

// Valid reports whether v is one of the known verdict types.
func (v VerdictType) Valid() bool {
	switch v {
	case Guilty, NotGuilty, Mixed:
		return true
	default:
		return false
	}
}

// DisplayName returns a human-readable label for the verdict type.
func (v VerdictType) DisplayName() string {
	switch v {
	case Guilty:
		return "Guilty"
	case NotGuilty:
		return "Not Guilty"
	case Mixed:
		return "Mixed"
	default:
		return string(v)
	}
}

// Shortcut returns the single-key shortcut used by the verdict picker.
func (v VerdictType) Shortcut() string {
	switch v {
	case Guilty:
		return "g"
	case NotGuilty:
		return "n"
	case Mixed:
		return "m"
	default:
		return ""
	}
}

// ParseVerdict converts a user-supplied string into a VerdictType.
// Both the wire value ("not_guilty") and the dashed form ("not-guilty") are accepted.
func ParseVerdict(s string) (VerdictType, error) {
	switch s {
	case "guilty":
		return Guilty, nil
	case "not_guilty", "not-guilty":
		return NotGuilty, nil
	case "mixed":
		return Mixed, nil
	}
	return "", fmt.Errorf("unknown verdict %q: must be guilty, not_guilty or mixed", s)
}
