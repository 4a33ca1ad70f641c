package models

import "strings"

// Framework identifies the CSS framework a host project is themed with.
type Framework int

const (
	// FrameworkNone means no framework was chosen. It is also the value of
	// every identifier the add-on does not know about.
	FrameworkNone Framework = iota
	FrameworkBootstrap
	FrameworkTailwind
	FrameworkBulma
)

// Persisted identifiers of the supported frameworks.
const (
	BootstrapIdentifier = "bootstrap"
	TailwindIdentifier  = "tailwind"
	BulmaIdentifier     = "bulma"
)

// Frameworks lists every framework that has an installer, in menu order.
var Frameworks = []Framework{
	FrameworkBootstrap,
	FrameworkTailwind,
	FrameworkBulma,
}

// ParseFramework maps a persisted identifier to a [Framework]. Matching is
// case-insensitive; unrecognised identifiers yield [FrameworkNone].
func ParseFramework(raw string) Framework {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case BootstrapIdentifier:
		return FrameworkBootstrap
	case TailwindIdentifier:
		return FrameworkTailwind
	case BulmaIdentifier:
		return FrameworkBulma
	default:
		return FrameworkNone
	}
}

// String returns the persisted identifier. [FrameworkNone] is persisted as
// the empty string.
func (f Framework) String() string {
	switch f {
	case FrameworkBootstrap:
		return BootstrapIdentifier
	case FrameworkTailwind:
		return TailwindIdentifier
	case FrameworkBulma:
		return BulmaIdentifier
	default:
		return ""
	}
}

// Label returns a human readable name.
func (f Framework) Label() string {
	switch f {
	case FrameworkBootstrap:
		return "Bootstrap"
	case FrameworkTailwind:
		return "Tailwind CSS"
	case FrameworkBulma:
		return "Bulma"
	default:
		return "None"
	}
}
