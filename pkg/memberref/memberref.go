// Package memberref models scorer and assister references on match events.
// The stored documents use the sentinel strings "unknown", "own-goal" and
// "none" alongside real member ids; this package keeps those wire values intact
// while giving the rest of the code a tagged type instead of magic strings.
package memberref

const (
	wireUnknown = "unknown"
	wireOwnGoal = "own-goal"
	wireNone    = "none"
)

type Kind int

const (
	// KindMember references a real member document.
	KindMember Kind = iota
	// KindUnknown marks a goal whose scorer was not identified.
	KindUnknown
	// KindOwnGoal marks a goal attributed to the opposing side as a whole.
	KindOwnGoal
	// KindNone marks the absence of a reference (assists only).
	KindNone
)

// Ref is a scorer or assister reference.
type Ref struct {
	kind Kind
	id   string
}

func Member(id string) Ref { return Ref{kind: KindMember, id: id} }
func Unknown() Ref         { return Ref{kind: KindUnknown} }
func OwnGoal() Ref         { return Ref{kind: KindOwnGoal} }
func None() Ref            { return Ref{kind: KindNone} }

func (r Ref) Kind() Kind { return r.kind }

// MemberID returns the referenced member id, and whether the reference is a
// real member at all.
func (r Ref) MemberID() (string, bool) {
	if r.kind == KindMember {
		return r.id, true
	}
	return "", false
}

// ScorerFromWire interprets a stored memberId field.
func ScorerFromWire(value string) Ref {
	switch value {
	case wireUnknown:
		return Unknown()
	case wireOwnGoal:
		return OwnGoal()
	default:
		return Member(value)
	}
}

// AssisterFromWire interprets a stored assisterId field, which may be absent.
func AssisterFromWire(value *string) Ref {
	if value == nil {
		return None()
	}
	switch *value {
	case wireNone, "":
		return None()
	case wireUnknown:
		return Unknown()
	default:
		return Member(*value)
	}
}

// Wire returns the stored representation of a scorer reference.
func (r Ref) Wire() string {
	switch r.kind {
	case KindUnknown:
		return wireUnknown
	case KindOwnGoal:
		return wireOwnGoal
	case KindNone:
		return wireNone
	default:
		return r.id
	}
}

// WireOptional returns the stored representation of an assister reference,
// nil when there is none.
func (r Ref) WireOptional() *string {
	if r.kind == KindNone {
		return nil
	}
	w := r.Wire()
	return &w
}
