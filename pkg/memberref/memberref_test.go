package memberref

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorerFromWire(t *testing.T) {
	ref := ScorerFromWire("member-42")
	id, ok := ref.MemberID()
	assert.True(t, ok)
	assert.Equal(t, "member-42", id)
	assert.Equal(t, KindMember, ref.Kind())

	assert.Equal(t, KindUnknown, ScorerFromWire("unknown").Kind())
	assert.Equal(t, KindOwnGoal, ScorerFromWire("own-goal").Kind())
}

func TestAssisterFromWire(t *testing.T) {
	assert.Equal(t, KindNone, AssisterFromWire(nil).Kind())

	none := "none"
	assert.Equal(t, KindNone, AssisterFromWire(&none).Kind())

	unknown := "unknown"
	assert.Equal(t, KindUnknown, AssisterFromWire(&unknown).Kind())

	id := "member-7"
	ref := AssisterFromWire(&id)
	got, ok := ref.MemberID()
	assert.True(t, ok)
	assert.Equal(t, "member-7", got)
}

func TestWireRoundTrip(t *testing.T) {
	assert.Equal(t, "unknown", Unknown().Wire())
	assert.Equal(t, "own-goal", OwnGoal().Wire())
	assert.Equal(t, "member-1", Member("member-1").Wire())

	assert.Nil(t, None().WireOptional())
	if w := Member("member-1").WireOptional(); assert.NotNil(t, w) {
		assert.Equal(t, "member-1", *w)
	}
}

func TestSentinelsAreNotMembers(t *testing.T) {
	for _, ref := range []Ref{Unknown(), OwnGoal(), None()} {
		_, ok := ref.MemberID()
		assert.False(t, ok)
	}
}
