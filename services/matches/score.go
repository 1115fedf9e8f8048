package matches

import (
	"errors"

	"github.com/sundayfc/club-sync/repos/fsdb"
)

var (
	ErrUnknownEventType = errors.New("unknown match event type")
	ErrUnknownSide      = errors.New("unknown team side")
	// ErrOwnGoalSide rejects own goals for sides C/D, which have no defined
	// opposing side.
	ErrOwnGoalSide = errors.New("own goals are only defined for sides A and B")
)

var eventTypes = map[string]bool{
	fsdb.EventGoal:       true,
	fsdb.EventAssist:     true,
	fsdb.EventYellowCard: true,
	fsdb.EventRedCard:    true,
	fsdb.EventOwnGoal:    true,
}

var sides = map[string]bool{
	fsdb.SideA: true,
	fsdb.SideB: true,
	fsdb.SideC: true,
	fsdb.SideD: true,
}

// validateEvent rejects malformed events before anything is written.
func validateEvent(eventType, team string) error {
	if !eventTypes[eventType] {
		return ErrUnknownEventType
	}
	if !sides[team] {
		return ErrUnknownSide
	}
	if eventType == fsdb.EventOwnGoal && team != fsdb.SideA && team != fsdb.SideB {
		return ErrOwnGoalSide
	}
	return nil
}

// hasScoreEffect reports whether an event type mutates the parent match score.
func hasScoreEffect(eventType string) bool {
	return eventType == fsdb.EventGoal || eventType == fsdb.EventOwnGoal
}

// scoringSide returns which side's score a goal-type event credits. A goal
// credits the event's own side; an own goal credits the opposing side.
func scoringSide(eventType, team string) (string, error) {
	if err := validateEvent(eventType, team); err != nil {
		return "", err
	}

	switch eventType {
	case fsdb.EventGoal:
		return team, nil
	case fsdb.EventOwnGoal:
		if team == fsdb.SideA {
			return fsdb.SideB, nil
		}
		return fsdb.SideA, nil
	}
	return "", ErrUnknownEventType
}

// scorePath maps a side to its match document field.
func scorePath(side string) string {
	switch side {
	case fsdb.SideA:
		return "scoreA"
	case fsdb.SideB:
		return "scoreB"
	case fsdb.SideC:
		return "scoreC"
	default:
		return "scoreD"
	}
}

// applyDelta adjusts a score, never going below zero.
func applyDelta(current, delta int64) int64 {
	next := current + delta
	if next < 0 {
		return 0
	}
	return next
}

// recountScores folds the surviving events of a match into fresh score fields.
// This is the reconciliation pass for drift left by the non-transactional
// event write + score write pair.
func recountScores(events []*fsdb.MatchEvent) map[string]int64 {
	totals := map[string]int64{
		"scoreA": 0,
		"scoreB": 0,
		"scoreC": 0,
		"scoreD": 0,
	}
	for _, event := range events {
		if !hasScoreEffect(event.Type) {
			continue
		}
		side, err := scoringSide(event.Type, event.Team)
		if err != nil {
			continue
		}
		totals[scorePath(side)]++
	}
	return totals
}
