package generator

import "tradecoach/internal/models"

// Position is the open-position state implied by the decisions so far.
type Position struct {
	Open      bool
	Direction models.Direction
}

// PositionTracker accumulates open-position state as decisions are appended.
type PositionTracker struct {
	pos Position
}

// Current returns the position after every applied decision.
func (t *PositionTracker) Current() Position {
	return t.pos
}

// Apply folds one decision into the tracked position. Entries open (or keep
// open) a position, full exits close it; partial reductions leave it open.
func (t *PositionTracker) Apply(d models.TraderDecision) {
	switch d.Action {
	case models.ActionBuy, models.ActionIncreasePosition:
		dir := d.Direction
		if dir == models.DirectionNone {
			dir = t.pos.Direction
		}
		if dir == models.DirectionNone {
			dir = models.DirectionLong
		}
		t.pos = Position{Open: true, Direction: dir}
	case models.ActionExit, models.ActionSell:
		t.pos = Position{}
	}
}

// PositionFromHistory scans prior decisions from the most recent backwards.
// The last entry or full exit decides whether a position is open; an open
// position takes the nearest stated direction among the entries of its run,
// defaulting to long.
func PositionFromHistory(prior []models.TraderDecision) Position {
	last := -1
	for i := len(prior) - 1; i >= 0; i-- {
		if closesPosition(prior[i].Action) {
			return Position{}
		}
		if prior[i].Action.IsEntry() {
			last = i
			break
		}
	}
	if last < 0 {
		return Position{}
	}

	for i := last; i >= 0; i-- {
		a := prior[i].Action
		if closesPosition(a) {
			break
		}
		if a.IsEntry() && prior[i].Direction != models.DirectionNone {
			return Position{Open: true, Direction: prior[i].Direction}
		}
	}
	return Position{Open: true, Direction: models.DirectionLong}
}

func closesPosition(a models.Action) bool {
	return a == models.ActionExit || a == models.ActionSell
}
