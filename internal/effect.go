package internal

// Lifecycle is the phase the host drives effects with: Mount after the first
// pass, Update after replay passes, Unmount on final teardown.
type Lifecycle int

const (
	Mount Lifecycle = iota
	Update
	Unmount
)

// EffectCell is a side-effect slot. condition and handler are refreshed on
// every pass through the merge step; cleanup and previous are the only fields
// that survive a pass untouched, which is what lets an If condition compare
// against the value declared the last time the effect was evaluated.
type EffectCell struct {
	condition Condition
	handler   func() func()
	cleanup   func()
	previous  Condition
}

func NewEffectCell(condition Condition, handler func() func()) *EffectCell {
	return &EffectCell{
		condition: condition,
		handler:   handler,
		previous:  condition,
	}
}

func (c *EffectCell) kind() cellKind { return kindEffect }

// Refresh folds a pass's freshly declared condition and handler into the
// carried cell. Cleanup and previous condition persist.
func (c *EffectCell) Refresh(condition Condition, handler func() func()) {
	c.condition = condition
	c.handler = handler
}

// invoke runs the handler and records the cleanup it returned, if any.
func (c *EffectCell) invoke() {
	c.cleanup = c.handler()
}

// runCleanup runs and discards the recorded cleanup, reporting whether one
// existed.
func (c *EffectCell) runCleanup() bool {
	if c.cleanup == nil {
		return false
	}

	cleanup := c.cleanup
	c.cleanup = nil
	cleanup()

	return true
}

// Execute drives the effect's state machine for one lifecycle phase,
// reporting whether the handler (or, on Unmount, a cleanup) ran. Dispatch is
// on the previous condition, which carries the last value an If comparator
// saw.
func (c *EffectCell) Execute(phase Lifecycle) bool {
	switch c.previous.kind {
	case condAlways:
		if phase == Unmount {
			return c.runCleanup()
		}

		c.runCleanup()
		c.invoke()
		return true

	case condOnMount:
		switch phase {
		case Mount:
			c.invoke()
			return true
		case Unmount:
			c.runCleanup()
		}
		return false

	case condIf:
		switch phase {
		case Mount:
			c.previous = c.condition
			c.runCleanup()
			c.invoke()
			return true

		case Update:
			if c.condition.kind != condIf {
				// condition kind changed between passes; keep the previous
				// value and compare again once an If is declared
				return false
			}

			prev, next := c.previous.value, c.condition.value
			c.previous = c.condition

			if c.condition.changed(prev, next) {
				c.runCleanup()
				c.invoke()
				return true
			}
			return false

		case Unmount:
			return c.runCleanup()
		}
	}

	return false
}
