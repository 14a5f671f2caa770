package internal

type conditionKind int

const (
	condAlways conditionKind = iota
	condOnMount
	condIf
)

// Condition gates when an effect's handler re-runs. The value carried by an
// If condition is erased here; the typed constructor lives in the root
// package.
type Condition struct {
	kind    conditionKind
	changed func(prev, next any) bool
	value   any
}

func AlwaysCondition() Condition {
	return Condition{kind: condAlways}
}

func OnMountCondition() Condition {
	return Condition{kind: condOnMount}
}

func IfCondition(changed func(prev, next any) bool, value any) Condition {
	return Condition{kind: condIf, changed: changed, value: value}
}
