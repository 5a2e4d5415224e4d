package domain

import "slices"

// Transition names a lifecycle operation on a return.
type Transition string

const (
	TransitionAssignProduct  Transition = "assign_product"
	TransitionMatchInventory Transition = "match_inventory"
	TransitionShip           Transition = "ship"
	TransitionComplete       Transition = "complete"
	TransitionCancel         Transition = "cancel"
	TransitionUpdate         Transition = "update"
)

// transitionSources lists the statuses each operation may start from.
var transitionSources = map[Transition][]ReturnStatus{
	TransitionAssignProduct:  {ReturnStatusUnmatched},
	TransitionMatchInventory: {ReturnStatusUnmatched, ReturnStatusPending, ReturnStatusMatched},
	TransitionShip:           {ReturnStatusPending, ReturnStatusMatched, ReturnStatusShipped},
	TransitionComplete:       {ReturnStatusShipped},
	TransitionCancel:         {ReturnStatusUnmatched, ReturnStatusPending, ReturnStatusMatched},
	TransitionUpdate: {
		ReturnStatusUnmatched, ReturnStatusPending, ReturnStatusMatched,
		ReturnStatusShipped, ReturnStatusCompleted, ReturnStatusCancelled,
	},
}

// transitionTargets is the status each operation leaves the return in.
// TransitionUpdate keeps the current status and has no entry.
var transitionTargets = map[Transition]ReturnStatus{
	TransitionAssignProduct:  ReturnStatusPending,
	TransitionMatchInventory: ReturnStatusMatched,
	TransitionShip:           ReturnStatusShipped,
	TransitionComplete:       ReturnStatusCompleted,
	TransitionCancel:         ReturnStatusCancelled,
}

// CanTransition reports whether op is allowed from status.
func CanTransition(op Transition, from ReturnStatus) bool {
	return slices.Contains(transitionSources[op], from)
}

// CheckTransition returns a *TransitionError if op is not allowed from status.
func CheckTransition(op Transition, from ReturnStatus) error {
	if !CanTransition(op, from) {
		return &TransitionError{Op: string(op), From: from}
	}
	return nil
}

// TargetStatus returns the status op moves a return into.
func TargetStatus(op Transition) (ReturnStatus, bool) {
	s, ok := transitionTargets[op]
	return s, ok
}

// InitialStatus derives the status of a newly created return.
func InitialStatus(productID *int64) ReturnStatus {
	if productID != nil {
		return ReturnStatusPending
	}
	return ReturnStatusUnmatched
}
