package service

import "sitecheck/model"

// AggregateStatus derives a checklist's status from the complete set of its
// items' statuses. Order-independent and side-effect free:
//
//	empty set            -> NotStarted
//	every item Completed -> Completed
//	no item Completed    -> NotStarted
//	otherwise            -> Pending
//
// Callers must pass the full sibling set read inside the same transaction as
// the triggering write; the aggregate is never maintained incrementally.
func AggregateStatus(statuses []model.Status) model.Status {
	if len(statuses) == 0 {
		return model.StatusNotStarted
	}
	completed := 0
	for _, s := range statuses {
		if s == model.StatusCompleted {
			completed++
		}
	}
	switch completed {
	case len(statuses):
		return model.StatusCompleted
	case 0:
		return model.StatusNotStarted
	default:
		return model.StatusPending
	}
}

func statusesOf(items []model.Item) []model.Status {
	statuses := make([]model.Status, 0, len(items))
	for _, it := range items {
		statuses = append(statuses, it.Status)
	}
	return statuses
}
