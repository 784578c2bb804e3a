package service

import (
	"testing"

	"sitecheck/model"
)

func TestAggregateStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []model.Status
		want     model.Status
	}{
		{"empty set", nil, model.StatusNotStarted},
		{"single not started", []model.Status{model.StatusNotStarted}, model.StatusNotStarted},
		{"single completed", []model.Status{model.StatusCompleted}, model.StatusCompleted},
		{"all completed", []model.Status{model.StatusCompleted, model.StatusCompleted, model.StatusCompleted}, model.StatusCompleted},
		{"none completed", []model.Status{model.StatusNotStarted, model.StatusPending, model.StatusNotStarted}, model.StatusNotStarted},
		{"mixed", []model.Status{model.StatusCompleted, model.StatusNotStarted}, model.StatusPending},
		{"all not started", []model.Status{model.StatusNotStarted, model.StatusNotStarted}, model.StatusNotStarted},
		{"all pending but none completed", []model.Status{model.StatusPending, model.StatusPending}, model.StatusNotStarted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AggregateStatus(tt.statuses); got != tt.want {
				t.Errorf("AggregateStatus(%v) = %v, want %v", tt.statuses, got, tt.want)
			}
		})
	}
}

func TestAggregateStatusOrderIndependent(t *testing.T) {
	a := []model.Status{model.StatusCompleted, model.StatusNotStarted, model.StatusPending}
	b := []model.Status{model.StatusPending, model.StatusCompleted, model.StatusNotStarted}
	if AggregateStatus(a) != AggregateStatus(b) {
		t.Errorf("aggregate depends on item order: %v vs %v", AggregateStatus(a), AggregateStatus(b))
	}
}
