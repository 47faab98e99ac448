package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"task-manager-agent/internal/model"
	"task-manager-agent/internal/task"
)

func TestUpdateTask(t *testing.T) {
	ctx := context.Background()

	t.Run("Update By Exact Title", func(t *testing.T) {
		store := &fakeStore{}
		seedTask(store, "Write report", model.PriorityMedium, model.StatusPending)
		uc := newTestUseCase(t, &fakeConnector{store: store})

		out := uc.UpdateTask(ctx, testScope, task.UpdateInput{
			Identifier: "write report",
			Updates:    task.Updates{Priority: "High"},
		})

		if !out.Success {
			t.Fatalf("expected success, got %q", out.Message)
		}
		if out.Task.Priority != model.PriorityHigh {
			t.Errorf("expected priority high, got %s", out.Task.Priority)
		}
		if out.Updates.Priority != "High" {
			t.Errorf("expected applied updates echoed back, got %+v", out.Updates)
		}
		if len(out.Tasks) != 1 {
			t.Errorf("expected refreshed list, got %d tasks", len(out.Tasks))
		}
	})

	t.Run("Ambiguous Identifier Lists Candidates", func(t *testing.T) {
		store := &fakeStore{}
		seedTask(store, "Team meeting", model.PriorityMedium, model.StatusPending)
		seedTask(store, "Client meeting", model.PriorityMedium, model.StatusPending)
		uc := newTestUseCase(t, &fakeConnector{store: store})

		out := uc.UpdateTask(ctx, testScope, task.UpdateInput{
			Identifier: "meeting",
			Updates:    task.Updates{Priority: "high"},
		})

		if out.Success {
			t.Fatal("expected failure for ambiguous identifier")
		}
		if out.ErrorType != task.ErrorTypeAnalysis {
			t.Errorf("expected analysis failure, got %q", out.ErrorType)
		}
		if !strings.Contains(out.Message, "Team meeting") || !strings.Contains(out.Message, "Client meeting") {
			t.Errorf("expected both candidate titles in message, got %q", out.Message)
		}
		for _, stored := range store.tasks {
			if stored.Priority != model.PriorityMedium {
				t.Error("no task may be mutated on ambiguous resolution")
			}
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		store := &fakeStore{}
		seedTask(store, "Write report", model.PriorityMedium, model.StatusPending)
		uc := newTestUseCase(t, &fakeConnector{store: store})

		out := uc.UpdateTask(ctx, testScope, task.UpdateInput{
			Identifier: "quantum physics homework",
			Updates:    task.Updates{Priority: "high"},
		})

		if out.Success {
			t.Fatal("expected failure for unknown identifier")
		}
		if !strings.Contains(out.Message, "No task found") {
			t.Errorf("expected not-found message, got %q", out.Message)
		}
	})

	t.Run("Empty Updates", func(t *testing.T) {
		store := &fakeStore{}
		seedTask(store, "Write report", model.PriorityMedium, model.StatusPending)
		uc := newTestUseCase(t, &fakeConnector{store: store})

		out := uc.UpdateTask(ctx, testScope, task.UpdateInput{Identifier: "write report"})

		if out.Success {
			t.Fatal("expected failure for empty updates")
		}
		if store.closeCalls != 0 {
			t.Error("store must not be opened on validation failure")
		}
	})

	t.Run("Store Failure", func(t *testing.T) {
		store := &fakeStore{}
		seedTask(store, "Write report", model.PriorityMedium, model.StatusPending)
		store.updateErr = errors.New("stepdown in progress")
		uc := newTestUseCase(t, &fakeConnector{store: store})

		out := uc.UpdateTask(ctx, testScope, task.UpdateInput{
			Identifier: "write report",
			Updates:    task.Updates{Priority: "high"},
		})

		if out.Success {
			t.Fatal("expected failure on store error")
		}
		if out.ErrorType != task.ErrorTypeDatabase {
			t.Errorf("expected database failure, got %q", out.ErrorType)
		}
		if store.closeCalls != 1 {
			t.Errorf("store must be released on failure paths, got %d closes", store.closeCalls)
		}
	})
}

func TestDeleteTask(t *testing.T) {
	ctx := context.Background()

	t.Run("Delete By Fuzzy Match", func(t *testing.T) {
		store := &fakeStore{}
		seedTask(store, "Buy groceries", model.PriorityLow, model.StatusPending)
		seedTask(store, "Write report", model.PriorityMedium, model.StatusPending)
		uc := newTestUseCase(t, &fakeConnector{store: store})

		out := uc.DeleteTask(ctx, testScope, "buy groceris")

		if !out.Success {
			t.Fatalf("expected success, got %q", out.Message)
		}
		if out.Task == nil || out.Task.Title != "Buy groceries" {
			t.Errorf("expected deleted task in output, got %v", out.Task)
		}
		if len(store.tasks) != 1 {
			t.Errorf("expected 1 remaining task, got %d", len(store.tasks))
		}
		if len(out.Tasks) != 1 {
			t.Errorf("expected refreshed list with 1 task, got %d", len(out.Tasks))
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		store := &fakeStore{}
		seedTask(store, "Write report", model.PriorityMedium, model.StatusPending)
		uc := newTestUseCase(t, &fakeConnector{store: store})

		out := uc.DeleteTask(ctx, testScope, "unrelated thing")

		if out.Success {
			t.Fatal("expected failure for unknown identifier")
		}
		if len(store.tasks) != 1 {
			t.Error("no task may be deleted on failed resolution")
		}
	})
}

func TestMarkDone(t *testing.T) {
	ctx := context.Background()

	store := &fakeStore{}
	seedTask(store, "Write report", model.PriorityMedium, model.StatusPending)
	uc := newTestUseCase(t, &fakeConnector{store: store})

	out := uc.MarkDone(ctx, testScope, "write report")

	if !out.Success {
		t.Fatalf("expected success, got %q", out.Message)
	}
	if out.Task.Status != model.StatusDone {
		t.Errorf("expected status done, got %s", out.Task.Status)
	}
	if !strings.Contains(out.Message, "marked as done") {
		t.Errorf("expected completion message, got %q", out.Message)
	}
}

func TestSetPriority(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid Priority", func(t *testing.T) {
		store := &fakeStore{}
		seedTask(store, "Write report", model.PriorityMedium, model.StatusPending)
		uc := newTestUseCase(t, &fakeConnector{store: store})

		out := uc.SetPriority(ctx, testScope, "write report", "Low")

		if !out.Success {
			t.Fatalf("expected success, got %q", out.Message)
		}
		if out.Task.Priority != model.PriorityLow {
			t.Errorf("expected priority low, got %s", out.Task.Priority)
		}
		if !strings.Contains(out.Message, "priority set to low") {
			t.Errorf("expected priority message, got %q", out.Message)
		}
	})

	t.Run("Invalid Priority Fails Before Store Access", func(t *testing.T) {
		store := &fakeStore{}
		seedTask(store, "Write report", model.PriorityMedium, model.StatusPending)
		uc := newTestUseCase(t, &fakeConnector{store: store})

		out := uc.SetPriority(ctx, testScope, "report", "urgent")

		if out.Success {
			t.Fatal("expected failure for invalid priority")
		}
		if out.ErrorType != task.ErrorTypeAnalysis {
			t.Errorf("expected analysis failure, got %q", out.ErrorType)
		}
		if store.closeCalls != 0 {
			t.Error("store must not be opened for invalid priority")
		}
		if store.tasks[0].Priority != model.PriorityMedium {
			t.Error("task must not be mutated")
		}
	})
}
