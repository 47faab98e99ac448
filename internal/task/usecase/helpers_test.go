package usecase_test

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"task-manager-agent/internal/model"
	"task-manager-agent/internal/task"
	"task-manager-agent/internal/task/matcher"
	"task-manager-agent/internal/task/repository"
	"task-manager-agent/internal/task/usecase"
	"task-manager-agent/pkg/datemath"
	"task-manager-agent/pkg/gcalendar"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// fakeStore is an in-memory repository.Store.
type fakeStore struct {
	tasks  []model.Task
	nextID int

	insertErr    error
	listErr      error
	updateErr    error
	deleteErr    error
	summarizeErr error

	closeCalls int
}

func (s *fakeStore) InsertTask(ctx context.Context, t model.Task) (model.Task, error) {
	if s.insertErr != nil {
		return model.Task{}, s.insertErr
	}
	s.nextID++
	t.ID = fmt.Sprintf("task-%d", s.nextID)
	now := time.Now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.Date.IsZero() {
		t.Date = now
	}
	t.UpdatedAt = now
	s.tasks = append(s.tasks, t)
	return t, nil
}

func (s *fakeStore) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []model.Task
	for _, t := range s.tasks {
		if s.matches(t, opt) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	limit := opt.Limit
	if limit <= 0 || limit > repository.MaxListLimit {
		limit = repository.MaxListLimit
	}
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *fakeStore) UpdateTask(ctx context.Context, id string, opt repository.UpdateTaskOptions) (model.Task, error) {
	if s.updateErr != nil {
		return model.Task{}, s.updateErr
	}
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		if opt.Title != "" {
			s.tasks[i].Title = opt.Title
		}
		if opt.Date != nil {
			s.tasks[i].Date = *opt.Date
		}
		if opt.Priority != "" {
			s.tasks[i].Priority = opt.Priority
		}
		if opt.Status != "" {
			s.tasks[i].Status = opt.Status
		}
		s.tasks[i].UpdatedAt = time.Now().UTC()
		return s.tasks[i], nil
	}
	return model.Task{}, repository.ErrNotFound
}

func (s *fakeStore) DeleteTask(ctx context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *fakeStore) Summarize(ctx context.Context, opt repository.ListTasksOptions) (repository.SummaryResult, error) {
	if s.summarizeErr != nil {
		return repository.SummaryResult{}, s.summarizeErr
	}
	var res repository.SummaryResult
	for _, t := range s.tasks {
		if !s.matches(t, opt) {
			continue
		}
		res.Total++
		switch t.Priority {
		case model.PriorityHigh:
			res.High++
		case model.PriorityMedium:
			res.Medium++
		case model.PriorityLow:
			res.Low++
		}
		switch t.Status {
		case model.StatusPending:
			res.Pending++
		case model.StatusDone:
			res.Done++
		}
		res.Tasks = append(res.Tasks, t)
	}
	return res, nil
}

func (s *fakeStore) Close(ctx context.Context) error {
	s.closeCalls++
	return nil
}

func (s *fakeStore) matches(t model.Task, opt repository.ListTasksOptions) bool {
	if opt.Priority != "" && t.Priority != opt.Priority {
		return false
	}
	if opt.Status != "" && t.Status != opt.Status {
		return false
	}
	if opt.DateRange != nil && !opt.DateRange.Contains(t.Date) {
		return false
	}
	return true
}

type fakeConnector struct {
	store      *fakeStore
	connectErr error
}

func (c *fakeConnector) Connect(ctx context.Context) (repository.Store, error) {
	if c.connectErr != nil {
		return nil, c.connectErr
	}
	return c.store, nil
}

// fakeCalendar records calendar calls and can simulate failures.
type fakeCalendar struct {
	events []*gcalendar.Event

	listErr   error
	createErr error

	listCalls   int
	createCalls int
}

func (c *fakeCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	c.createCalls++
	if c.createErr != nil {
		return nil, c.createErr
	}
	return &gcalendar.Event{Summary: req.Summary, StartTime: req.StartTime, EndTime: req.EndTime}, nil
}

func (c *fakeCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]*gcalendar.Event, error) {
	c.listCalls++
	if c.listErr != nil {
		return nil, c.listErr
	}
	return c.events, nil
}

func newTestUseCase(t *testing.T, connector *fakeConnector) task.UseCase {
	t.Helper()
	return newTestUseCaseWithCalendar(t, connector, nil)
}

func newTestUseCaseWithCalendar(t *testing.T, connector *fakeConnector, cal usecase.Calendar) task.UseCase {
	t.Helper()
	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("failed to create date parser: %v", err)
	}
	l := &mockLogger{}
	return usecase.New(l, connector, matcher.New(l, nil), cal, dm, "UTC")
}

func seedTask(s *fakeStore, title string, priority model.Priority, status model.Status) model.Task {
	created, _ := s.InsertTask(context.Background(), model.Task{
		Title:    title,
		Priority: priority,
		Status:   status,
	})
	return created
}

var testScope = model.Scope{UserID: "user-1"}
