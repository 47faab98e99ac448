package usecase

import (
	"context"
	"time"

	"task-manager-agent/internal/task"
	"task-manager-agent/internal/task/matcher"
	"task-manager-agent/internal/task/repository"
	"task-manager-agent/pkg/datemath"
	"task-manager-agent/pkg/gcalendar"
	pkgLog "task-manager-agent/pkg/log"
)

// Calendar abstracts the Google Calendar API for mocking.
// *gcalendar.Client satisfies it.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]*gcalendar.Event, error)
}

type implUseCase struct {
	l         pkgLog.Logger
	connector repository.Connector
	matcher   *matcher.Matcher
	calendar  Calendar // optional, nil disables calendar events
	dateMath  *datemath.Parser
	timezone  string
	nowFn     func() time.Time
}

// now returns the current time; overridable in tests.
func (uc *implUseCase) now() time.Time {
	return uc.nowFn()
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	connector repository.Connector,
	m *matcher.Matcher,
	calendar Calendar,
	dateMath *datemath.Parser,
	timezone string,
) task.UseCase {
	return &implUseCase{
		l:         l,
		connector: connector,
		matcher:   m,
		calendar:  calendar,
		dateMath:  dateMath,
		timezone:  timezone,
		nowFn:     time.Now,
	}
}
