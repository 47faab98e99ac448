package usecase

import (
	"task-manager-agent/internal/agent"
	"task-manager-agent/internal/task"
	"task-manager-agent/pkg/llmprovider"
	pkgLog "task-manager-agent/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	llm   llmprovider.Completer
	tasks task.UseCase
}

// New creates a new agent UseCase instance.
func New(l pkgLog.Logger, llm llmprovider.Completer, tasks task.UseCase) agent.UseCase {
	return &implUseCase{
		l:     l,
		llm:   llm,
		tasks: tasks,
	}
}
