package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"task-manager-agent/internal/agent"
	"task-manager-agent/internal/agent/usecase"
	"task-manager-agent/internal/model"
	"task-manager-agent/internal/task"
	"task-manager-agent/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type completion struct {
	text string
	err  error
}

// scriptedCompleter replays canned LLM responses in order.
type scriptedCompleter struct {
	script []completion
	calls  int
}

func (s *scriptedCompleter) Complete(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	idx := s.calls
	s.calls++
	if idx >= len(s.script) {
		return nil, errors.New("unexpected LLM call")
	}
	c := s.script[idx]
	if c.err != nil {
		return nil, c.err
	}
	return &llmprovider.Response{Text: c.text}, nil
}

// mockTasks records which operation was dispatched.
type mockTasks struct {
	addInput    *task.AddInput
	listInput   *task.ListInput
	updateInput *task.UpdateInput

	addOutput     task.AddOutput
	listOutput    task.ListOutput
	updateOutput  task.UpdateOutput
	deleteOutput  task.DeleteOutput
	summaryOutput task.SummaryOutput
}

func (m *mockTasks) AddTask(ctx context.Context, sc model.Scope, input task.AddInput) task.AddOutput {
	m.addInput = &input
	return m.addOutput
}

func (m *mockTasks) GetTasks(ctx context.Context, sc model.Scope, input task.ListInput) task.ListOutput {
	m.listInput = &input
	return m.listOutput
}

func (m *mockTasks) UpdateTask(ctx context.Context, sc model.Scope, input task.UpdateInput) task.UpdateOutput {
	m.updateInput = &input
	return m.updateOutput
}

func (m *mockTasks) DeleteTask(ctx context.Context, sc model.Scope, identifier string) task.DeleteOutput {
	return m.deleteOutput
}

func (m *mockTasks) MarkDone(ctx context.Context, sc model.Scope, identifier string) task.UpdateOutput {
	return m.updateOutput
}

func (m *mockTasks) SetPriority(ctx context.Context, sc model.Scope, identifier, priority string) task.UpdateOutput {
	return m.updateOutput
}

func (m *mockTasks) GetTaskSummary(ctx context.Context, sc model.Scope, input task.SummaryInput) task.SummaryOutput {
	return m.summaryOutput
}

var testScope = model.Scope{UserID: "user-1"}

func TestProcessMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Message", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &scriptedCompleter{}, &mockTasks{})

		_, err := uc.ProcessMessage(ctx, testScope, agent.ProcessInput{Message: "   "})
		if !errors.Is(err, agent.ErrEmptyMessage) {
			t.Errorf("expected ErrEmptyMessage, got %v", err)
		}
	})

	t.Run("Add Task Flow", func(t *testing.T) {
		llm := &scriptedCompleter{script: []completion{
			{text: "```json\n{\"operation\": \"ADD_TASK\", \"parameters\": {\"title\": \"Buy milk\", \"priority\": \"high\"}}\n```"},
			{text: "Done! I've added 'Buy milk' to your list."},
		}}
		tasks := &mockTasks{addOutput: task.AddOutput{
			Result: task.Result{Success: true, Message: "Task 'Buy milk' added successfully."},
		}}
		uc := usecase.New(&mockLogger{}, llm, tasks)

		out, err := uc.ProcessMessage(ctx, testScope, agent.ProcessInput{Message: "add buy milk, it's urgent"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Operation != agent.OperationAddTask {
			t.Errorf("expected ADD_TASK, got %s", out.Operation)
		}
		if tasks.addInput == nil || tasks.addInput.Title != "Buy milk" || tasks.addInput.Priority != "high" {
			t.Errorf("expected extracted parameters dispatched, got %+v", tasks.addInput)
		}
		if out.Reply != "Done! I've added 'Buy milk' to your list." {
			t.Errorf("unexpected reply %q", out.Reply)
		}
		if !out.Result.Success {
			t.Error("expected successful result envelope")
		}
		if len(out.Logs) != 3 {
			t.Errorf("expected 3 step logs, got %d", len(out.Logs))
		}
		for _, l := range out.Logs {
			if l.Status != agent.StepCompleted {
				t.Errorf("expected all steps completed, got %s: %s", l.Status, l.Message)
			}
			if l.ID == "" {
				t.Error("expected step log IDs to be set")
			}
		}
	})

	t.Run("Analysis Failure Degrades To Unknown", func(t *testing.T) {
		llm := &scriptedCompleter{script: []completion{
			{err: errors.New("quota exceeded")},
			{err: errors.New("quota exceeded")},
		}}
		uc := usecase.New(&mockLogger{}, llm, &mockTasks{})

		out, err := uc.ProcessMessage(ctx, testScope, agent.ProcessInput{Message: "add buy milk"})
		if err != nil {
			t.Fatalf("pipeline must not propagate LLM failures, got %v", err)
		}

		if out.Operation != agent.OperationUnknown {
			t.Errorf("expected UNKNOWN operation, got %s", out.Operation)
		}
		if out.Result.Success {
			t.Error("expected failed result envelope")
		}
		if out.Result.ErrorType != task.ErrorTypeAnalysis {
			t.Errorf("expected analysis failure tag, got %q", out.Result.ErrorType)
		}
		if !strings.Contains(out.Reply, "Unknown operation") {
			t.Errorf("expected fallback reply mentioning the failure, got %q", out.Reply)
		}
		if !strings.Contains(out.Result.Message, "quota exceeded") {
			t.Errorf("expected the classification error carried into the envelope, got %q", out.Result.Message)
		}
	})

	t.Run("Malformed Analysis JSON", func(t *testing.T) {
		llm := &scriptedCompleter{script: []completion{
			{text: "I think you want to add a task"},
			{text: "Sorry, I could not work out what you meant."},
		}}
		uc := usecase.New(&mockLogger{}, llm, &mockTasks{})

		out, err := uc.ProcessMessage(ctx, testScope, agent.ProcessInput{Message: "do the thing"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Operation != agent.OperationUnknown {
			t.Errorf("expected UNKNOWN for unparseable analysis, got %s", out.Operation)
		}
	})

	t.Run("Response Failure Falls Back To Envelope Message", func(t *testing.T) {
		llm := &scriptedCompleter{script: []completion{
			{text: `{"operation": "DELETE_TASK", "parameters": {"task_identifier": "old report"}}`},
			{err: errors.New("model overloaded")},
		}}
		tasks := &mockTasks{deleteOutput: task.DeleteOutput{
			Result: task.Result{Success: true, Message: "Task 'Old report' deleted successfully."},
		}}
		uc := usecase.New(&mockLogger{}, llm, tasks)

		out, err := uc.ProcessMessage(ctx, testScope, agent.ProcessInput{Message: "delete the old report"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Reply != "Task 'Old report' deleted successfully." {
			t.Errorf("expected fallback to envelope message, got %q", out.Reply)
		}
	})

	t.Run("Summary Flow", func(t *testing.T) {
		llm := &scriptedCompleter{script: []completion{
			{text: `{"operation": "SUMMARIZE_TASKS", "parameters": {"filter_criteria": {"status": "pending"}}}`},
			{text: "You have 2 pending tasks, one of them high priority."},
		}}
		tasks := &mockTasks{summaryOutput: task.SummaryOutput{
			Result:  task.Result{Success: true, Message: "You have 2 task(s)."},
			Summary: task.Summary{Total: 2, High: 1, Pending: 2},
		}}
		uc := usecase.New(&mockLogger{}, llm, tasks)

		out, err := uc.ProcessMessage(ctx, testScope, agent.ProcessInput{Message: "summarize my tasks"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Operation != agent.OperationSummarizeTasks {
			t.Errorf("expected SUMMARIZE_TASKS, got %s", out.Operation)
		}
		if !strings.Contains(out.Reply, "pending") {
			t.Errorf("unexpected reply %q", out.Reply)
		}
	})

	t.Run("Failed Result Fallback Reply", func(t *testing.T) {
		llm := &scriptedCompleter{script: []completion{
			{text: `{"operation": "UPDATE_TASK", "parameters": {"task_identifier": "meeting", "updates": {"priority": "high"}}}`},
			{err: errors.New("model overloaded")},
		}}
		tasks := &mockTasks{updateOutput: task.UpdateOutput{
			Result: task.Result{
				Success:   false,
				Message:   "Multiple tasks could match 'meeting': 'Team meeting', 'Client meeting'. Please be more specific.",
				ErrorType: task.ErrorTypeAnalysis,
			},
		}}
		uc := usecase.New(&mockLogger{}, llm, tasks)

		out, err := uc.ProcessMessage(ctx, testScope, agent.ProcessInput{Message: "bump the meeting"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(out.Reply, "Sorry, ") {
			t.Errorf("expected apologetic fallback, got %q", out.Reply)
		}
		if tasks.updateInput == nil || tasks.updateInput.Updates.Priority != "high" {
			t.Errorf("expected updates map converted, got %+v", tasks.updateInput)
		}
	})
}
