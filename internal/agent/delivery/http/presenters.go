package http

import (
	"task-manager-agent/internal/agent"
	"task-manager-agent/internal/model"
)

// --- Request DTOs ---

type processReq struct {
	Message string `json:"message" binding:"required,min=1,max=4000"`
	UserID  string `json:"user_id" binding:"max=255"`
}

func (r processReq) toInput() agent.ProcessInput {
	return agent.ProcessInput{Message: r.Message}
}

func (r processReq) scope() model.Scope {
	return model.Scope{UserID: r.UserID}
}

// --- Response DTOs ---

type processResp struct {
	Reply     string          `json:"reply"`
	Operation string          `json:"operation"`
	Success   bool            `json:"success"`
	Message   string          `json:"message,omitempty"`
	ErrorType string          `json:"error_type,omitempty"`
	Payload   any             `json:"payload,omitempty"`
	Logs      []agent.StepLog `json:"logs,omitempty"`
}

func newProcessResp(out agent.ProcessOutput) processResp {
	return processResp{
		Reply:     out.Reply,
		Operation: string(out.Operation),
		Success:   out.Result.Success,
		Message:   out.Result.Message,
		ErrorType: out.Result.ErrorType,
		Payload:   out.Payload,
		Logs:      out.Logs,
	}
}
