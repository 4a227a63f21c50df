package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ameara/reverie/internal/config"
	"github.com/ameara/reverie/internal/entry"
	"github.com/ameara/reverie/internal/errors"
	"github.com/ameara/reverie/internal/session"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	controller *session.Controller
	cfg        *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(controller *session.Controller, cfg *config.Config) *Handlers {
	return &Handlers{controller: controller, cfg: cfg}
}

// Request types for each tool

// MoodLogRequest represents the arguments for mood_log.
type MoodLogRequest struct {
	Emotion   string `json:"emotion"`
	Intensity int    `json:"intensity,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// JournalSaveRequest represents the arguments for journal_save.
type JournalSaveRequest struct {
	Content string `json:"content"`
	Mood    string `json:"mood,omitempty"`
}

// QuizAnswerRequest represents the arguments for quiz_answer.
type QuizAnswerRequest struct {
	Answer int `json:"answer"`
}

// EntryListRequest represents the arguments for entry_list.
type EntryListRequest struct {
	Kind  string `json:"kind,omitempty"`
	Limit int    `json:"limit,omitempty"`
}

// EntryRefRequest identifies a single entry by id.
type EntryRefRequest struct {
	ID string `json:"id"`
}

// EntryCountRequest represents the arguments for entry_count.
type EntryCountRequest struct {
	Kind string `json:"kind,omitempty"`
}

// HandleMoodLog handles the mood_log tool call. It drives the full
// mood flow in one step: select, adjust, commit.
func (h *Handlers) HandleMoodLog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[MoodLogRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	if _, err := h.controller.SelectEmotion(entry.Emotion(input.Emotion)); err != nil {
		return errorResult(err), nil
	}
	if input.Intensity != 0 {
		if _, err := h.controller.SetIntensity(input.Intensity); err != nil {
			h.controller.ResetMood()
			return errorResult(err), nil
		}
	}
	if input.Notes != "" {
		h.controller.SetNotes(input.Notes)
	}

	snap, err := h.controller.CommitMood()
	if err != nil {
		h.controller.ResetMood()
		return errorResult(err), nil
	}

	return successResult(snap)
}

// HandleJournalSave handles the journal_save tool call.
func (h *Handlers) HandleJournalSave(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[JournalSaveRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	h.controller.SetJournalDraft(input.Content, input.Mood)
	snap, err := h.controller.CommitJournal()
	if err != nil {
		h.controller.ResetJournal()
		return errorResult(err), nil
	}

	return successResult(snap)
}

// HandleQuizAnswer handles the quiz_answer tool call.
func (h *Handlers) HandleQuizAnswer(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[QuizAnswerRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	snap, err := h.controller.SubmitAnswer(input.Answer)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(snap)
}

// HandleQuizReset handles the quiz_reset tool call.
func (h *Handlers) HandleQuizReset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return successResult(h.controller.ResetQuiz())
}

// HandleQuizState handles the quiz_state tool call.
func (h *Handlers) HandleQuizState(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return successResult(h.controller.QuizState())
}

// HandleVoiceStart handles the voice_start tool call.
func (h *Handlers) HandleVoiceStart(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, err := h.controller.StartRecording(ctx)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(snap)
}

// HandleVoiceStop handles the voice_stop tool call.
func (h *Handlers) HandleVoiceStop(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, err := h.controller.StopRecording()
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(snap)
}

// HandleVoiceAbort handles the voice_abort tool call.
func (h *Handlers) HandleVoiceAbort(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.controller.AbortRecording(); err != nil {
		return errorResult(err), nil
	}
	return successResult(h.controller.RecordingState())
}

// HandleFrameAnalyze handles the frame_analyze tool call.
func (h *Handlers) HandleFrameAnalyze(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.controller.AnalyzeFrame(ctx)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleEntryList handles the entry_list tool call.
func (h *Handlers) HandleEntryList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[EntryListRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := h.controller.ListRecent(entry.Kind(input.Kind), input.Limit)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleEntryGet handles the entry_get tool call.
func (h *Handlers) HandleEntryGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[EntryRefRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	if input.ID == "" {
		return errorResult(errors.NewInvalidRequest("id is required")), nil
	}

	result, err := h.controller.FetchEntry(input.ID)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleEntryCount handles the entry_count tool call.
func (h *Handlers) HandleEntryCount(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[EntryCountRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := h.controller.Count(entry.Kind(input.Kind))
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleEntryDelete handles the entry_delete tool call.
func (h *Handlers) HandleEntryDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[EntryRefRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	if input.ID == "" {
		return errorResult(errors.NewInvalidRequest("id is required")), nil
	}

	result, err := h.controller.DeleteEntry(input.ID)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if revErr, ok := err.(*errors.ReverieError); ok {
		errorObj := map[string]any{
			"code":    revErr.Code,
			"message": revErr.Message,
			"status":  revErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths or SQL errors
		if revErr.Code != errors.ErrInternal && revErr.Details != nil {
			errorObj["details"] = revErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
