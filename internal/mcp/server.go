package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ameara/reverie/internal/config"
	"github.com/ameara/reverie/internal/session"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"mood_log": {
		def:     moodLogToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleMoodLog },
	},
	"journal_save": {
		def:     journalSaveToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleJournalSave },
	},
	"quiz_answer": {
		def:     quizAnswerToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleQuizAnswer },
	},
	"quiz_reset": {
		def:     quizResetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleQuizReset },
	},
	"quiz_state": {
		def:     quizStateToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleQuizState },
	},
	"voice_start": {
		def:     voiceStartToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleVoiceStart },
	},
	"voice_stop": {
		def:     voiceStopToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleVoiceStop },
	},
	"voice_abort": {
		def:     voiceAbortToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleVoiceAbort },
	},
	"frame_analyze": {
		def:     frameAnalyzeToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleFrameAnalyze },
	},
	"entry_list": {
		def:     entryListToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleEntryList },
	},
	"entry_get": {
		def:     entryGetToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleEntryGet },
	},
	"entry_count": {
		def:     entryCountToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleEntryCount },
	},
	"entry_delete": {
		def:     entryDeleteToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleEntryDelete },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// NewServer creates a new MCP server with Reverie tools registered.
// Tools listed in cfg.DisabledTools are excluded from registration.
func NewServer(controller *session.Controller, cfg *config.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"reverie",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(controller, cfg)

	disabled := make(map[string]bool)
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(controller *session.Controller, cfg *config.Config, version string) error {
	s := NewServer(controller, cfg, version)
	return server.ServeStdio(s)
}
