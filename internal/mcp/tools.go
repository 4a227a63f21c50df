package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool definitions. Descriptions are what MCP clients surface to the
// model, so they spell out argument semantics rather than relying on
// schema alone.

var moodLogToolDef = mcp.NewTool("mood_log",
	mcp.WithDescription("Log a mood entry. Selects the emotion, applies intensity and notes, and commits in one step."),
	mcp.WithString("emotion",
		mcp.Required(),
		mcp.Description("One of: happy, sad, angry, neutral, energetic, anxious."),
	),
	mcp.WithNumber("intensity",
		mcp.Description("Intensity from 1 to 10. Defaults to 5."),
	),
	mcp.WithString("notes",
		mcp.Description("Optional free-form notes attached to the mood entry."),
	),
)

var journalSaveToolDef = mcp.NewTool("journal_save",
	mcp.WithDescription("Save a journal entry. Runs insight analysis on the content and returns the generated insights."),
	mcp.WithString("content",
		mcp.Required(),
		mcp.Description("Journal text. Whitespace-only content is ignored without error."),
	),
	mcp.WithString("mood",
		mcp.Description("Mood label for the entry. Defaults to Neutral."),
	),
)

var quizAnswerToolDef = mcp.NewTool("quiz_answer",
	mcp.WithDescription("Answer the current EQ assessment question. The final answer scores the assessment and stores the result."),
	mcp.WithNumber("answer",
		mcp.Required(),
		mcp.Description("Answer value from 1 (Strongly Disagree) to 5 (Strongly Agree)."),
	),
)

var quizResetToolDef = mcp.NewTool("quiz_reset",
	mcp.WithDescription("Discard assessment progress and return to the first question. Stored results are kept."),
)

var quizStateToolDef = mcp.NewTool("quiz_state",
	mcp.WithDescription("Return the current assessment question and progress without changing anything."),
)

var voiceStartToolDef = mcp.NewTool("voice_start",
	mcp.WithDescription("Start a voice recording session. No-op if a recording is already in progress."),
)

var voiceStopToolDef = mcp.NewTool("voice_stop",
	mcp.WithDescription("Stop the active recording, analyze the audio, and store a voice entry. No-op when idle."),
)

var voiceAbortToolDef = mcp.NewTool("voice_abort",
	mcp.WithDescription("Cancel the active recording and discard the audio without storing an entry."),
)

var frameAnalyzeToolDef = mcp.NewTool("frame_analyze",
	mcp.WithDescription("Capture a single video frame and return the detected emotion, confidence, and suggestions. Nothing is stored."),
)

var entryListToolDef = mcp.NewTool("entry_list",
	mcp.WithDescription("List recent entries, newest first."),
	mcp.WithString("kind",
		mcp.Description("Filter by entry kind: mood, journal, voice, or assessment. Empty lists all kinds."),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum entries to return (1-100). Defaults to the configured history limit."),
	),
)

var entryGetToolDef = mcp.NewTool("entry_get",
	mcp.WithDescription("Fetch a single entry by id, including full content."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Entry id (ULID)."),
	),
)

var entryCountToolDef = mcp.NewTool("entry_count",
	mcp.WithDescription("Count stored entries."),
	mcp.WithString("kind",
		mcp.Description("Filter by entry kind: mood, journal, voice, or assessment. Empty counts all kinds."),
	),
)

var entryDeleteToolDef = mcp.NewTool("entry_delete",
	mcp.WithDescription("Delete an entry by id. Deleting a missing id reports removed=false rather than an error."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Entry id (ULID)."),
	),
)
