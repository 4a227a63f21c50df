package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ameara/reverie/internal/config"
	"github.com/ameara/reverie/internal/entry"
	"github.com/ameara/reverie/internal/errors"
	"github.com/ameara/reverie/internal/session"
	"github.com/ameara/reverie/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(controller *session.Controller, cfg *config.Config, log *zap.Logger) *cli.App {
	app := &cli.App{
		Name:    "reverie",
		Usage:   "Reflection tracking engine",
		Version: Version,
		Commands: []*cli.Command{
			moodCmd(controller),
			journalCmd(controller),
			quizCmd(controller),
			voiceCmd(controller),
			frameCmd(controller),
			listCmd(controller),
			getCmd(controller),
			countCmd(controller),
			deleteCmd(controller),
			serveCmd(controller, cfg, log),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// moodCmd creates the mood command.
func moodCmd(controller *session.Controller) *cli.Command {
	return &cli.Command{
		Name:  "mood",
		Usage: "Log a mood entry",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "emotion", Aliases: []string{"e"}, Required: true, Usage: "Emotion: happy|sad|angry|neutral|energetic|anxious"},
			&cli.IntFlag{Name: "intensity", Aliases: []string{"i"}, Usage: "Intensity 1-10 (default 5)"},
			&cli.StringFlag{Name: "notes", Aliases: []string{"n"}, Usage: "Free-form notes"},
		},
		Action: func(c *cli.Context) error {
			if _, err := controller.SelectEmotion(entry.Emotion(c.String("emotion"))); err != nil {
				return outputError(err)
			}
			if c.IsSet("intensity") {
				if _, err := controller.SetIntensity(c.Int("intensity")); err != nil {
					controller.ResetMood()
					return outputError(err)
				}
			}
			if notes := c.String("notes"); notes != "" {
				controller.SetNotes(notes)
			}

			snap, err := controller.CommitMood()
			if err != nil {
				controller.ResetMood()
				return outputError(err)
			}
			return outputJSON(snap)
		},
	}
}

// journalCmd creates the journal command.
func journalCmd(controller *session.Controller) *cli.Command {
	return &cli.Command{
		Name:  "journal",
		Usage: "Save a journal entry (reads content from stdin)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "mood", Aliases: []string{"m"}, Usage: "Mood label (default Neutral)"},
		},
		Action: func(c *cli.Context) error {
			if !stdinHasData() {
				return outputError(errors.NewInvalidRequest("journal content must be piped via stdin"))
			}

			content, err := readStdin()
			if err != nil {
				return outputError(errors.NewInternal(err))
			}
			if content == "" {
				return outputError(errors.NewInvalidRequest("journal content is required"))
			}

			controller.SetJournalDraft(content, c.String("mood"))
			snap, err := controller.CommitJournal()
			if err != nil {
				return outputError(err)
			}
			return outputJSON(snap)
		},
	}
}

// quizCmd creates the quiz command.
func quizCmd(controller *session.Controller) *cli.Command {
	return &cli.Command{
		Name:  "quiz",
		Usage: "Run the EQ assessment with the given answers",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "answers", Aliases: []string{"a"}, Required: true, Usage: "Comma-separated answers, 1-5 each (e.g. 5,4,3,2)"},
		},
		Action: func(c *cli.Context) error {
			answers, err := parseAnswers(c.String("answers"))
			if err != nil {
				return outputError(errors.NewInvalidRequest(err.Error()))
			}

			var snap *session.QuizSnapshot
			for _, a := range answers {
				snap, err = controller.SubmitAnswer(a)
				if err != nil {
					return outputError(err)
				}
			}
			if snap == nil || !snap.Complete {
				want := len(controller.Questions())
				return outputError(errors.NewInvalidRequest(
					fmt.Sprintf("assessment needs %d answers, got %d", want, len(answers))))
			}
			return outputJSON(snap)
		},
	}
}

// voiceCmd creates the voice command.
func voiceCmd(controller *session.Controller) *cli.Command {
	return &cli.Command{
		Name:  "voice",
		Usage: "Record a voice note for the given duration, then analyze and store it",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "seconds", Aliases: []string{"s"}, Usage: "Recording duration in seconds"},
		},
		Action: func(c *cli.Context) error {
			if _, err := controller.StartRecording(c.Context); err != nil {
				return outputError(err)
			}
			if secs := c.Int("seconds"); secs > 0 {
				time.Sleep(time.Duration(secs) * time.Second)
			}
			snap, err := controller.StopRecording()
			if err != nil {
				return outputError(err)
			}
			return outputJSON(snap)
		},
	}
}

// frameCmd creates the frame command.
func frameCmd(controller *session.Controller) *cli.Command {
	return &cli.Command{
		Name:  "frame",
		Usage: "Capture a video frame and report the detected emotion (nothing is stored)",
		Action: func(c *cli.Context) error {
			result, err := controller.AnalyzeFrame(c.Context)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(result)
		},
	}
}

// listCmd creates the list command.
func listCmd(controller *session.Controller) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List recent entries, newest first",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "kind", Aliases: []string{"k"}, Usage: "Filter by kind: mood|journal|voice|assessment"},
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Usage: "Maximum items to return"},
		},
		Action: func(c *cli.Context) error {
			output, err := controller.ListRecent(entry.Kind(c.String("kind")), c.Int("limit"))
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// getCmd creates the get command.
func getCmd(controller *session.Controller) *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Fetch a single entry by ID",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("entry ID is required"))
			}
			output, err := controller.FetchEntry(c.Args().First())
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// countCmd creates the count command.
func countCmd(controller *session.Controller) *cli.Command {
	return &cli.Command{
		Name:  "count",
		Usage: "Count stored entries",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "kind", Aliases: []string{"k"}, Usage: "Filter by kind: mood|journal|voice|assessment"},
		},
		Action: func(c *cli.Context) error {
			output, err := controller.Count(entry.Kind(c.String("kind")))
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// deleteCmd creates the delete command.
func deleteCmd(controller *session.Controller) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete an entry by ID",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("entry ID is required"))
			}
			output, err := controller.DeleteEntry(c.Args().First())
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// serveCmd creates the serve command.
func serveCmd(controller *session.Controller, cfg *config.Config, log *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Aliases: []string{"b"}, Value: "127.0.0.1", Usage: "Bind address"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8090, Usage: "Listen port"},
		},
		Action: func(c *cli.Context) error {
			srv := web.NewServer(controller, cfg, log, Version, c.String("bind"), c.Int("port"))
			return web.Run(srv, log)
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if revErr, ok := err.(*errors.ReverieError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", revErr.Code, revErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads all content from stdin.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// parseAnswers splits a comma-separated answer string into ints.
func parseAnswers(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	answers := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid answer %q", p)
		}
		answers = append(answers, n)
	}
	if len(answers) == 0 {
		return nil, fmt.Errorf("answers are required")
	}
	return answers, nil
}
