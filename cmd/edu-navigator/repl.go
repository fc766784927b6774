package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	loggerpkg "github.com/educado/edu-navigator/pkg/logger"
	"github.com/educado/edu-navigator/pkg/render"
)

// replOptions configures REPL behavior.
type replOptions struct {
	SystemPrompt string
	Verbose      bool
	Logger       loggerpkg.Logger
	Renderer     *render.Markdown
}

// runREPL answers one question per line. Every question is sent on its own;
// earlier answers are not part of the next request.
func runREPL(ctx context.Context, client completer, opts replOptions, in io.Reader, out io.Writer) error {
	if client == nil {
		return fmt.Errorf("completion client is required")
	}
	if in == nil {
		return fmt.Errorf("input reader is required")
	}
	if out == nil {
		out = io.Discard
	}

	loggerpkg.Debug(opts.Verbose, opts.Logger, "repl start", nil)

	scanner := bufio.NewScanner(in)
	printWelcome(out)

	for {
		_, _ = fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if strings.EqualFold(input, "exit") {
			_, _ = fmt.Fprintln(out, "Goodbye!")
			break
		}

		if strings.HasPrefix(input, "/") {
			if shouldQuit := handleCommand(input, out); shouldQuit {
				break
			}
			continue
		}

		answer, err := client.Complete(ctx, opts.SystemPrompt, input)
		if err != nil {
			_, _ = fmt.Fprintf(out, "Error occurred: %v\n\n", err)
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}

		_, _ = fmt.Fprintf(out, "%s\n\n", opts.Renderer.Render(answer))
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func printWelcome(out io.Writer) {
	_, _ = fmt.Fprintln(out, "=== Edu Navigator - Interactive Mode ===")
	_, _ = fmt.Fprintln(out, "Ask how to get somewhere in Educado and press Enter.")
	_, _ = fmt.Fprintln(out, "Type exit or /quit to leave, /help for commands.")
	_, _ = fmt.Fprintln(out)
}

// handleCommand runs a slash command and reports whether the REPL should end.
func handleCommand(input string, out io.Writer) bool {
	switch strings.ToLower(input) {
	case "/help", "/h":
		printHelp(out)
		return false
	case "/quit", "/exit", "/q":
		_, _ = fmt.Fprintln(out, "Goodbye!")
		return true
	default:
		_, _ = fmt.Fprintf(out, "Unknown command: %s. Type /help for available commands.\n\n", input)
		return false
	}
}

func printHelp(out io.Writer) {
	_, _ = fmt.Fprintln(out, "Commands:")
	_, _ = fmt.Fprintln(out, "  /help  - Show this help message")
	_, _ = fmt.Fprintln(out, "  /quit  - Exit the program")
	_, _ = fmt.Fprintln(out, "  /exit  - Exit the program")
	_, _ = fmt.Fprintln(out, "  exit   - Exit the program")
	_, _ = fmt.Fprintln(out)
}
