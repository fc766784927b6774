// Package main is the edu-navigator CLI: it answers Educado navigation
// questions through a chat completion endpoint.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/educado/edu-navigator/pkg/chatbot"
	configpkg "github.com/educado/edu-navigator/pkg/config"
	loggerpkg "github.com/educado/edu-navigator/pkg/logger"
	"github.com/educado/edu-navigator/pkg/prompt"
	"github.com/educado/edu-navigator/pkg/render"
	"github.com/spf13/cobra"
)

const longDesc = `Answer a question about navigating the Educado app.

The question is read from standard input (default) or from the first
argument when --input argv is set. OPENAI_API_KEY is loaded from the env
file (config/.env by default) or the environment.

Examples:
  echo "How do I see my certificate?" | edu-navigator
  edu-navigator --input argv "How do I sign up for a course?"
  edu-navigator --interactive --render`

var (
	// errReported marks failures whose message was already printed.
	errReported = errors.New("reported")

	errNotEnoughArgs = errors.New("not enough arguments")
	errNoInput       = errors.New("no input")
)

type completer interface {
	Complete(ctx context.Context, systemPrompt, userInput string) (string, error)
}

type completerFactory func(cfg configpkg.Config, logger loggerpkg.Logger) (completer, error)

// cliEnv carries the process streams and collaborators so tests can swap them.
type cliEnv struct {
	stdin        io.Reader
	stdout       io.Writer
	stderr       io.Writer
	newCompleter completerFactory
}

// main is the program entry point.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], cliEnv{
		stdin:        os.Stdin,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		newCompleter: newChatbotCompleter,
	})
	stop()
	os.Exit(code)
}

func newChatbotCompleter(cfg configpkg.Config, logger loggerpkg.Logger) (completer, error) {
	client, err := chatbot.New(cfg, chatbot.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return client, nil
}

// execute runs the root command and maps the outcome to a process exit code.
func execute(ctx context.Context, args []string, env cliEnv) int {
	if args == nil {
		args = []string{}
	}
	cmd := newRootCmd(env)
	cmd.SetArgs(args)
	cmd.SetIn(env.stdin)
	cmd.SetOut(env.stdout)
	cmd.SetErr(env.stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			_, _ = fmt.Fprintf(env.stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

type rootCommander struct {
	env   cliEnv
	flags cliFlags
}

func newRootCmd(env cliEnv) *cobra.Command {
	cmder := &rootCommander{env: env}

	cmd := &cobra.Command{
		Use:           "edu-navigator [question]",
		Short:         "Educado navigation assistant",
		Long:          longDesc,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd, args)
		},
	}
	cmder.flags.register(cmd)
	return cmd
}

func (c *rootCommander) run(cmd *cobra.Command, args []string) error {
	cfg, err := c.flags.buildConfig(cmd)
	if err != nil {
		return err
	}

	logger := loggerpkg.NewWriterLogger(c.env.stderr)
	loggerpkg.Debug(cfg.Verbose, logger, "config loaded", map[string]any{
		"input_source": cfg.InputSource,
		"model":        cfg.Model,
		"prompt":       cfg.PromptVariant,
		"interactive":  cfg.Interactive,
		"base_url":     cfg.BaseURL,
	})

	systemPrompt, err := prompt.Generate(prompt.Variant(cfg.PromptVariant))
	if err != nil {
		return err
	}

	var renderer *render.Markdown
	if cfg.Render {
		if renderer, err = render.New("", 0); err != nil {
			return err
		}
	}

	out := c.env.stdout
	if cfg.Interactive {
		client, err := c.env.newCompleter(cfg, logger)
		if err != nil {
			_, _ = fmt.Fprintf(out, "Error occurred: %v\n", err)
			return errReported
		}
		return runREPL(cmd.Context(), client, replOptions{
			SystemPrompt: systemPrompt,
			Verbose:      cfg.Verbose,
			Logger:       logger,
			Renderer:     renderer,
		}, c.env.stdin, out)
	}

	userInput, err := readInput(cfg.InputSource, args, c.env.stdin)
	switch {
	case errors.Is(err, errNotEnoughArgs):
		_, _ = fmt.Fprintln(out, "Error: Not enough arguments provided.")
		return errReported
	case errors.Is(err, errNoInput):
		_, _ = fmt.Fprintln(out, "No input provided!")
		return errReported
	case err != nil:
		return err
	}

	client, err := c.env.newCompleter(cfg, logger)
	if err != nil {
		_, _ = fmt.Fprintf(out, "Error occurred: %v\n", err)
		return errReported
	}
	answer, err := client.Complete(cmd.Context(), systemPrompt, userInput)
	if err != nil {
		_, _ = fmt.Fprintf(out, "Error occurred: %v\n", err)
		return errReported
	}

	_, _ = fmt.Fprintln(out, renderer.Render(answer))
	return nil
}

// readInput captures the question for one invocation. Stdin input is trimmed;
// an argv question is used as given.
func readInput(source configpkg.InputSource, args []string, stdin io.Reader) (string, error) {
	switch source {
	case configpkg.InputArgv:
		if len(args) < 1 {
			return "", errNotEnoughArgs
		}
		if strings.TrimSpace(args[0]) == "" {
			return "", errNoInput
		}
		return args[0], nil
	default:
		if stdin == nil {
			return "", errNoInput
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		input := strings.TrimSpace(string(data))
		if input == "" {
			return "", errNoInput
		}
		return input, nil
	}
}
