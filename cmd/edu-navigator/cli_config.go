package main

import (
	"strings"

	configpkg "github.com/educado/edu-navigator/pkg/config"
	"github.com/spf13/cobra"
)

// cliFlags holds raw flag values before they are merged into a Config.
type cliFlags struct {
	configPath    string
	envFile       string
	inputSource   string
	model         string
	promptVariant string
	baseURL       string
	interactive   bool
	render        bool
	verbose       bool
}

func (f *cliFlags) register(cmd *cobra.Command) {
	defaults := configpkg.DefaultConfig()
	flags := cmd.Flags()
	flags.StringVarP(&f.configPath, "config", "c", "", "Path to a YAML config file")
	flags.StringVar(&f.envFile, "env-file", defaults.EnvFile, "Env file holding OPENAI_API_KEY (missing file is ignored)")
	flags.StringVarP(&f.inputSource, "input", "i", string(defaults.InputSource), "Where to read the question from: stdin or argv")
	flags.StringVarP(&f.model, "model", "m", defaults.Model, "Completion model identifier")
	flags.StringVarP(&f.promptVariant, "prompt", "p", defaults.PromptVariant, "System prompt variant: baseline or refined")
	flags.StringVar(&f.baseURL, "base-url", "", "Override the completion API base URL")
	flags.BoolVar(&f.interactive, "interactive", false, "Ask questions in a loop until exit")
	flags.BoolVar(&f.render, "render", false, "Render markdown answers for the terminal instead of printing them raw")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "Verbose request logging on stderr")
}

// buildConfig merges defaults, the YAML file, the environment, and flags the
// user set explicitly, in that order of precedence.
func (f *cliFlags) buildConfig(cmd *cobra.Command) (configpkg.Config, error) {
	changed := cmd.Flags().Changed

	cfg, err := configpkg.LoadFile(f.configPath, configpkg.DefaultConfig())
	if err != nil {
		return configpkg.Config{}, err
	}
	if changed("env-file") {
		cfg.EnvFile = strings.TrimSpace(f.envFile)
	}
	cfg, err = configpkg.LoadEnv(cfg)
	if err != nil {
		return configpkg.Config{}, err
	}

	if changed("input") {
		cfg.InputSource = configpkg.InputSource(f.inputSource)
	}
	if changed("model") {
		cfg.Model = f.model
	}
	if changed("prompt") {
		cfg.PromptVariant = f.promptVariant
	}
	if changed("base-url") {
		cfg.BaseURL = f.baseURL
	}
	if changed("interactive") {
		cfg.Interactive = f.interactive
	}
	if changed("render") {
		cfg.Render = f.render
	}
	if changed("verbose") {
		cfg.Verbose = f.verbose
	}

	cfg = configpkg.Normalize(cfg)
	if err := configpkg.Validate(cfg); err != nil {
		return configpkg.Config{}, err
	}
	return cfg, nil
}
