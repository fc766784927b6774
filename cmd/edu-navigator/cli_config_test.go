package main

import (
	"os"
	"path/filepath"
	"testing"

	configpkg "github.com/educado/edu-navigator/pkg/config"
	"github.com/spf13/cobra"
)

func newFlagCmd(t *testing.T, args ...string) (*cliFlags, *cobra.Command) {
	t.Helper()
	flags := &cliFlags{}
	cmd := &cobra.Command{Use: "edu-navigator"}
	flags.register(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	return flags, cmd
}

func TestBuildConfigPrecedence(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-from-env")
	t.Setenv("OPENAI_BASE_URL", "")

	dir := t.TempDir()
	configPath := filepath.Join(dir, "edu.yaml")
	content := "input_source: argv\nmodel: gpt-from-file\nprompt: baseline\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	flags, cmd := newFlagCmd(t,
		"--config", configPath,
		"--env-file", filepath.Join(dir, "missing.env"),
		"--prompt", "refined",
	)

	cfg, err := flags.buildConfig(cmd)
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if cfg.InputSource != configpkg.InputArgv {
		t.Fatalf("expected input source from file, got %q", cfg.InputSource)
	}
	if cfg.Model != "gpt-from-env" {
		t.Fatalf("expected OPENAI_MODEL to override the file, got %q", cfg.Model)
	}
	if cfg.PromptVariant != "refined" {
		t.Fatalf("expected flag to override the file, got %q", cfg.PromptVariant)
	}
	if cfg.APIKey != "sk-test" {
		t.Fatalf("expected API key from environment, got %q", cfg.APIKey)
	}
}

func TestBuildConfigDefaultsIgnoreUnsetFlags(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("OPENAI_BASE_URL", "")

	flags, cmd := newFlagCmd(t, "--env-file", filepath.Join(t.TempDir(), "missing.env"))

	cfg, err := flags.buildConfig(cmd)
	if err != nil {
		t.Fatalf("buildConfig: %v", err)
	}
	if cfg.InputSource != configpkg.InputStdin || cfg.Model != configpkg.DefaultModel {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Interactive || cfg.Render || cfg.Verbose {
		t.Fatalf("expected boolean options off, got %+v", cfg)
	}
}

func TestBuildConfigRejectsMissingConfigFile(t *testing.T) {
	flags, cmd := newFlagCmd(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := flags.buildConfig(cmd); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
