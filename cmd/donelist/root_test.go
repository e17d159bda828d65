package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestKeysCommandPrintsBindings(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte("[keys]\nadd = \"n\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", cfgPath, "keys"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("keys: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"browse\tadd\tn\n",
		"browse\tquit\tq, ctrl+c\n",
		"browse\ttoggle\tspace\n",
		"compose\tcancel\tesc\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestKeysCommandReportsBadConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte("[keys]\nup = \"j\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfgPath, "keys"})
	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("err = %v, want a load config error", err)
	}
}

func TestLoadAppliesFlagOverrides(t *testing.T) {
	dir := t.TempDir()
	opts := &rootOptions{
		configPath:  filepath.Join(dir, "config.toml"),
		logPath:     filepath.Join(dir, "donelist.log"),
		noAltScreen: true,
	}
	cfg, err := opts.load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogPath != opts.logPath || cfg.AltScreen {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if _, err := os.Stat(opts.configPath); err != nil {
		t.Errorf("default config not created: %v", err)
	}
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "donelist.log")
	logger, closer, err := newLogger(path, "debug")
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Debug("item added", "items", 1)
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"msg":"item added"`) {
		t.Errorf("log file = %s", data)
	}

	if _, _, err := newLogger(path, "loud"); err == nil {
		t.Error("unknown level accepted")
	}

	discard, closer, err := newLogger("", "info")
	if err != nil || discard == nil {
		t.Fatalf("discard logger: %v", err)
	}
	closer.Close()
}
