package config

import (
    "os"
    "path/filepath"
    "testing"
    "time"
)

func TestDefaults(t *testing.T) {
    c := Default()
    if c.Search.Debounce != 200*time.Millisecond || c.Search.SnippetSize != 4 || c.Search.Limit != 3 || c.Search.OrdinalBase != 1 {
        t.Fatalf("unexpected search defaults: %+v", c.Search)
    }
    if c.HTTP.UserAgent != "wikitui" || c.Logging.Level != "info" || c.Theme.Syntax != "monokai" {
        t.Fatalf("unexpected defaults: %+v", c)
    }
}

func TestLoadFileOverDefaults(t *testing.T) {
    t.Setenv(EnvSession, "")
    t.Setenv(EnvLogFile, "")
    path := filepath.Join(t.TempDir(), "config.yaml")
    yml := "search:\n  debounce: 50ms\n  limit: 10\nhttp:\n  user_agent: tester\n"
    if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
        t.Fatal(err)
    }
    c, err := Load(path)
    if err != nil {
        t.Fatalf("Load: %v", err)
    }
    if c.Search.Debounce != 50*time.Millisecond || c.Search.Limit != 10 || c.HTTP.UserAgent != "tester" {
        t.Fatalf("file values not applied: %+v", c)
    }
    if c.Search.SnippetSize != 4 {
        t.Fatalf("unset field lost its default: %d", c.Search.SnippetSize)
    }
}

func TestEnvOverrides(t *testing.T) {
    path := filepath.Join(t.TempDir(), "config.yaml")
    if err := os.WriteFile(path, []byte("http:\n  session: from-file\n"), 0o644); err != nil {
        t.Fatal(err)
    }
    t.Setenv(EnvSession, "from-env")
    t.Setenv(EnvLogLevel, "debug")
    t.Setenv(EnvLogFile, "/tmp/wikitui.log")
    c, err := Load(path)
    if err != nil {
        t.Fatalf("Load: %v", err)
    }
    if c.HTTP.Session != "from-env" || c.Logging.Level != "debug" || c.Logging.File != "/tmp/wikitui.log" {
        t.Fatalf("env not applied: %+v", c)
    }
}

func TestExplicitMissingFileFails(t *testing.T) {
    if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
        t.Fatalf("expected error for missing explicit config")
    }
}

func TestOrdinalBase(t *testing.T) {
    dir := t.TempDir()
    zero := filepath.Join(dir, "zero.yaml")
    if err := os.WriteFile(zero, []byte("search:\n  ordinal_base: 0\n"), 0o644); err != nil {
        t.Fatal(err)
    }
    c, err := Load(zero)
    if err != nil {
        t.Fatalf("Load: %v", err)
    }
    if c.Search.OrdinalBase != 0 {
        t.Fatalf("ordinal_base 0 became %d", c.Search.OrdinalBase)
    }
    two := filepath.Join(dir, "two.yaml")
    if err := os.WriteFile(two, []byte("search:\n  ordinal_base: 2\n"), 0o644); err != nil {
        t.Fatal(err)
    }
    if _, err := Load(two); err == nil {
        t.Fatalf("ordinal_base 2 accepted")
    }
}

func TestValidate(t *testing.T) {
    path := filepath.Join(t.TempDir(), "config.yaml")
    if err := os.WriteFile(path, []byte("search:\n  limit: 0\n"), 0o644); err != nil {
        t.Fatal(err)
    }
    if _, err := Load(path); err == nil {
        t.Fatalf("zero limit accepted")
    }
}
