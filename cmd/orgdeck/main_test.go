package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuildAndList(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	src := filepath.Join(dir, "talk.org")
	body := "#+TITLE: Talk\n* Intro\n- one\n* Details\n** Code\n#+begin_src go\nx := 1\n#+end_src\n"
	if err := os.WriteFile(src, []byte(body), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	out := filepath.Join(dir, "site")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"build", src, "--output", out, "--log-level", "error"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(stdout.String(), "Built 2 slides") {
		t.Errorf("unexpected output: %q", stdout.String())
	}
	if _, err := os.Stat(filepath.Join(out, "details-code.html")); err != nil {
		t.Errorf("expected child slide to be written: %v", err)
	}

	stdout.Reset()
	rootCmd.SetArgs([]string{"list", src, "--log-level", "error"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"Talk", "intro.html", "details-code.html", "code"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("expected list output to contain %q, got %q", want, stdout.String())
		}
	}
}

func TestBuild_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	rootCmd.SetArgs([]string{"build", "talk.org", "--deep-headings", "flatten"})
	err := rootCmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "deep_headings") {
		t.Errorf("expected deep_headings validation error, got %v", err)
	}
}
