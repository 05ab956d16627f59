package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const siteConfig = `
title: Demo Motors
log:
  level: error
metrics:
  enabled: false
content:
  source: dir
  dir: pages
  cache_ttl: 1m
routes:
  - path: /
    title: Home
    page: home
  - path: /about
    title: About
    content: about.html
  - path: /404
    title: Not found
    page: notfound
`

func writeSite(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "pages"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "pages", "about.html"), []byte("<p>Family owned since 1982.</p>"), 0644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "outlet.yaml")
	if err := os.WriteFile(path, []byte(siteConfig), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoutesCommand(t *testing.T) {
	path := writeSite(t)
	out, _, err := execute(t, "--config", path, "routes")
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	for i, want := range []string{"PATH", "/ ", "/404", "/about"} {
		if !strings.HasPrefix(lines[i], want) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], want)
		}
	}
	if !strings.Contains(lines[3], "content:about.html") {
		t.Errorf("about source = %q", lines[3])
	}
}

func TestRenderCommand(t *testing.T) {
	path := writeSite(t)

	out, _, err := execute(t, "--config", path, "render", "/about")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "Demo Motors - About\n") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "Family owned since 1982.") {
		t.Errorf("content missing from %q", out)
	}

	out, errOut, err := execute(t, "--config", path, "render", "/nowhere", "--title")
	if err != nil {
		t.Fatal(err)
	}
	if out != "Demo Motors - Not found\n" {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(errOut, "/nowhere: 404 Not Found") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "outlet.yaml")
	body := "title: Demo\nroutes:\n  - path: about\n    title: About\n    page: home\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := execute(t, "--config", path, "routes"); err == nil {
		t.Error("expected a validation error")
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if out != version+"\n" {
		t.Errorf("output = %q", out)
	}
}

func TestFormatError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	_, _, err := execute(t, "--config", path, "routes")
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
	got := formatError(err)
	if !strings.HasPrefix(got, "[E001] ") || !strings.Contains(got, "(hint: ") {
		t.Errorf("formatError = %q", got)
	}
}
