package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ringlayout/pkg/cache"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "json", []string{"json"}},
		{"multiple formats", "svg,dot,png", []string{"svg", "dot", "png"}},
		{"spaces and blanks", " svg , ,json", []string{"svg", "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFormats(tt.input); !slices.Equal(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "rings/demo.toml", "rings/demo"},
		{"out/ring.svg", "demo.toml", "out/ring"},
		{"out/ring.json", "demo.toml", "out/ring"},
		{"out/ring", "demo.toml", "out/ring"},
		{"out/ring.v2", "demo.toml", "out/ring.v2"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "demo.toml")
	artifacts := map[string][]byte{"svg": []byte("<svg/>"), "json": []byte("{}")}

	err := writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   []string{"svg", "json"},
		input:     input,
	})
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}
	for _, name := range []string{"demo.svg", "demo.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}

	single := filepath.Join(dir, "custom.out")
	err = writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   []string{"svg"},
		input:     input,
		output:    single,
	})
	if err != nil {
		t.Fatalf("writeArtifacts(single) error: %v", err)
	}
	if data, _ := os.ReadFile(single); string(data) != "<svg/>" {
		t.Errorf("single output = %q", data)
	}

	err = writeArtifacts(artifactWriteParams{artifacts: artifacts, formats: []string{"svg", "json"}, output: "-"})
	if err == nil {
		t.Error("stdout with two formats should fail")
	}
}

func TestNewCacheNoCache(t *testing.T) {
	c, err := newCache(context.Background(), cacheFlags{noCache: true})
	if err != nil {
		t.Fatalf("newCache() error: %v", err)
	}
	if _, ok := c.(*cache.NullCache); !ok {
		t.Errorf("newCache(noCache) = %T, want *cache.NullCache", c)
	}
}

func TestNewCacheFile(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c, err := newCache(context.Background(), cacheFlags{})
	if err != nil {
		t.Fatalf("newCache() error: %v", err)
	}
	fc, ok := c.(*cache.FileCache)
	if !ok {
		t.Fatalf("newCache() = %T, want *cache.FileCache", c)
	}
	if !strings.HasSuffix(fc.Dir(), appName) {
		t.Errorf("cache dir = %q", fc.Dir())
	}
}

func TestCacheFlagsKeyer(t *testing.T) {
	opts := cache.ArtifactKeyOpts{Format: "svg"}
	plain := cacheFlags{}.keyer().ArtifactKey("abc", opts)
	scoped := cacheFlags{scope: "lobby"}.keyer().ArtifactKey("abc", opts)

	if !strings.HasPrefix(plain, "artifact:") {
		t.Errorf("unscoped key = %q", plain)
	}
	if scoped != "lobby:"+plain {
		t.Errorf("scoped key = %q, want %q", scoped, "lobby:"+plain)
	}
}

func TestRootCommand(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, want := range []string{"render", "angles", "play", "serve", "cache", "completion"} {
		if !slices.Contains(names, want) {
			t.Errorf("root command missing %q (have %v)", want, names)
		}
	}
}

func TestCompletionCommand(t *testing.T) {
	for shell := range completionGenerators {
		t.Run(shell, func(t *testing.T) {
			root := New(io.Discard, LogInfo).RootCommand()
			var out strings.Builder
			root.SetOut(&out)
			root.SetArgs([]string{"completion", shell})
			if err := root.Execute(); err != nil {
				t.Fatalf("completion %s error: %v", shell, err)
			}
			if !strings.Contains(out.String(), appName) {
				t.Errorf("completion %s output does not mention %s", shell, appName)
			}
		})
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "ring.toml")
	src := `
[container]
width = 200
height = 200

[[item]]
label = "a"

[[item]]
label = "b"
`
	if err := os.WriteFile(input, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"render", input, "--no-cache", "-f", "svg,json"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("render error: %v", err)
	}

	svg, err := os.ReadFile(filepath.Join(dir, "ring.svg"))
	if err != nil || !strings.Contains(string(svg), "<svg") {
		t.Errorf("ring.svg = %q, %v", svg, err)
	}
	if _, err := os.Stat(filepath.Join(dir, "ring.json")); err != nil {
		t.Errorf("ring.json not written: %v", err)
	}
}

func TestRenderCommandInvalidFormat(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"render", "missing.toml", "-f", "gif"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	if err := root.Execute(); err == nil {
		t.Error("render with gif format should fail")
	}
}

func TestRingSourceFromFlags(t *testing.T) {
	src := ringSource{count: 3, seed: "-90", radius: "50px", size: 200, alignFirst: true}
	ctx := withLogger(context.Background(), log.New(io.Discard))

	_, _, l, err := src.build(ctx, "")
	if err != nil {
		t.Fatalf("build() error: %v", err)
	}
	if got := l.Angles(); !slices.Equal(got, []int{-90, 30, 150}) {
		t.Errorf("Angles() = %v", got)
	}
	if l.Item(0).Element().Text() != "1" {
		t.Errorf("first label = %q, want 1", l.Item(0).Element().Text())
	}
}

func TestRingSourceInvalidRadius(t *testing.T) {
	src := ringSource{count: 1, seed: "0", radius: "wide", size: 100}
	if _, err := src.file(""); err == nil {
		t.Error("invalid radius should fail validation")
	}
}
