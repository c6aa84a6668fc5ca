package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/resthook/bundle"
	"github.com/dshills/resthook/hook"
)

const sampleConfig = `
[resources.articles]
handlers = ["audit.Recorder", "metrics.Counter"]

[resources.users]
handlers = ["audit.Recorder"]
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(cfg.Resources) != 2 {
		t.Fatalf("Resources len = %d, want 2", len(cfg.Resources))
	}

	articles, ok := cfg.Resources["articles"]
	if !ok {
		t.Fatal("missing resource articles")
	}
	want := []string{"audit.Recorder", "metrics.Counter"}
	if len(articles.Handlers) != len(want) {
		t.Fatalf("articles handlers = %v, want %v", articles.Handlers, want)
	}
	for i := range want {
		if articles.Handlers[i] != want[i] {
			t.Errorf("articles handlers[%d] = %q, want %q", i, articles.Handlers[i], want[i])
		}
	}
}

func TestParseInvalidTOML(t *testing.T) {
	_, err := Parse([]byte("[resources\nbroken"))
	if err == nil {
		t.Fatal("Parse() of invalid TOML succeeded")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("Parse() error type = %T, want *ParseError", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hooks.toml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config for existing file")
	}
	if len(cfg.Resources) != 2 {
		t.Errorf("Resources len = %d, want 2", len(cfg.Resources))
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Errorf("Load() of missing file error = %v, want nil", err)
	}
	if cfg != nil {
		t.Error("Load() of missing file returned non-nil config")
	}
}

func TestBuild(t *testing.T) {
	reg := hook.NewRegistry()
	calls := 0
	reg.RegisterMember("audit", "Recorder", func() (hook.Handler, error) {
		calls++
		return &hook.Base{}, nil
	})
	reg.RegisterMember("metrics", "Counter", func() (hook.Handler, error) {
		return &hook.Base{}, nil
	})

	cfg, err := Parse([]byte(sampleConfig))
	if err != nil {
		t.Fatal(err)
	}

	chains := cfg.Build(hook.WithRegistry(reg))
	if len(chains) != 2 {
		t.Fatalf("Build() produced %d chains, want 2", len(chains))
	}
	if calls != 0 {
		t.Errorf("factories ran %d times at build, want 0: resolution is lazy", calls)
	}

	chain, ok := chains["articles"]
	if !ok {
		t.Fatal("Build() missing chain for articles")
	}
	if err := chain.PreReadList(context.Background(), nil, bundle.New()); err != nil {
		t.Errorf("chain dispatch error = %v", err)
	}
	if calls != 1 {
		t.Errorf("audit factory ran %d times, want 1", calls)
	}

	handlers, err := chain.Handlers()
	if err != nil {
		t.Fatalf("Handlers() error = %v", err)
	}
	if len(handlers) != 2 {
		t.Errorf("articles chain has %d handlers, want 2", len(handlers))
	}
}

func TestBuildUnresolvableSurfacesAtDispatch(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	if err != nil {
		t.Fatal(err)
	}

	chains := cfg.Build(hook.WithRegistry(hook.NewRegistry()))

	err = chains["users"].PreReadList(context.Background(), nil, nil)
	if !errors.Is(err, hook.ErrContainerNotFound) {
		t.Errorf("dispatch error = %v, want ErrContainerNotFound", err)
	}
}

func TestResourceNames(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	if err != nil {
		t.Fatal(err)
	}

	names := cfg.ResourceNames()
	if len(names) != 2 {
		t.Errorf("ResourceNames() len = %d, want 2", len(names))
	}
}
