// Command example wires up a hook chain the way a hosting framework would:
// handlers registered at startup, chains built from TOML configuration and
// fired around simulated resource operations.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dshills/resthook/bundle"
	"github.com/dshills/resthook/config"
	"github.com/dshills/resthook/hook"
	"github.com/dshills/resthook/logging"
	"github.com/dshills/resthook/luahook"
)

// Audit records which extension points it saw in the bundle meta.
type Audit struct {
	hook.Base
}

func (a *Audit) PostCreateDetail(_ context.Context, _ bundle.ObjectList, b *bundle.Bundle) error {
	b.Meta["audited"] = true
	return nil
}

func (a *Audit) PostReadDetail(_ context.Context, _ bundle.ObjectList, b *bundle.Bundle) error {
	// Strip internal fields before the response leaves the server.
	return b.Delete("internal_notes")
}

const chainConfig = `
[resources.articles]
handlers = ["audit.Recorder", "scripts.Tagger"]
`

func main() {
	logger := logging.New(logging.Config{Level: logging.LevelDebug, Prefix: "example"})

	// Register handler factories at startup.
	hook.Register("audit", hook.Container{
		"Recorder": func() (hook.Handler, error) { return &Audit{}, nil },
	})
	hook.Register("scripts", hook.Container{
		"Tagger": luahook.Factory("plugins/tagger.lua"),
	})

	// Build chains from configuration.
	cfg, err := config.Parse([]byte(chainConfig))
	if err != nil {
		logger.Error("parsing chain config: %v", err)
		os.Exit(1)
	}
	chains := cfg.Build(hook.WithLogger(logger))
	articles := chains["articles"]

	ctx := context.Background()

	// Simulate a create: the host fires pre, performs the operation,
	// serializes, then fires post.
	b := bundle.NewWithObject(map[string]any{"title": "Hello"})
	if err := articles.PreCreateDetail(ctx, nil, b); err != nil {
		logger.Error("create vetoed: %v", err)
		os.Exit(1)
	}
	b.SetData([]byte(`{"title":"Hello","internal_notes":"draft","views":0}`))
	if err := articles.PostCreateDetail(ctx, nil, b); err != nil {
		logger.Error("post-create failed: %v", err)
		os.Exit(1)
	}

	// Simulate a detail read over the stored object.
	objects := bundle.ObjectList{b.Object}
	if err := articles.PreReadDetail(ctx, objects, b); err != nil {
		logger.Error("read vetoed: %v", err)
		os.Exit(1)
	}
	if err := articles.PostReadDetail(ctx, objects, b); err != nil {
		logger.Error("post-read failed: %v", err)
		os.Exit(1)
	}

	fmt.Printf("bundle %s\n", b.ID)
	fmt.Printf("audited: %v\n", b.Meta["audited"])
	fmt.Printf("response: %s\n", b.Data())
}
