// Package config loads hook chain configuration from TOML files.
//
// A configuration file maps resource names to ordered handler reference
// lists:
//
//	[resources.articles]
//	handlers = ["audit.Recorder", "metrics.Counter"]
//
//	[resources.users]
//	handlers = ["audit.Recorder"]
//
// References are path strings resolved lazily against a hook registry, so a
// malformed reference surfaces when its chain first runs, not at load time.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/resthook/hook"
)

// Config is the parsed chain configuration.
type Config struct {
	// Resources maps resource names to their hook chain configuration.
	Resources map[string]Resource `toml:"resources"`
}

// Resource configures the hook chain of a single resource.
type Resource struct {
	// Handlers is the ordered list of handler references, each a fully
	// qualified path ("container.Member"). Order is dispatch order.
	Handlers []string `toml:"handlers"`
}

// Load reads chain configuration from a TOML file. A missing file is not an
// error; it returns a nil config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return parse(path, data)
}

// Parse parses chain configuration from raw TOML bytes.
func Parse(data []byte) (*Config, error) {
	return parse("<data>", data)
}

// parse unmarshals TOML into a Config.
func parse(source string, data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
	}
	return &cfg, nil
}

// ResourceNames returns the configured resource names.
func (c *Config) ResourceNames() []string {
	names := make([]string, 0, len(c.Resources))
	for name := range c.Resources {
		names = append(names, name)
	}
	return names
}

// Build constructs one hook chain per configured resource. Every handler
// reference becomes a deferred path reference; nothing resolves until a
// chain first runs. The options are applied to each chain, so a shared
// registry or logger can be threaded through.
func (c *Config) Build(opts ...hook.CompositeOption) map[string]*hook.Composite {
	chains := make(map[string]*hook.Composite, len(c.Resources))
	for name, res := range c.Resources {
		refs := make([]hook.Reference, 0, len(res.Handlers))
		for _, ref := range res.Handlers {
			refs = append(refs, hook.PathRef(ref))
		}
		chains[name] = hook.NewComposite(refs, opts...)
	}
	return chains
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
