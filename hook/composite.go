package hook

import (
	"context"
	"sync"

	"github.com/dshills/resthook/bundle"
	"github.com/dshills/resthook/logging"
)

// Composite aggregates an ordered chain of handlers behind the Handler
// contract, so a resource can carry multiple independent behavior plugins
// without each knowing about the others.
//
// References are resolved on first use, in configured order, exactly once
// per Composite; the resolved chain is cached for the lifetime of the
// Composite. A resolution failure is cached the same way: chain
// configuration is static, so retrying cannot change the outcome.
// Every extension point fans out to each resolved handler
// strictly in chain order, passing the arguments through unchanged. The
// first handler error halts the fan-out and propagates to the caller as is:
// an unhandled error is the only veto mechanism, and suppressing one could
// mask data-integrity problems in the surrounding lifecycle.
type Composite struct {
	refs     []Reference
	registry *Registry
	logger   *logging.Logger

	resolveOnce sync.Once
	resolved    []Handler
	resolveErr  error
}

// CompositeOption configures a Composite.
type CompositeOption func(*Composite)

// WithRegistry sets the registry deferred references resolve against.
// Defaults to the process-wide registry.
func WithRegistry(reg *Registry) CompositeOption {
	return func(c *Composite) {
		if reg != nil {
			c.registry = reg
		}
	}
}

// WithLogger sets the logger used for resolution tracing. Defaults to the
// null logger. Handler failures during fan-out are never logged; they
// propagate to the caller untouched.
func WithLogger(l *logging.Logger) CompositeOption {
	return func(c *Composite) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewComposite creates a chain from an ordered sequence of references.
// The sequence is copied; nothing is resolved until first use.
func NewComposite(refs []Reference, opts ...CompositeOption) *Composite {
	c := &Composite{
		refs:     make([]Reference, len(refs)),
		registry: defaultRegistry,
		logger:   logging.Null,
	}
	copy(c.refs, refs)

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// References returns a copy of the configured reference sequence.
func (c *Composite) References() []Reference {
	refs := make([]Reference, len(c.refs))
	copy(refs, c.refs)
	return refs
}

// Handlers resolves every reference in configured order and returns the
// resolved chain. Resolution happens exactly once per Composite; subsequent
// calls return the identical slice. The order of the result is the dispatch
// order guarantee.
func (c *Composite) Handlers() ([]Handler, error) {
	c.resolveOnce.Do(func() {
		handlers := make([]Handler, 0, len(c.refs))
		for _, ref := range c.refs {
			h, err := ref.resolve(c.registry)
			if err != nil {
				c.resolveErr = err
				return
			}
			handlers = append(handlers, h)
		}
		c.resolved = handlers
		c.logger.WithComponent("composite").Debug("resolved %d handlers", len(handlers))
	})
	return c.resolved, c.resolveErr
}

// each fans a single extension-point call out to every resolved handler in
// chain order, stopping at the first error.
func (c *Composite) each(fn func(Handler) error) error {
	handlers, err := c.Handlers()
	if err != nil {
		return err
	}
	for _, h := range handlers {
		if err := fn(h); err != nil {
			return err
		}
	}
	return nil
}

// PreReadList implements Handler.
func (c *Composite) PreReadList(ctx context.Context, objects bundle.ObjectList, b *bundle.Bundle) error {
	return c.each(func(h Handler) error { return h.PreReadList(ctx, objects, b) })
}

// PostReadList implements Handler.
func (c *Composite) PostReadList(ctx context.Context, objects bundle.ObjectList, b *bundle.Bundle) error {
	return c.each(func(h Handler) error { return h.PostReadList(ctx, objects, b) })
}

// PreReadDetail implements Handler.
func (c *Composite) PreReadDetail(ctx context.Context, objects bundle.ObjectList, b *bundle.Bundle) error {
	return c.each(func(h Handler) error { return h.PreReadDetail(ctx, objects, b) })
}

// PostReadDetail implements Handler.
func (c *Composite) PostReadDetail(ctx context.Context, objects bundle.ObjectList, b *bundle.Bundle) error {
	return c.each(func(h Handler) error { return h.PostReadDetail(ctx, objects, b) })
}

// PreCreateDetail implements Handler.
func (c *Composite) PreCreateDetail(ctx context.Context, objects bundle.ObjectList, b *bundle.Bundle) error {
	return c.each(func(h Handler) error { return h.PreCreateDetail(ctx, objects, b) })
}

// PostCreateDetail implements Handler.
func (c *Composite) PostCreateDetail(ctx context.Context, objects bundle.ObjectList, b *bundle.Bundle) error {
	return c.each(func(h Handler) error { return h.PostCreateDetail(ctx, objects, b) })
}

// PreUpdateDetail implements Handler.
func (c *Composite) PreUpdateDetail(ctx context.Context, objects bundle.ObjectList, b *bundle.Bundle) error {
	return c.each(func(h Handler) error { return h.PreUpdateDetail(ctx, objects, b) })
}

// PostUpdateDetail implements Handler.
func (c *Composite) PostUpdateDetail(ctx context.Context, objects bundle.ObjectList, b *bundle.Bundle) error {
	return c.each(func(h Handler) error { return h.PostUpdateDetail(ctx, objects, b) })
}

// PreUpdateList implements Handler.
func (c *Composite) PreUpdateList(ctx context.Context, objects bundle.ObjectList, b *bundle.Bundle) error {
	return c.each(func(h Handler) error { return h.PreUpdateList(ctx, objects, b) })
}

// PostUpdateList implements Handler.
func (c *Composite) PostUpdateList(ctx context.Context, objects bundle.ObjectList, b *bundle.Bundle) error {
	return c.each(func(h Handler) error { return h.PostUpdateList(ctx, objects, b) })
}

// PreDeleteList implements Handler.
func (c *Composite) PreDeleteList(ctx context.Context, objects bundle.ObjectList, b *bundle.Bundle) error {
	return c.each(func(h Handler) error { return h.PreDeleteList(ctx, objects, b) })
}

// PostDeleteList implements Handler.
func (c *Composite) PostDeleteList(ctx context.Context, objects bundle.ObjectList, b *bundle.Bundle) error {
	return c.each(func(h Handler) error { return h.PostDeleteList(ctx, objects, b) })
}

// PreDeleteDetail implements Handler.
func (c *Composite) PreDeleteDetail(ctx context.Context, objects bundle.ObjectList, b *bundle.Bundle) error {
	return c.each(func(h Handler) error { return h.PreDeleteDetail(ctx, objects, b) })
}

// PostDeleteDetail implements Handler.
func (c *Composite) PostDeleteDetail(ctx context.Context, objects bundle.ObjectList, b *bundle.Bundle) error {
	return c.each(func(h Handler) error { return h.PostDeleteDetail(ctx, objects, b) })
}

// Ensure Composite satisfies the contract it aggregates.
var _ Handler = (*Composite)(nil)
