// Package hook provides the extension-point system for resource lifecycles.
//
// A hosting web API framework fires hooks around its CRUD resource
// operations. Fourteen extension points exist, one pre/post pair for each of:
// read-list, read-detail, create-detail, update-detail, update-list,
// delete-list and delete-detail. Every point has the same shape: the
// authorization-filtered object list and the mutable request bundle go in,
// an error comes out.
//
// The main components are:
//   - Handler: the fourteen-method capability contract
//   - Base: an embeddable no-op implementation, override only what you need
//   - Registry: maps dotted reference paths to handler factories
//   - Composite: fans one call out to an ordered chain of handlers
//
// # Quick Start
//
// Implement a handler by embedding Base:
//
//	type Audit struct {
//	    hook.Base
//	}
//
//	func (a *Audit) PostCreateDetail(ctx context.Context, objects bundle.ObjectList, b *bundle.Bundle) error {
//	    log.Printf("created %s", b.ID)
//	    return nil
//	}
//
// Register it and build a chain:
//
//	hook.Register("audit", hook.Container{
//	    "Recorder": func() (hook.Handler, error) { return &Audit{}, nil },
//	})
//
//	chain := hook.NewComposite([]hook.Reference{
//	    hook.PathRef("audit.Recorder"),
//	})
//
// The chain resolves its references on first use and dispatches every
// extension point to each handler in registration order, stopping at the
// first error. An error from any handler vetoes the rest of the chain and
// propagates to the host unchanged.
package hook
