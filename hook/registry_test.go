package hook

import (
	"errors"
	"strings"
	"testing"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()

	reg := NewRegistry()
	reg.Register("audit", Container{
		"Recorder": func() (Handler, error) { return &Base{}, nil },
	})
	return reg
}

func TestRegistryResolve(t *testing.T) {
	reg := newTestRegistry(t)

	h, err := reg.Resolve("audit.Recorder")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if h == nil {
		t.Fatal("Resolve() returned nil handler")
	}
}

func TestRegistryResolveNestedContainerPath(t *testing.T) {
	// Everything before the last dot is the container name.
	reg := NewRegistry()
	reg.Register("plugins.audit", Container{
		"Recorder": func() (Handler, error) { return &Base{}, nil },
	})

	if _, err := reg.Resolve("plugins.audit.Recorder"); err != nil {
		t.Errorf("Resolve() error = %v", err)
	}
}

func TestRegistryResolveBareReference(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.Resolve("Recorder")
	if !errors.Is(err, ErrBareReference) {
		t.Errorf("Resolve(bare) error = %v, want ErrBareReference", err)
	}

	// Leading dot leaves an empty container qualifier.
	_, err = reg.Resolve(".Recorder")
	if !errors.Is(err, ErrBareReference) {
		t.Errorf("Resolve(.Recorder) error = %v, want ErrBareReference", err)
	}
}

func TestRegistryResolveUnknownContainer(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.Resolve("nope.Recorder")
	if !errors.Is(err, ErrContainerNotFound) {
		t.Errorf("Resolve() error = %v, want ErrContainerNotFound", err)
	}
}

func TestRegistryResolveUnknownMember(t *testing.T) {
	reg := newTestRegistry(t)

	_, err := reg.Resolve("audit.Missing")
	if !errors.Is(err, ErrUnknownMember) {
		t.Fatalf("Resolve() error = %v, want ErrUnknownMember", err)
	}

	// The error names both the container and the missing member.
	msg := err.Error()
	if !strings.Contains(msg, "audit") || !strings.Contains(msg, "Missing") {
		t.Errorf("error %q does not name container and member", msg)
	}
}

func TestRegistryResolveFactoryError(t *testing.T) {
	boom := errors.New("boom")
	reg := NewRegistry()
	reg.RegisterMember("audit", "Broken", func() (Handler, error) { return nil, boom })

	_, err := reg.Resolve("audit.Broken")
	if !errors.Is(err, boom) {
		t.Errorf("Resolve() error = %v, want wrapped boom", err)
	}
}

func TestRegistryResolveNilHandler(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterMember("audit", "Nil", func() (Handler, error) { return nil, nil })

	_, err := reg.Resolve("audit.Nil")
	if !errors.Is(err, ErrNilHandler) {
		t.Errorf("Resolve() error = %v, want ErrNilHandler", err)
	}
}

func TestRegistryRegisterMerges(t *testing.T) {
	reg := NewRegistry()
	reg.Register("audit", Container{
		"A": func() (Handler, error) { return &Base{}, nil },
	})
	reg.Register("audit", Container{
		"B": func() (Handler, error) { return &Base{}, nil },
	})

	if _, err := reg.Resolve("audit.A"); err != nil {
		t.Errorf("Resolve(audit.A) error = %v", err)
	}
	if _, err := reg.Resolve("audit.B"); err != nil {
		t.Errorf("Resolve(audit.B) error = %v", err)
	}
}

func TestRegistryContainers(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterMember("b", "X", func() (Handler, error) { return &Base{}, nil })
	reg.RegisterMember("a", "X", func() (Handler, error) { return &Base{}, nil })

	names := reg.Containers()
	if len(names) != 2 {
		t.Fatalf("Containers() len = %d, want 2", len(names))
	}
	if names[0] != "a" || names[1] != "b" {
		t.Errorf("Containers() = %v, want sorted [a b]", names)
	}
}
