package luahook

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/tidwall/gjson"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/resthook/bundle"
	"github.com/dshills/resthook/hook"
)

// Handler adapts a Lua script to the hook.Handler contract. Each extension
// point looks up the script's global function of the same snake_case name
// and calls it with (objects, bundle) tables; a missing function is a no-op.
type Handler struct {
	mu    sync.Mutex
	state *State
	path  string
}

// New loads a hook script from a file.
func New(path string) (*Handler, error) {
	st := NewState()
	if err := st.DoFile(path); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("loading hook script %s: %w", path, err)
	}
	return &Handler{state: st, path: path}, nil
}

// NewFromString loads a hook script from source code.
func NewFromString(code string) (*Handler, error) {
	st := NewState()
	if err := st.DoString(code); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("loading hook script: %w", err)
	}
	return &Handler{state: st, path: "<string>"}, nil
}

// Factory adapts a script path into a registry factory, so chains can refer
// to scripts through the same container.Member references as Go handlers.
// The script loads when the chain first resolves, not at registration.
func Factory(path string) hook.Factory {
	return func() (hook.Handler, error) {
		return New(path)
	}
}

// Path returns the script path.
func (h *Handler) Path() string {
	return h.path
}

// Close releases the script's Lua state.
func (h *Handler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state.Close()
}

// call invokes the script function for one extension point, if defined.
func (h *Handler) call(fn string, objects bundle.ObjectList, b *bundle.Bundle) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.state.HasFunction(fn) {
		return nil
	}

	objTbl := h.objectsTable(objects)
	bdlTbl := h.bundleTable(b)

	results, err := h.state.Call(fn, objTbl, bdlTbl)
	if err != nil {
		return fmt.Errorf("hook script %s: %s: %w", h.path, fn, err)
	}

	h.applyBundleTable(bdlTbl, b)

	return h.resultError(fn, results)
}

// objectsTable converts the object list to a Lua array table.
func (h *Handler) objectsTable(objects bundle.ObjectList) *lua.LTable {
	L := h.state.L
	t := L.NewTable()
	for i, obj := range objects {
		t.RawSetInt(i+1, toLua(L, obj))
	}
	return t
}

// bundleTable converts the bundle to a Lua table. The JSON payload is
// decoded so scripts manipulate it structurally.
func (h *Handler) bundleTable(b *bundle.Bundle) *lua.LTable {
	L := h.state.L
	t := L.NewTable()
	if b == nil {
		return t
	}

	t.RawSetString("id", lua.LString(b.ID))
	t.RawSetString("object", toLua(L, b.Object))
	t.RawSetString("meta", toLua(L, b.Meta))

	if b.HasData() {
		t.RawSetString("data", toLua(L, gjson.ParseBytes(b.Data()).Value()))
	} else {
		t.RawSetString("data", L.NewTable())
	}

	return t
}

// applyBundleTable copies script-side mutations of data and meta back into
// the bundle in place. The id and object fields are host-owned and ignored.
func (h *Handler) applyBundleTable(t *lua.LTable, b *bundle.Bundle) {
	if b == nil {
		return
	}

	if metaVal, ok := toGo(t.RawGetString("meta")).(map[string]any); ok {
		for k := range b.Meta {
			delete(b.Meta, k)
		}
		for k, v := range metaVal {
			b.Meta[k] = v
		}
	}

	if b.HasData() {
		if dataVal := toGo(t.RawGetString("data")); dataVal != nil {
			if encoded, err := json.Marshal(dataVal); err == nil {
				b.SetData(encoded)
			}
		}
	}
}

// resultError maps a script's return values onto the veto protocol: a
// non-empty string or false is an error, anything else is success.
func (h *Handler) resultError(fn string, results []lua.LValue) error {
	if len(results) == 0 {
		return nil
	}

	switch v := results[0].(type) {
	case lua.LBool:
		if bool(v) {
			return nil
		}
		if len(results) > 1 {
			if msg, ok := results[1].(lua.LString); ok {
				return fmt.Errorf("hook script %s: %s: %s", h.path, fn, string(msg))
			}
		}
		return fmt.Errorf("hook script %s: %s returned failure", h.path, fn)

	case lua.LString:
		if v != "" {
			return fmt.Errorf("hook script %s: %s: %s", h.path, fn, string(v))
		}
		return nil

	default:
		return nil
	}
}

// PreReadList implements hook.Handler.
func (h *Handler) PreReadList(_ context.Context, objects bundle.ObjectList, b *bundle.Bundle) error {
	return h.call("pre_read_list", objects, b)
}

// PostReadList implements hook.Handler.
func (h *Handler) PostReadList(_ context.Context, objects bundle.ObjectList, b *bundle.Bundle) error {
	return h.call("post_read_list", objects, b)
}

// PreReadDetail implements hook.Handler.
func (h *Handler) PreReadDetail(_ context.Context, objects bundle.ObjectList, b *bundle.Bundle) error {
	return h.call("pre_read_detail", objects, b)
}

// PostReadDetail implements hook.Handler.
func (h *Handler) PostReadDetail(_ context.Context, objects bundle.ObjectList, b *bundle.Bundle) error {
	return h.call("post_read_detail", objects, b)
}

// PreCreateDetail implements hook.Handler.
func (h *Handler) PreCreateDetail(_ context.Context, objects bundle.ObjectList, b *bundle.Bundle) error {
	return h.call("pre_create_detail", objects, b)
}

// PostCreateDetail implements hook.Handler.
func (h *Handler) PostCreateDetail(_ context.Context, objects bundle.ObjectList, b *bundle.Bundle) error {
	return h.call("post_create_detail", objects, b)
}

// PreUpdateDetail implements hook.Handler.
func (h *Handler) PreUpdateDetail(_ context.Context, objects bundle.ObjectList, b *bundle.Bundle) error {
	return h.call("pre_update_detail", objects, b)
}

// PostUpdateDetail implements hook.Handler.
func (h *Handler) PostUpdateDetail(_ context.Context, objects bundle.ObjectList, b *bundle.Bundle) error {
	return h.call("post_update_detail", objects, b)
}

// PreUpdateList implements hook.Handler.
func (h *Handler) PreUpdateList(_ context.Context, objects bundle.ObjectList, b *bundle.Bundle) error {
	return h.call("pre_update_list", objects, b)
}

// PostUpdateList implements hook.Handler.
func (h *Handler) PostUpdateList(_ context.Context, objects bundle.ObjectList, b *bundle.Bundle) error {
	return h.call("post_update_list", objects, b)
}

// PreDeleteList implements hook.Handler.
func (h *Handler) PreDeleteList(_ context.Context, objects bundle.ObjectList, b *bundle.Bundle) error {
	return h.call("pre_delete_list", objects, b)
}

// PostDeleteList implements hook.Handler.
func (h *Handler) PostDeleteList(_ context.Context, objects bundle.ObjectList, b *bundle.Bundle) error {
	return h.call("post_delete_list", objects, b)
}

// PreDeleteDetail implements hook.Handler.
func (h *Handler) PreDeleteDetail(_ context.Context, objects bundle.ObjectList, b *bundle.Bundle) error {
	return h.call("pre_delete_detail", objects, b)
}

// PostDeleteDetail implements hook.Handler.
func (h *Handler) PostDeleteDetail(_ context.Context, objects bundle.ObjectList, b *bundle.Bundle) error {
	return h.call("post_delete_detail", objects, b)
}

// Ensure Handler satisfies the hook contract.
var _ hook.Handler = (*Handler)(nil)
