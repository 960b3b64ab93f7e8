package sim

// HookPos names a place in a component where hooks are invoked.
type HookPos struct {
	Name string
}

// HookCtx carries what a hook can see at the place it is invoked.
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos

	// Item is the object the position is about, such as a bus transaction.
	Item interface{}

	// Detail is optional extra information.
	Detail interface{}
}

// Hookable is implemented by components that hooks can attach to.
type Hookable interface {
	AcceptHook(hook Hook)
}

// HookPosBusAccess triggers after a bus transaction completes, successfully
// or with an error response.
var HookPosBusAccess = &HookPos{Name: "BusAccess"}

// HookPosTrap triggers when a core raises a trap, before the handler runs.
var HookPosTrap = &HookPos{Name: "Trap"}

// Hook observes a component without changing its behavior.
type Hook interface {
	Func(ctx HookCtx)
}

// HookableBase implements Hookable. Components embed it.
type HookableBase struct {
	Hooks []Hook
}

// AcceptHook attaches a hook.
func (h *HookableBase) AcceptHook(hook Hook) {
	h.Hooks = append(h.Hooks, hook)
}

// NumHooks returns the number of attached hooks.
func (h *HookableBase) NumHooks() int {
	return len(h.Hooks)
}

// InvokeHook calls every attached hook in attach order.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.Hooks {
		hook.Func(ctx)
	}
}

// HookFunc adapts a plain function to the Hook interface.
type HookFunc func(ctx HookCtx)

// Func calls f(ctx).
func (f HookFunc) Func(ctx HookCtx) {
	f(ctx)
}
