package types

// Environment is DI's variable binding table: a chain of frames, each
// an insertion-ordered map, linked by a parent pointer — the teacher's
// own Environment shape (eval/environment.go), generalized here to give
// DI closures their declaration-time capture cheaply. A Scope never
// pushes a frame of its own (it flushes its own new names on exit, but
// reuses the same Environment throughout); only a FunctionDecl/ClassDecl
// capture and a function call push a new frame via Copy().
type Environment struct {
	parent *Environment
	order  []string
	vals   map[string]Value
}

func NewEnvironment() *Environment {
	return &Environment{vals: make(map[string]Value)}
}

// Get looks up name in this frame, then each enclosing frame in turn.
func (e *Environment) Get(name string) (Value, bool) {
	for f := e; f != nil; f = f.parent {
		if v, ok := f.vals[name]; ok {
			return v, ok
		}
	}
	return nil, false
}

func (e *Environment) Has(name string) bool {
	_, ok := e.Get(name)
	return ok
}

// Set updates name in whichever frame already binds it — walking out
// through the parent chain — so that a write to a name that exists in
// an enclosing frame is visible there too. If no frame in the chain
// binds name yet, it is introduced as a new binding in this frame.
func (e *Environment) Set(name string, v Value) {
	for f := e; f != nil; f = f.parent {
		if _, exists := f.vals[name]; exists {
			f.vals[name] = v
			return
		}
	}
	e.order = append(e.order, name)
	e.vals[name] = v
}

// Delete removes name from this frame only. Scope-flush and a call
// frame's own param/field bindings never need to reach past their own
// frame, so Delete does not walk the parent chain.
func (e *Environment) Delete(name string) {
	if _, exists := e.vals[name]; !exists {
		return
	}
	delete(e.vals, name)
	for i, n := range e.order {
		if n == name {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

// Keys returns this frame's own bindings, in insertion order — not the
// names visible through the parent chain. Scope-flush and class
// instance materialization both only ever care about what was bound
// directly in the frame they were handed.
func (e *Environment) Keys() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

func (e *Environment) Len() int { return len(e.order) }

// Copy returns a new, empty child frame whose parent is e. Reads for
// names not yet bound in the child fall through to e (and its
// ancestors); writes to a name e already holds update e's binding in
// place, through the live parent link, rather than a value frozen at
// copy time. A FunctionDecl/ClassDecl captures its closure with Copy()
// at declaration, and a call takes another Copy() of that closure for
// its own frame.
//
// This is what makes named recursion work: declaring `fib := function
// (n) ... fib(...) ...` takes the closure (a child of the declaring
// frame) before `fib` is bound, but the very next step of the same
// assignment binds `fib` into that same declaring frame — and because
// the closure is a live link rather than a detached value-copy, that
// binding is visible through the chain by the time `fib` is actually
// called. Scope-flush still contains the damage in the other
// direction: a name introduced for the first time during a call lands
// in the call's own frame (Set finds no existing binding anywhere up
// the chain) and is gone when that frame is discarded, so it never
// bleeds back into the caller.
func (e *Environment) Copy() *Environment {
	return &Environment{parent: e, vals: make(map[string]Value)}
}
