package keymap

// Resolver looks up the action bound to a key in a stack of contexts.
type Resolver struct {
	byContext map[string]map[string]Action
}

// NewResolver indexes bindings by context. Within a context a later binding
// of the same key wins.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{byContext: make(map[string]map[string]Action)}
	for _, b := range bindings {
		table := r.byContext[b.Context]
		if table == nil {
			table = make(map[string]Action)
			r.byContext[b.Context] = table
		}
		for _, k := range b.Keys {
			table[k] = b.Action
		}
	}
	return r
}

// Resolve returns the action for key, or "" when unbound. contexts are
// searched most specific first; global bindings apply last.
func (r *Resolver) Resolve(key string, contexts ...string) Action {
	for _, ctx := range contexts {
		if a, ok := r.byContext[ctx][key]; ok {
			return a
		}
	}
	return r.byContext[ContextGlobal][key]
}
