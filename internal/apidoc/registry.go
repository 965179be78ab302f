package apidoc

// Policy decides what happens when an entity name is already registered.
type Policy int

const (
	// PolicyMerge combines the registered entity with the new one.
	PolicyMerge Policy = iota
	// PolicyReplace overwrites the registered entity.
	PolicyReplace
)

// Outcome reports what Add did with an entity.
type Outcome int

const (
	Inserted Outcome = iota
	Merged
	Replaced
)

func (o Outcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case Merged:
		return "merged"
	case Replaced:
		return "replaced"
	default:
		return "unknown"
	}
}

// Registry accumulates entities keyed by name for one conversion run.
// Names keep the order in which they were first seen.
//
// A Registry is a value: Add returns the updated registry and leaves the
// receiver's view unchanged, so the driver threads it through the walk.
type Registry struct {
	order    []string
	entities map[string]Entity
}

// NewRegistry returns an empty registry.
func NewRegistry() Registry {
	return Registry{entities: map[string]Entity{}}
}

// Add registers e under its name according to policy.
func (r Registry) Add(e Entity, policy Policy) (Registry, Outcome) {
	next := Registry{
		order:    r.order[:len(r.order):len(r.order)],
		entities: make(map[string]Entity, len(r.entities)+1),
	}
	for k, v := range r.entities {
		next.entities[k] = v
	}

	prev, exists := next.entities[e.Name]
	switch {
	case !exists:
		next.order = append(next.order, e.Name)
		next.entities[e.Name] = e.Clone()
		return next, Inserted
	case policy == PolicyMerge:
		next.entities[e.Name] = Merge(prev, e)
		return next, Merged
	default:
		next.entities[e.Name] = e.Clone()
		return next, Replaced
	}
}

// Get returns the entity registered under name.
func (r Registry) Get(name string) (Entity, bool) {
	e, ok := r.entities[name]
	return e, ok
}

// Len returns the number of distinct entities.
func (r Registry) Len() int {
	return len(r.order)
}

// Entities returns the registered entities in first-seen order.
func (r Registry) Entities() []Entity {
	out := make([]Entity, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entities[name])
	}
	return out
}
