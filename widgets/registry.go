package widgets

import "github.com/google/uuid"

// Registry maps element IDs to labels. Holders of an ID get a non-owning
// handle on the element: looking it up before the element is attached
// yields nil rather than a dangling pointer, and the UI tree stays the
// sole owner.
type Registry struct {
	elements map[string]*Label
}

func NewRegistry() *Registry {
	return &Registry{elements: map[string]*Label{}}
}

// Attach registers the label and returns its key. Labels without an ID get
// a generated one so anonymous elements are still addressable.
func (r *Registry) Attach(l *Label) string {
	if l == nil {
		return ""
	}
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	r.elements[l.ID] = l
	return l.ID
}

// Lookup returns the label for id, or nil when no element with that ID has
// been attached (or it was detached).
func (r *Registry) Lookup(id string) *Label {
	return r.elements[id]
}

func (r *Registry) Detach(id string) {
	delete(r.elements, id)
}

func (r *Registry) Len() int {
	return len(r.elements)
}
