package calc

import "sort"

// scopes is an arena of scope records. Records are never removed, so an
// index stays valid for the arena's lifetime.
type scopes struct {
	recs []scoperec
}

type scoperec struct {
	vars map[string]Value
	// parent is the index of the parent record, or -1 for a root.
	parent int
}

// Scope is a handle to a mapping from variable names to values, chained to
// an optional parent scope. The zero Scope is not usable; create one with
// NewScope. Scopes are not safe for concurrent use.
type Scope struct {
	a  *scopes
	id int
}

// NewScope creates a root scope.
func NewScope() Scope {
	a := &scopes{}
	return Scope{a: a, id: a.add(-1)}
}

func (a *scopes) add(parent int) int {
	a.recs = append(a.recs, scoperec{vars: make(map[string]Value), parent: parent})
	return len(a.recs) - 1
}

// Child creates a scope whose parent is s. Lookups and assignments in the
// child fall through to s for names the child does not hold.
func (s Scope) Child() Scope {
	return Scope{a: s.a, id: s.a.add(s.id)}
}

// Parent returns the parent of s. The second result is false if s is a root.
func (s Scope) Parent() (Scope, bool) {
	p := s.a.recs[s.id].parent
	if p < 0 {
		return Scope{}, false
	}
	return Scope{a: s.a, id: p}, true
}

// Assign sets the value of a variable. The nearest scope in the chain which
// already holds name is updated. If none does, the variable is created in the
// root of the chain.
func (s Scope) Assign(name string, v Value) {
	id := s.id
	for {
		rec := &s.a.recs[id]
		if _, ok := rec.vars[name]; ok || rec.parent < 0 {
			rec.vars[name] = v
			return
		}
		id = rec.parent
	}
}

// Declare sets the value of a variable in s itself, shadowing any variable
// of the same name in its parents.
func (s Scope) Declare(name string, v Value) {
	s.a.recs[s.id].vars[name] = v
}

// Get looks up a variable in s and its parents. The second result is false
// if no scope in the chain holds name.
func (s Scope) Get(name string) (Value, bool) {
	for id := s.id; id >= 0; id = s.a.recs[id].parent {
		if v, ok := s.a.recs[id].vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Names returns the sorted names of the variables held directly by s.
func (s Scope) Names() []string {
	vars := s.a.recs[s.id].vars
	names := make([]string, 0, len(vars))
	for k := range vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
