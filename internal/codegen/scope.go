package codegen

import "strconv"

// scope tracks the Python names in use at one nesting level, so that
// synthesized temporaries never collide with source-level bindings.
type scope struct {
	parent *scope
	names  map[string]struct{}
}

func (s *scope) claim(name string) {
	s.names[name] = struct{}{}
}

func (s *scope) inUse(name string) bool {
	for cur := s; cur != nil; cur = cur.parent {
		if _, ok := cur.names[name]; ok {
			return true
		}
	}
	return false
}

// makeSymbol returns preferred if free, otherwise preferred1, preferred2
// and so on, and claims the chosen name.
func (s *scope) makeSymbol(preferred string) string {
	name := preferred
	for i := 1; s.inUse(name); i++ {
		name = preferred + strconv.Itoa(i)
	}
	s.claim(name)
	return name
}

type env struct {
	top *scope
}

func newEnv() *env {
	return &env{top: &scope{names: map[string]struct{}{}}}
}

func (e *env) current() *scope { return e.top }

func (e *env) push() {
	e.top = &scope{parent: e.top, names: map[string]struct{}{}}
}

func (e *env) pop() {
	e.top = e.top.parent
}
