package catalog

import (
	"strings"
)

// Registry is the read-only lookup structure built from a Catalog.
// It deduplicates entries by name while keeping catalog order, which is
// the order completion candidates are offered in.
type Registry struct {
	variables   []Variable
	varIndex    map[string]int // name → position in variables
	methods     []Method
	methodIndex map[string]int // name or alias → position in methods
	reserved    []string
}

// NewRegistry builds a registry from a catalog.
// Duplicate names keep the position of the first occurrence and the data of
// the richer entry (more formats/aliases, then longer description).
func NewRegistry(c Catalog) *Registry {
	r := &Registry{
		varIndex:    make(map[string]int, len(c.Variables)),
		methodIndex: make(map[string]int, len(c.Methods)),
		reserved:    append([]string(nil), c.Reserved...),
	}
	for _, v := range c.Variables {
		r.addVariable(v)
	}
	for _, m := range c.Methods {
		r.addMethod(m)
	}
	return r
}

func (r *Registry) addVariable(v Variable) {
	if v.Name == "" {
		return
	}
	idx, ok := r.varIndex[v.Name]
	if !ok {
		r.varIndex[v.Name] = len(r.variables)
		r.variables = append(r.variables, v)
		return
	}
	existing := r.variables[idx]
	if len(v.Formats) > len(existing.Formats) ||
		(len(v.Formats) == len(existing.Formats) && len(v.Description) > len(existing.Description)) {
		r.variables[idx] = v
	}
}

func (r *Registry) addMethod(m Method) {
	if m.Name == "" {
		return
	}
	idx, ok := r.methodIndex[m.Name]
	if ok && r.methods[idx].Name == m.Name {
		existing := r.methods[idx]
		if len(m.Aliases) > len(existing.Aliases) ||
			(len(m.Aliases) == len(existing.Aliases) && len(m.Description) > len(existing.Description)) {
			r.methods[idx] = m
		}
	} else {
		idx = len(r.methods)
		r.methods = append(r.methods, m)
	}
	// First claim on a name or alias wins so lookups stay stable.
	for _, name := range r.methods[idx].Names() {
		if _, taken := r.methodIndex[name]; !taken && name != "" {
			r.methodIndex[name] = idx
		}
	}
}

// Variables returns all variables in catalog order.
func (r *Registry) Variables() []Variable {
	return append([]Variable(nil), r.variables...)
}

// Methods returns all methods in catalog order.
func (r *Registry) Methods() []Method {
	return append([]Method(nil), r.methods...)
}

// Reserved returns the names that never start method completion.
func (r *Registry) Reserved() []string {
	return append([]string(nil), r.reserved...)
}

// LookupVariable finds a variable by exact name, falling back to a
// case-insensitive match.
func (r *Registry) LookupVariable(name string) (Variable, bool) {
	if idx, ok := r.varIndex[name]; ok {
		return r.variables[idx], true
	}
	for _, v := range r.variables {
		if strings.EqualFold(v.Name, name) {
			return v, true
		}
	}
	return Variable{}, false
}

// LookupMethod finds a method by canonical name or alias, falling back to a
// case-insensitive match.
func (r *Registry) LookupMethod(name string) (Method, bool) {
	if idx, ok := r.methodIndex[name]; ok {
		return r.methods[idx], true
	}
	for _, m := range r.methods {
		for _, n := range m.Names() {
			if strings.EqualFold(n, name) {
				return m, true
			}
		}
	}
	return Method{}, false
}

// Search returns variables and methods whose name, alias or description
// contains the query (case-insensitive). An empty query returns everything.
func (r *Registry) Search(query string) ([]Variable, []Method) {
	if query == "" {
		return r.Variables(), r.Methods()
	}
	query = strings.ToLower(query)
	var vars []Variable
	for _, v := range r.variables {
		if strings.Contains(strings.ToLower(v.Name), query) ||
			strings.Contains(strings.ToLower(v.Description), query) {
			vars = append(vars, v)
		}
	}
	var methods []Method
	for _, m := range r.methods {
		if strings.Contains(strings.ToLower(m.Description), query) {
			methods = append(methods, m)
			continue
		}
		for _, n := range m.Names() {
			if strings.Contains(strings.ToLower(n), query) {
				methods = append(methods, m)
				break
			}
		}
	}
	return vars, methods
}

// Size returns the number of unique variables and methods.
func (r *Registry) Size() (variables, methods int) {
	return len(r.variables), len(r.methods)
}
