// Package registry holds the alias table: short names mapped to underlying
// tool invocations with fixed arguments prepended. Aliases are registered in
// a two-level tree, one group per tool with its aliases underneath, so a
// tool's install hint is declared once and shared by all of its wrappers.
package registry

import (
	"sort"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
)

// Alias maps a short name to fixed arguments for its group's tool.
type Alias struct {
	Name        string
	Args        []string
	Description string
}

// Group collects the aliases of a single tool together with the hint shown
// when the tool is not installed.
type Group struct {
	Tool        string
	InstallHint string
	Aliases     []Alias
}

// Invocation is a fully resolved alias: the tool to run and the fixed
// arguments to place before any forwarded ones.
type Invocation struct {
	Alias       string
	Tool        string
	Args        []string
	InstallHint string
}

// Registry is the alias tree. Alias names are unique across all groups; a
// later registration of an existing name replaces the earlier one, which is
// how user configuration overrides the builtin table.
type Registry struct {
	groups  map[string]*Group
	order   []string
	resolve map[string]Invocation
}

func New() *Registry {
	return &Registry{
		groups:  make(map[string]*Group),
		resolve: make(map[string]Invocation),
	}
}

// Default returns a registry pre-populated with the builtin alias table.
func Default() *Registry {
	r := New()
	for _, g := range builtinGroups() {
		r.Register(g)
	}
	return r
}

// Register merges a group into the registry. A group for an already
// registered tool extends the existing one; the install hint is replaced
// only when the incoming group provides one.
func (r *Registry) Register(group Group) {
	existing, ok := r.groups[group.Tool]
	if !ok {
		existing = &Group{Tool: group.Tool}
		r.groups[group.Tool] = existing
		r.order = append(r.order, group.Tool)
	}
	if group.InstallHint != "" {
		existing.InstallHint = group.InstallHint
	}

	for _, alias := range group.Aliases {
		if prev, taken := r.resolve[alias.Name]; taken {
			r.removeAlias(prev.Tool, alias.Name)
		}
		existing.Aliases = append(existing.Aliases, alias)
		r.resolve[alias.Name] = Invocation{
			Alias:       alias.Name,
			Tool:        group.Tool,
			Args:        alias.Args,
			InstallHint: existing.InstallHint,
		}
	}

	// Hint replacement has to reach aliases registered before the hint.
	for name, inv := range r.resolve {
		if inv.Tool == group.Tool {
			inv.InstallHint = existing.InstallHint
			r.resolve[name] = inv
		}
	}
}

func (r *Registry) removeAlias(tool, name string) {
	group, ok := r.groups[tool]
	if !ok {
		return
	}
	group.Aliases = lo.Reject(group.Aliases, func(a Alias, _ int) bool {
		return a.Name == name
	})
}

// Resolve looks up an alias by name.
func (r *Registry) Resolve(name string) (Invocation, bool) {
	inv, ok := r.resolve[name]
	return inv, ok
}

// Groups returns all groups sorted by tool name.
func (r *Registry) Groups() []*Group {
	groups := lo.Map(r.order, func(tool string, _ int) *Group {
		return r.groups[tool]
	})
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Tool < groups[j].Tool
	})
	return groups
}

// Group returns the group for a tool, or nil if the tool has no aliases.
func (r *Registry) Group(tool string) *Group {
	return r.groups[tool]
}

// Names returns all alias names sorted alphabetically.
func (r *Registry) Names() []string {
	names := lo.Keys(r.resolve)
	sort.Strings(names)
	return names
}

// Tools returns the distinct tool names sorted alphabetically.
func (r *Registry) Tools() []string {
	tools := lo.Keys(r.groups)
	sort.Strings(tools)
	return tools
}

// Suggest returns up to max alias names fuzzy-matching the given input,
// best matches first. Used for "did you mean" output on unknown aliases.
func (r *Registry) Suggest(input string, max int) []string {
	matches := fuzzy.Find(input, r.Names())
	if len(matches) > max {
		matches = matches[:max]
	}
	return lo.Map(matches, func(m fuzzy.Match, _ int) string {
		return m.Str
	})
}
