package command

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
)

// Result is one Search hit, flattened for presentation.
type Result struct {
	ID      string
	Name    string
	Desc    string
	Enabled bool
}

// Registry keys commands by ID for palette search and dispatch.
type Registry[P any] struct {
	commands map[string]*Command[P]
}

func NewRegistry[P any](cmds ...*Command[P]) *Registry[P] {
	r := &Registry[P]{commands: map[string]*Command[P]{}}
	for _, c := range cmds {
		r.Register(c)
	}
	return r
}

// Register adds c, replacing any command with the same ID. Commands without
// an ID are dropped.
func (r *Registry[P]) Register(c *Command[P]) {
	if c == nil || c.ID == "" {
		return
	}
	r.commands[c.ID] = c
}

func (r *Registry[P]) Get(id string) (*Command[P], bool) {
	c, ok := r.commands[id]
	return c, ok
}

func (r *Registry[P]) Len() int { return len(r.commands) }

// Search returns the commands visible in scope whose name, description or
// ID contain query. Available commands sort first, then by edit distance
// between query and name, then by name. An empty query matches everything.
func (r *Registry[P]) Search(query, scope string, p P) []Result {
	q := strings.ToLower(strings.TrimSpace(query))
	type ranked struct {
		res  Result
		dist int
	}
	hits := make([]ranked, 0, len(r.commands))
	for _, c := range r.commands {
		if !scopeMatch(scope, c.Scopes) {
			continue
		}
		hay := strings.ToLower(c.Name + " " + c.Description + " " + c.ID)
		if q != "" && !strings.Contains(hay, q) {
			continue
		}
		dist := 0
		if q != "" {
			dist = levenshtein.ComputeDistance(q, strings.ToLower(c.Name))
		}
		hits = append(hits, ranked{
			res:  Result{ID: c.ID, Name: c.Name, Desc: c.Description, Enabled: c.CanExecute(p)},
			dist: dist,
		})
	}
	slices.SortFunc(hits, func(a, b ranked) int {
		if a.res.Enabled != b.res.Enabled {
			if a.res.Enabled {
				return -1
			}
			return 1
		}
		if a.dist != b.dist {
			return cmp.Compare(a.dist, b.dist)
		}
		return cmp.Compare(a.res.Name, b.res.Name)
	})
	out := make([]Result, len(hits))
	for i, h := range hits {
		out[i] = h.res
	}
	return out
}

// Execute dispatches the command registered under id. Unknown or currently
// unavailable commands yield nil.
func (r *Registry[P]) Execute(id string, p P) tea.Cmd {
	c, ok := r.commands[id]
	if !ok {
		return nil
	}
	if !c.CanExecute(p) {
		return nil
	}
	return c.Execute(p)
}

// RefreshAll signals every registered command to re-evaluate availability.
func (r *Registry[P]) RefreshAll() {
	for _, c := range r.commands {
		c.Refresh()
	}
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
