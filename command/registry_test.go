package command

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testRegistry() *Registry[*testParam] {
	return NewRegistry(
		&Command[*testParam]{ID: "file.open", Name: "Open File", Scopes: []string{"main"}},
		&Command[*testParam]{ID: "folder.open", Name: "Open Folder", Scopes: []string{"main"}},
		&Command[*testParam]{
			ID:     "task.run",
			Name:   "Run Task",
			CanRun: func(p *testParam) bool { return p != nil && p.armed },
		},
		&Command[*testParam]{ID: "picker.only", Name: "Picker Only", Scopes: []string{"picker"}},
	)
}

func TestRegisterRequiresID(t *testing.T) {
	r := NewRegistry[*testParam]()
	r.Register(&Command[*testParam]{Name: "anonymous"})
	r.Register(nil)
	if r.Len() != 0 {
		t.Fatalf("Len = %d, want 0", r.Len())
	}
}

func TestSearchFiltersByScope(t *testing.T) {
	r := testRegistry()
	for _, res := range r.Search("", "main", nil) {
		if res.ID == "picker.only" {
			t.Fatalf("picker-scoped command leaked into main scope")
		}
	}
	found := false
	for _, res := range r.Search("", "picker", nil) {
		if res.ID == "picker.only" {
			found = true
		}
	}
	if !found {
		t.Fatalf("picker-scoped command missing from its own scope")
	}
}

func TestSearchRanksByEditDistance(t *testing.T) {
	r := testRegistry()
	results := r.Search("open", "main", nil)
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if results[0].ID != "file.open" {
		t.Fatalf("first result = %s, want file.open", results[0].ID)
	}
}

func TestSearchOrdersAvailableFirst(t *testing.T) {
	r := testRegistry()
	results := r.Search("", "main", &testParam{})
	if len(results) == 0 {
		t.Fatalf("empty query returned no results")
	}
	last := results[len(results)-1]
	if last.ID != "task.run" || last.Enabled {
		t.Fatalf("unavailable command not sorted last: %+v", last)
	}
}

func TestExecuteUnknownOrUnavailable(t *testing.T) {
	r := testRegistry()
	if cmd := r.Execute("missing", nil); cmd != nil {
		t.Fatalf("unknown command returned %v, want nil", cmd)
	}
	if cmd := r.Execute("task.run", &testParam{}); cmd != nil {
		t.Fatalf("unavailable command returned %v, want nil", cmd)
	}
}

func TestExecuteDispatches(t *testing.T) {
	ran := false
	r := NewRegistry(&Command[*testParam]{
		ID:     "go",
		Action: func(*testParam) tea.Cmd { ran = true; return nil },
	})
	_ = r.Execute("go", nil)
	if !ran {
		t.Fatalf("Execute did not reach the action")
	}
}

func TestRefreshAll(t *testing.T) {
	r := testRegistry()
	signals := 0
	for _, id := range []string{"file.open", "folder.open", "task.run", "picker.only"} {
		c, ok := r.Get(id)
		if !ok {
			t.Fatalf("command %s not registered", id)
		}
		c.OnEnabledChanged(func() { signals++ })
	}
	r.RefreshAll()
	if signals != 4 {
		t.Fatalf("signals = %d, want 4", signals)
	}
}

func TestScopeMatch(t *testing.T) {
	cases := []struct {
		scope  string
		scopes []string
		want   bool
	}{
		{"main", nil, true},
		{"main", []string{"*"}, true},
		{"main", []string{"main"}, true},
		{"main", []string{"picker"}, false},
		{"", []string{"main"}, false},
	}
	for _, tc := range cases {
		if got := scopeMatch(tc.scope, tc.scopes); got != tc.want {
			t.Fatalf("scopeMatch(%q, %v) = %v, want %v", tc.scope, tc.scopes, got, tc.want)
		}
	}
}
