package textinput

import (
	"testing"

	"github.com/llehouerou/sombox/internal/ui/action"
	"github.com/llehouerou/sombox/internal/ui/testutil"
)

func actions(t *testing.T, m *Model, key string) []action.Action {
	t.Helper()
	var out []action.Action
	for _, msg := range testutil.Exec(m.Update(testutil.Key(key))) {
		if am, ok := msg.(action.Msg); ok {
			if am.Source != Source {
				t.Errorf("Source = %q, want %q", am.Source, Source)
			}
			out = append(out, am.Action)
		}
	}
	return out
}

func TestInactive_IgnoresKeys(t *testing.T) {
	m := New()
	if cmd := m.Update(testutil.Key("a")); cmd != nil {
		t.Error("inactive field returned a command")
	}
	if m.Value() != "" {
		t.Errorf("Value = %q, want empty", m.Value())
	}
}

func TestTyping_ReportsChanges(t *testing.T) {
	m := New()
	m.Start("")
	if !m.Active() {
		t.Fatal("expected active field")
	}

	got := actions(t, &m, "e")
	if len(got) != 1 || got[0] != (Changed{Text: "e"}) {
		t.Fatalf("actions = %#v, want Changed{e}", got)
	}
	got = actions(t, &m, "s")
	if len(got) != 1 || got[0] != (Changed{Text: "es"}) {
		t.Fatalf("actions = %#v, want Changed{es}", got)
	}
}

func TestEnter_KeepsText(t *testing.T) {
	m := New()
	m.Start("news")

	got := actions(t, &m, "enter")
	if len(got) != 1 || got[0] != (Result{Text: "news"}) {
		t.Fatalf("actions = %#v, want Result{news}", got)
	}
	if m.Active() {
		t.Error("field still active after enter")
	}
	if m.Value() != "news" {
		t.Errorf("Value = %q, want news", m.Value())
	}
}

func TestEsc_ClearsText(t *testing.T) {
	m := New()
	m.Start("news")

	got := actions(t, &m, "esc")
	if len(got) != 2 {
		t.Fatalf("got %d actions, want 2", len(got))
	}
	if got[0] != (Changed{}) || got[1] != (Result{Canceled: true}) {
		t.Errorf("actions = %#v", got)
	}
	if m.Value() != "" {
		t.Errorf("Value = %q, want empty", m.Value())
	}
}

func TestEsc_EmptyOnlyCloses(t *testing.T) {
	m := New()
	m.Start("")

	got := actions(t, &m, "esc")
	if len(got) != 1 || got[0] != (Result{Canceled: true}) {
		t.Fatalf("actions = %#v, want Result{Canceled}", got)
	}
}

func TestView_ShowsPrompt(t *testing.T) {
	m := New()
	m.Start("sport")
	out := testutil.StripANSI(m.View(40))
	if !testutil.ContainsLine(out, "/ sport") {
		t.Errorf("view %q missing prompt and text", out)
	}
}
