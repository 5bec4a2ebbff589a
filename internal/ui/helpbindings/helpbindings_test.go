package helpbindings

import (
	"strings"
	"testing"

	"github.com/llehouerou/sombox/internal/ui/action"
	"github.com/llehouerou/sombox/internal/ui/testutil"
)

func newTestHelpPopup(height int) (*testutil.PopupHarness, *Model) {
	m := New()
	m.SetSize(80, height)
	return testutil.NewPopupHarness(&m), &m
}

func assertClosed(t *testing.T, h *testutil.PopupHarness) {
	t.Helper()
	msgs := h.LastMsgs()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	actionMsg, ok := msgs[0].(action.Msg)
	if !ok {
		t.Fatalf("expected action.Msg, got %T", msgs[0])
	}
	if actionMsg.Source != Source {
		t.Errorf("Source = %q, want %q", actionMsg.Source, Source)
	}
	if _, ok := actionMsg.Action.(Close); !ok {
		t.Fatalf("expected Close, got %T", actionMsg.Action)
	}
}

func TestHelpBindings_CloseKeys(t *testing.T) {
	for _, key := range []string{"esc", "?", "q"} {
		t.Run(key, func(t *testing.T) {
			h, _ := newTestHelpPopup(30)
			h.Press(key)
			assertClosed(t, h)
		})
	}
}

func TestHelpBindings_Sections(t *testing.T) {
	sections := Sections()
	want := []string{"Basic Navigation", "Video Player Controls", "Quick Actions"}
	if len(sections) != len(want) {
		t.Fatalf("got %d sections, want %d", len(sections), len(want))
	}
	for i, title := range want {
		if sections[i].Title != title {
			t.Errorf("section %d = %q, want %q", i, sections[i].Title, title)
		}
		if len(sections[i].Entries) == 0 {
			t.Errorf("section %q has no entries", title)
		}
	}
}

func TestHelpBindings_SwitchSections(t *testing.T) {
	h, m := newTestHelpPopup(30)

	if !testutil.ContainsLine(h.View(), "Move up") {
		t.Error("first section should list navigation keys")
	}

	h.Press("right")
	if m.Section() != 1 {
		t.Fatalf("Section = %d, want 1", m.Section())
	}
	if !testutil.ContainsLine(h.View(), "Play/pause") {
		t.Error("player section should list play/pause")
	}

	h.Press("right", "right")
	if m.Section() != 0 {
		t.Errorf("Section = %d, want wrap to 0", m.Section())
	}

	h.Press("left")
	if m.Section() != 2 {
		t.Errorf("Section = %d, want 2", m.Section())
	}
	if !testutil.ContainsLine(h.View(), "Dial a channel number") {
		t.Error("quick actions should list the channel dial")
	}
}

func TestHelpBindings_SpaceShownByName(t *testing.T) {
	h, _ := newTestHelpPopup(30)
	line := testutil.FindLine(h.View(), "Select")
	if !strings.Contains(line, "enter, space") {
		t.Errorf("select line = %q, want keys enter, space", line)
	}
}

func TestHelpBindings_ScrollsShortViews(t *testing.T) {
	h, m := newTestHelpPopup(10)
	h.Press("right") // player section has more entries than fit

	if m.maxScroll() == 0 {
		t.Fatal("expected the player section to scroll at height 10")
	}
	h.Press("down", "down")
	if m.scrollOffset != 2 {
		t.Errorf("scrollOffset = %d, want 2", m.scrollOffset)
	}
	h.Press("up")
	if m.scrollOffset != 1 {
		t.Errorf("scrollOffset = %d, want 1", m.scrollOffset)
	}
	h.Press("right")
	if m.scrollOffset != 0 {
		t.Error("switching sections should reset the scroll")
	}
}

func TestHelpBindings_TitleAndFooter(t *testing.T) {
	h, _ := newTestHelpPopup(30)
	out := h.View()
	if !testutil.ContainsLine(out, Title) {
		t.Error("missing title")
	}
	if !testutil.ContainsLine(out, "?/esc close") {
		t.Error("missing footer")
	}
}

func TestHelpBindings_EmptyWithoutSize(t *testing.T) {
	m := New()
	if m.View() != "" {
		t.Error("expected empty view before sizing")
	}
}
