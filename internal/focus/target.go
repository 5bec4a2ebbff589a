package focus

import (
	"fmt"
	"strconv"
	"strings"
)

// Zone names a group of focusable elements within a view.
type Zone string

const (
	ZoneCard    Zone = "category" // home menu cards
	ZoneCountry Zone = "country"  // guide sidebar
	ZoneChannel Zone = "channel"  // guide list and channel grid
	ZoneControl Zone = "control"  // player control row
)

// Target is the focused element: a zone and an index inside it.
type Target struct {
	Zone  Zone
	Index int
}

// None is the empty target.
var None = Target{Index: -1}

// At returns the target for index i of zone z.
func At(z Zone, i int) Target {
	return Target{Zone: z, Index: i}
}

// IsNone reports whether t points at nothing.
func (t Target) IsNone() bool {
	return t.Zone == "" || t.Index < 0
}

// Is reports whether t is index i of zone z.
func (t Target) Is(z Zone, i int) bool {
	return t.Zone == z && t.Index == i
}

// String returns the element identifier, e.g. "channel-3".
func (t Target) String() string {
	if t.IsNone() {
		return ""
	}
	return fmt.Sprintf("%s-%d", t.Zone, t.Index)
}

// ParseTarget parses an identifier produced by Target.String.
func ParseTarget(s string) (Target, bool) {
	i := strings.LastIndexByte(s, '-')
	if i <= 0 {
		return None, false
	}
	idx, err := strconv.Atoi(s[i+1:])
	if err != nil || idx < 0 {
		return None, false
	}
	return At(Zone(s[:i]), idx), true
}
