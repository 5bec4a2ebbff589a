package headerbar

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/sombox/internal/ui/testutil"
)

var now = time.Date(2026, 3, 1, 20, 15, 0, 0, time.UTC)

func TestRender(t *testing.T) {
	out := testutil.StripANSI(Render("Channel Guide", now, DefaultWeather, 100))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, Height)

	assert.True(t, strings.HasPrefix(lines[0], "SomBox TV"))
	assert.Contains(t, lines[0], "Channel Guide")
	assert.Contains(t, lines[0], "☁ 24°")
	assert.Contains(t, lines[0], "20:15")
	assert.Contains(t, lines[0], "Sunday, Mar 1")
	assert.Equal(t, 100, testutil.MaxWidth(out))
}

func TestRender_Narrow(t *testing.T) {
	out := testutil.StripANSI(Render("Channel Guide", now, DefaultWeather, 40))
	assert.Contains(t, out, "20:15")
	assert.NotContains(t, out, "Sunday")
	assert.LessOrEqual(t, testutil.MaxWidth(out), 40)

	assert.Empty(t, Render("", now, DefaultWeather, 10))
}

func TestWeatherString(t *testing.T) {
	assert.Equal(t, "☀ 31°", Weather{TempC: 31, Condition: "Sunny"}.String())
	assert.Equal(t, "· -2°", Weather{TempC: -2, Condition: "Fog"}.String())
}
