package splitpanel

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/cmdtree-tools/cli/internal/ui/style"
)

var testConfig = Config{
	SidebarWidthPercent: 0.35,
	SidebarMinWidth:     24,
	SidebarMaxWidth:     40,
}

func TestNewLayoutClampsSidebarWidth(t *testing.T) {
	tests := []struct {
		name        string
		width       int
		wantSidebar int
	}{
		{"narrow terminal hits min", 40, 24},
		{"wide terminal hits max", 200, 40},
		{"mid terminal uses percent", 100, 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayout(tt.width, testConfig, style.ColorConfig{})
			require.Equal(t, tt.wantSidebar, l.SidebarWidth)
			require.Equal(t, tt.width-tt.wantSidebar, l.ContentWidth)
		})
	}
}

func TestContentWidthsAccountForChrome(t *testing.T) {
	l := NewLayout(100, testConfig, style.ColorConfig{})

	// border(2) + padding(2) + scrollbar(2)
	require.Equal(t, l.SidebarWidth-6, l.SidebarContentWidth())
	require.Equal(t, l.ContentWidth-6, l.MainContentWidth())
}

func TestRenderJoinsTwoPanels(t *testing.T) {
	l := NewLayout(60, testConfig, style.ColorConfig{})

	out := l.Render(
		Panel{Lines: []string{"one", "two"}},
		Panel{Lines: []string{"detail"}},
		8,
	)

	require.Contains(t, out, "one")
	require.Contains(t, out, "detail")

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 8)
}

func TestTruncateString(t *testing.T) {
	require.Equal(t, "short", truncateString("short", 10))
	require.Equal(t, "long ...", truncateString("long content here", 8))
}

func TestBuildScrollbarBlankWhenContentFits(t *testing.T) {
	bar := BuildScrollbar(10, 5, 0, lipgloss.Color("4"), lipgloss.Color("8"), true)

	require.Len(t, bar, 10)
	for _, c := range bar {
		require.Equal(t, " ", c)
	}
}

func TestBuildScrollbarThumbMovesWithOffset(t *testing.T) {
	top := BuildScrollbar(10, 100, 0, lipgloss.Color("4"), lipgloss.Color("8"), false)
	bottom := BuildScrollbar(10, 100, 90, lipgloss.Color("4"), lipgloss.Color("8"), false)

	require.Contains(t, top[0], ScrollThumbChar)
	require.Contains(t, bottom[len(bottom)-1], ScrollThumbChar)
	require.Contains(t, top[len(top)-1], ScrollTrackChar)
}
