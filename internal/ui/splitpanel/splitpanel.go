// Package splitpanel renders a two-panel terminal layout with borders and
// scrollbars, used by the interactive tree browser.
package splitpanel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cmdtree-tools/cli/internal/ui/style"
)

// Panel represents content for one side of the split
type Panel struct {
	Lines      []string // Content lines (already scrolled/visible)
	ScrollPos  int      // Current scroll position (for scrollbar calculation)
	TotalItems int      // Total scrollable items
}

// Config holds layout configuration
type Config struct {
	SidebarWidthPercent float64 // e.g., 0.35 for 35%
	SidebarMinWidth     int     // Minimum sidebar width
	SidebarMaxWidth     int     // Maximum sidebar width
}

// Layout holds computed dimensions and renders the split panel
type Layout struct {
	Width        int
	Height       int
	SidebarWidth int
	ContentWidth int
	FocusSidebar bool
	Colors       style.ColorConfig
}

// NewLayout creates a new layout with calculated widths
func NewLayout(width int, cfg Config, colors style.ColorConfig) *Layout {
	sidebarWidth := int(float64(width) * cfg.SidebarWidthPercent)
	sidebarWidth = max(sidebarWidth, cfg.SidebarMinWidth)
	sidebarWidth = min(sidebarWidth, cfg.SidebarMaxWidth)

	return &Layout{
		Width:        width,
		SidebarWidth: sidebarWidth,
		ContentWidth: width - sidebarWidth,
		Colors:       colors,
		FocusSidebar: true,
	}
}

// SetFocus sets which panel is focused
func (l *Layout) SetFocus(focusSidebar bool) {
	l.FocusSidebar = focusSidebar
}

// Render renders the split panel at the given height.
func (l *Layout) Render(sidebar, content Panel, height int) string {
	l.Height = height
	uiActiveColor := lipgloss.Color(l.Colors.UIActive)
	uiDimColor := lipgloss.Color(l.Colors.UIDim)

	sidebarStr := l.buildPanel(sidebar, l.SidebarWidth, height, l.FocusSidebar, uiActiveColor, uiDimColor)
	contentStr := l.buildPanel(content, l.ContentWidth, height, !l.FocusSidebar, uiActiveColor, uiDimColor)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarStr, contentStr)
}

// buildPanel creates a single panel with border and scrollbar
func (l *Layout) buildPanel(panel Panel, width, height int, focused bool, activeColor, dimColor lipgloss.Color) string {
	// Content width = panel width - border(2) - padding(2) - scrollbar(2)
	contentWidth := max(width-6, 1)

	// Visible height = panel height - border(2)
	visibleHeight := max(height-2, 1)

	lines := panel.Lines
	if len(lines) > visibleHeight {
		lines = lines[:visibleHeight]
	}
	for len(lines) < visibleHeight {
		lines = append(lines, "")
	}

	totalItems := panel.TotalItems
	if totalItems == 0 {
		totalItems = len(panel.Lines)
	}
	scrollbar := BuildScrollbar(visibleHeight, totalItems, panel.ScrollPos, activeColor, dimColor, focused)

	var result []string
	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > contentWidth {
			line = truncateString(line, contentWidth)
		} else if lineWidth < contentWidth {
			line = line + strings.Repeat(" ", contentWidth-lineWidth)
		}

		scrollChar := " "
		if i < len(scrollbar) {
			scrollChar = scrollbar[i]
		}
		result = append(result, line+" "+scrollChar)
	}

	borderColor := dimColor
	if focused {
		borderColor = activeColor
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1)

	return box.Render(strings.Join(result, "\n"))
}

// truncateString truncates a string to maxWidth, accounting for ANSI codes
func truncateString(s string, maxWidth int) string {
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	for i := len(runes); i > 0; i-- {
		candidate := string(runes[:i])
		if lipgloss.Width(candidate) <= maxWidth-3 {
			return candidate + "..."
		}
	}
	return "..."
}

// SidebarContentWidth returns usable width for sidebar content
func (l *Layout) SidebarContentWidth() int {
	return l.SidebarWidth - 6 // border(2) + padding(2) + scrollbar(2)
}

// MainContentWidth returns usable width for main content
func (l *Layout) MainContentWidth() int {
	return l.ContentWidth - 6
}

// VisibleHeight returns visible lines in a panel
func (l *Layout) VisibleHeight() int {
	return l.Height - 2 // inner border(2)
}
