package splitpanel

import (
	"github.com/charmbracelet/lipgloss"
)

// Scrollbar characters
const (
	ScrollThumbChar = "█" // Full block for thumb
	ScrollTrackChar = "│" // Box drawing vertical for track
)

// BuildScrollbar creates a visual scrollbar column.
// viewHeight is the visible track height, totalItems the scrollable item
// count, and scrollOffset the current 0-based scroll position. The thumb is
// rendered in activeColor when the panel is focused, trackColor otherwise.
func BuildScrollbar(viewHeight, totalItems, scrollOffset int, activeColor, trackColor lipgloss.Color, focused bool) []string {
	scrollbar := make([]string, viewHeight)

	// All items fit: blank column, no scrollbar needed
	if totalItems <= viewHeight {
		for i := range scrollbar {
			scrollbar[i] = " "
		}
		return scrollbar
	}

	// Thumb size proportional to the visible share of the content
	thumbSize := (viewHeight * viewHeight) / totalItems
	thumbSize = max(thumbSize, 1)
	thumbSize = min(thumbSize, max(viewHeight-2, 1))

	// Thumb position proportional to scroll offset within scrollable range
	maxScroll := max(totalItems-viewHeight, 1)
	trackSpace := max(viewHeight-thumbSize, 0)

	thumbPos := 0
	if trackSpace > 0 {
		thumbPos = (scrollOffset * trackSpace) / maxScroll
	}
	thumbPos = max(thumbPos, 0)
	thumbPos = min(thumbPos, trackSpace)

	thumbColor := trackColor
	if focused {
		thumbColor = activeColor
	}
	thumbStyle := lipgloss.NewStyle().Foreground(thumbColor)
	trackStyle := lipgloss.NewStyle().Foreground(trackColor)

	for i := range viewHeight {
		if i >= thumbPos && i < thumbPos+thumbSize {
			scrollbar[i] = thumbStyle.Render(ScrollThumbChar)
		} else {
			scrollbar[i] = trackStyle.Render(ScrollTrackChar)
		}
	}

	return scrollbar
}
