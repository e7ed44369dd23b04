// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Typically called with ui.Width() and ui.Height() as dimensions.
//
// Returns nil if content is empty
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	contentWidth := lipgloss.Width(content)
	contentHeight := lipgloss.Height(content)

	x := (screenWidth - contentWidth) / 2
	y := (screenHeight - contentHeight) / 2

	x = max(x, 0)
	y = max(y, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// ModalDimensions returns the outer size of a modal box for the given screen.
// The width is half the screen clamped to [ModalMinWidth, ModalMaxWidth] and
// never wider than the screen itself.
func ModalDimensions(screenWidth, screenHeight int) (int, int) {
	width := min(max(screenWidth/ModalDefaultWidthDivisor, ModalMinWidth), ModalMaxWidth)
	width = min(width, screenWidth)

	height := screenHeight * ModalMaxHeightNumerator / ModalMaxHeightDivisor
	height = max(height, ModalMinHeight)

	return width, height
}

// Stack builds the layer list for a base view with optional overlays.
// Nil overlays are skipped.
func Stack(base string, overlays ...*lipgloss.Layer) []*lipgloss.Layer {
	stack := []*lipgloss.Layer{lipgloss.NewLayer(base)}
	for _, layer := range overlays {
		if layer != nil {
			stack = append(stack, layer)
		}
	}
	return stack
}
