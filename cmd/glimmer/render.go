package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/glimmer/lights"
)

var (
	litStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	unlitStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// renderBits spells a board snapshot as a bit string, styling lit
// cells when color is enabled.
func renderBits(bits []lights.Bit, color bool) string {
	var sb strings.Builder
	for _, b := range bits {
		switch {
		case !color && b == lights.On:
			sb.WriteByte('1')
		case !color:
			sb.WriteByte('0')
		case b == lights.On:
			sb.WriteString(litStyle.Render("1"))
		default:
			sb.WriteString(unlitStyle.Render("0"))
		}
	}
	return sb.String()
}
