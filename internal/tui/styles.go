// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	labelStyle   = lipgloss.NewStyle().Width(32)
	focusedStyle = lipgloss.NewStyle().Bold(true)
	dirtyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	statusStyles = map[string]lipgloss.Style{
		"clean":  lipgloss.NewStyle().Faint(true),
		"dirty":  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		"saving": lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		"saved":  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		"error":  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
)
