// Package ui renders the admin list screens: a table of records with search,
// status filtering, bounded pagination, and a delete confirmation modal.
package ui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles shared by every list page.
type Styles struct {
	Title     lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Active    lipgloss.Style
	Inactive  lipgloss.Style
	PageNum   lipgloss.Style
	PageCur   lipgloss.Style
	ModalBox  lipgloss.Style
	ModalWarn lipgloss.Style
	Empty     lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A")),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")),
		Active:    lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")),
		Inactive:  lipgloss.NewStyle().Foreground(lipgloss.Color("#9e9e9e")),
		PageNum:   lipgloss.NewStyle().Padding(0, 1),
		PageCur:   lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true),
		ModalBox:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		ModalWarn: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e53935")),
		Empty:     lipgloss.NewStyle().Faint(true).Padding(1, 2),
	}
}
