package browse

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/cfgpatch/cfg"
)

const (
	titleText    = "cfgpatch browse"
	filterPrompt = "➜ "

	// defaultListHeight is used until the first WindowSizeMsg arrives.
	defaultListHeight = 15

	// chromeLines is the number of non-list rows in the view: title, input,
	// and status line.
	chromeLines = 3
)

// Styles.
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	commandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	bindStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	settingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// kindStyle returns the style used to badge a statement kind.
func kindStyle(kind cfg.Kind) lipgloss.Style {
	switch kind {
	case cfg.KindCommand:
		return commandStyle
	case cfg.KindBind:
		return bindStyle
	case cfg.KindSetting:
		return settingStyle
	default:
		return hintStyle
	}
}
