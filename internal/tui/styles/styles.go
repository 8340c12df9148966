package styles

import "github.com/charmbracelet/lipgloss"

type Style struct {
	Doc           lipgloss.Style
	TitleBar      lipgloss.Style
	Tab           lipgloss.Style
	ActiveTab     lipgloss.Style
	Card          lipgloss.Style
	SelectedCard  lipgloss.Style
	Dialog        lipgloss.Style
	LiveBanner    lipgloss.Style
	BadgePast     lipgloss.Style
	BadgeLive     lipgloss.Style
	BadgeUpcoming lipgloss.Style
	BadgeTBA      lipgloss.Style
	Countdown     lipgloss.Style
	Help          lipgloss.Style
	Error         lipgloss.Style
	Bold          lipgloss.Style
	Purple        lipgloss.Style
	Yellow        lipgloss.Style
	Subtle        lipgloss.Style
}

func Default() *Style {
	red := lipgloss.Color("#CF040E")
	yellow := lipgloss.Color("#FAD105")
	green := lipgloss.Color("#17C81D")
	purple := lipgloss.Color("#DA0ED3")
	orange := lipgloss.Color("#F77C14")
	fiaBlue := lipgloss.Color("#0B203B")
	light := lipgloss.Color("#D1D4DD")
	dark := lipgloss.Color("#383838")
	subtle := lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	primaryForeground := lipgloss.AdaptiveColor{Light: "#383838", Dark: "#D9DCCF"}

	badge := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(subtle).
		Padding(0, 1)

	return &Style{
		Doc: lipgloss.NewStyle().Margin(1, 1),
		// header styles
		TitleBar: lipgloss.NewStyle().
			Align(lipgloss.Center).
			Bold(true).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(primaryForeground).
			Foreground(primaryForeground),
		// tab bar
		Tab: lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(primaryForeground),
		ActiveTab: lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Background(red).
			Foreground(light),
		// race cards
		Card:         card,
		SelectedCard: card.BorderForeground(red),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryForeground).
			Padding(1, 2),
		LiveBanner: lipgloss.NewStyle().
			Align(lipgloss.Center).
			Bold(true).
			Background(red).
			Foreground(light).
			Padding(0, 2),
		// status badges
		BadgePast:     badge.Background(dark).Foreground(light),
		BadgeLive:     badge.Background(red).Foreground(light),
		BadgeUpcoming: badge.Background(green).Foreground(fiaBlue),
		BadgeTBA:      badge.Background(yellow).Foreground(fiaBlue),
		Countdown: lipgloss.NewStyle().
			Bold(true).
			Foreground(orange),
		Help:   lipgloss.NewStyle().Foreground(subtle).MarginTop(1),
		Error:  lipgloss.NewStyle().Foreground(red).Bold(true),
		Bold:   lipgloss.NewStyle().Bold(true),
		Purple: lipgloss.NewStyle().Foreground(purple),
		Yellow: lipgloss.NewStyle().Foreground(yellow),
		Subtle: lipgloss.NewStyle().Foreground(subtle),
	}
}
