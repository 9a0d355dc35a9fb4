package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lockin/internal/analytics"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)

	badgeControlled = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	badgeSolid = lipgloss.NewStyle().
			Foreground(lipgloss.Color("75")).
			Bold(true)

	badgeUnstable = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	badgeRed = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func gradeBadge(grade analytics.Grade) string {
	switch grade {
	case analytics.GradeControlled:
		return badgeControlled.Render(string(grade))
	case analytics.GradeSolid:
		return badgeSolid.Render(string(grade))
	case analytics.GradeUnstable:
		return badgeUnstable.Render(string(grade))
	default:
		return badgeRed.Render(string(grade))
	}
}

func rankBadge(rank analytics.WeekRank) string {
	switch rank {
	case analytics.RankControlledWeek:
		return badgeControlled.Render(string(rank))
	case analytics.RankSolidWeek:
		return badgeSolid.Render(string(rank))
	case analytics.RankUnstableWeek:
		return badgeUnstable.Render(string(rank))
	default:
		return badgeRed.Render(string(rank))
	}
}

func riskBadge(level analytics.RiskLevel) string {
	switch level {
	case analytics.RiskLow:
		return badgeControlled.Render(string(level))
	case analytics.RiskElevated:
		return badgeUnstable.Render(string(level))
	default:
		return badgeRed.Render(string(level))
	}
}
