package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/germanamz/coldcall/pkg/session"
)

const (
	gameTitle    = "Never Split the Difference Challenge - CRE Edition"
	gameSubtitle = "Hone your CRE negotiation skills"
)

// challengesMarkdown lists the bonus challenges shown below the list.
const challengesMarkdown = `## CRE Challenges

- **First 15 Minutes:** Double points for any technique
- **Streak Bonus:** +20 points for using 3 different techniques in a row
- **Market Expert:** +15 points for correctly citing a local market trend or statistic
`

// renderHeader draws the title, the score block, the active bonus rule and
// the timer.
func renderHeader(st session.State, rules session.Rules, width int) string {
	title := titleStyle.Render(gameTitle) + "\n" + subtitleStyle.Render(gameSubtitle)

	score := lipgloss.JoinVertical(lipgloss.Left,
		pointsStyle.Render(fmt.Sprintf("Total Points: %d", st.Points)),
		statStyle.Render(fmt.Sprintf("Streak: %d", st.Streak)),
		statStyle.Render(fmt.Sprintf("Level: %d", st.Level)),
		statStyle.Render(bonusRuleText(rules)),
	)

	state := pausedStyle.Render("paused · s to start")
	if st.Running {
		state = statStyle.Render("running · s to pause")
	}
	timer := lipgloss.JoinVertical(lipgloss.Right,
		timerStyle.Render("⏱ "+session.FormatElapsed(st.ElapsedSeconds)),
		state,
	)

	gap := max(width-lipgloss.Width(score)-lipgloss.Width(timer), 1)
	row := lipgloss.JoinHorizontal(lipgloss.Top, score, lipgloss.NewStyle().Width(gap).Render(""), timer)

	return lipgloss.JoinVertical(lipgloss.Left, title, "", row)
}

// renderNotification draws the alert box, or nothing when st holds none.
func renderNotification(st session.State) string {
	if st.Notification == "" {
		return ""
	}
	return alertStyle.Render(alertTitleStyle.Render("Notification") + "\n" + st.Notification)
}

// bonusRuleText describes when the streak bonus is paid.
func bonusRuleText(r session.Rules) string {
	if r.StreakBonus == 0 {
		return "Streak bonus: off"
	}
	if r.BonusCheck == session.BonusAfterIncrement {
		return fmt.Sprintf("Streak bonus: +%d every %d uses", r.StreakBonus, r.StreakLength)
	}
	return fmt.Sprintf("Streak bonus: +%d on the first use, then every %d", r.StreakBonus, r.StreakLength)
}
