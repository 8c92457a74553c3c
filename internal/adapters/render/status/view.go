package status

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/owdragon-cli/internal/application"
	"github.com/bnema/owdragon-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now          time.Time
	FeedInterval time.Duration
}

func renderStatusView(statuses []application.AccountStatus, opts RenderOptions, s styles) string {
	failed := 0
	for _, status := range statuses {
		if !status.OK() {
			failed++
		}
	}

	lines := []string{
		s.title.Render("OW Dragon Accounts"),
		s.header.Render(fmt.Sprintf("accounts: %d  failed: %d", len(statuses), failed)),
	}

	if len(statuses) == 0 {
		lines = append(lines, s.empty.Render("No accounts configured."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, status := range statuses {
		lines = append(lines, s.section.Render(renderStatus(status, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderStatus(status application.AccountStatus, s styles) string {
	parts := []string{
		s.account.Render(accountTitle(status.ID, status.Kind, status.Source)),
	}
	if status.Address != "" {
		parts = append(parts, s.detail.Render("address: "+status.Address))
	}
	if status.Err != nil {
		parts = append(parts, s.warning.Render("error: "+status.Err.Error()))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	parts = append(parts, statsLine(status.Power, status.Balance, s))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderReportView(result application.FleetResult, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("OW Dragon Run Summary"),
		s.header.Render(fmt.Sprintf("run: %s  accounts: %d  failed: %d", result.RunID, len(result.Reports), result.Failed())),
	}

	if len(result.Reports) == 0 {
		lines = append(lines, s.empty.Render("No accounts were run."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, report := range result.Reports {
		lines = append(lines, s.section.Render(renderReport(report, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderReport(report application.Report, opts RenderOptions, s styles) string {
	parts := []string{
		s.account.Render(fmt.Sprintf("%s [%s]", report.AccountID, report.State)),
	}
	if report.Err != nil {
		parts = append(parts, s.warning.Render("error: "+report.Err.Error()))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	if report.Address != "" {
		parts = append(parts, s.detail.Render("address: "+report.Address))
	}
	parts = append(parts,
		statsLine(report.Power, report.Balance, s),
		s.detail.Render(fmt.Sprintf("feeds: %d  last reward: %s  missions cleared: %d", report.Feeds, report.LastReward, report.MissionsCleared)),
		feedLine(report.LastFeedAt, opts, s),
	)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func accountTitle(id domain.AccountID, kind domain.CredentialKind, source string) string {
	if strings.TrimSpace(source) == "" {
		return fmt.Sprintf("%s (%s)", id, kind)
	}
	return fmt.Sprintf("%s (%s, %s)", id, kind, source)
}

func statsLine(power, balance domain.Amount, s styles) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.statKey.Render("power: "),
		s.statValue.Render(power.String()),
		"  ",
		s.statKey.Render("balance: "),
		s.statValue.Render(balance.String()),
	)
}

func feedLine(lastFeedAt time.Time, opts RenderOptions, s styles) string {
	if lastFeedAt.IsZero() {
		return s.meta.Render("next feed: due (never fed)")
	}
	if opts.FeedInterval <= 0 {
		return s.meta.Render("last feed: " + lastFeedAt.Format(time.RFC3339))
	}

	next := lastFeedAt.Add(opts.FeedInterval)
	elapsed := opts.Now.Sub(lastFeedAt)
	style := lipgloss.NewStyle().Foreground(interpolateColor(elapsed.Seconds(), 0, opts.FeedInterval.Seconds()))
	return style.Render(formatNextFeed(next, opts.Now))
}

func formatNextFeedAt(next, now time.Time) string {
	if now.IsZero() {
		return next.Format(time.RFC3339)
	}

	yearA, monthA, dayA := now.Date()
	yearB, monthB, dayB := next.Date()
	if yearA == yearB && monthA == monthB && dayA == dayB {
		return next.Format("15:04")
	}

	return next.Format("15:04 on 02 Jan")
}

func formatNextFeed(next, now time.Time) string {
	if now.IsZero() {
		return "next feed at " + formatNextFeedAt(next, now)
	}
	if !next.After(now) {
		return "next feed: due"
	}

	remaining := next.Sub(now)
	if remaining < time.Hour {
		minutes := int(math.Ceil(remaining.Minutes()))
		suffix := "minutes"
		if minutes == 1 {
			suffix = "minute"
		}
		return fmt.Sprintf("next feed in %d %s (%s)", minutes, suffix, formatNextFeedAt(next, now))
	}

	hours := int(math.Ceil(remaining.Hours()))
	suffix := "hours"
	if hours == 1 {
		suffix = "hour"
	}
	return fmt.Sprintf("next feed in %d %s (%s)", hours, suffix, formatNextFeedAt(next, now))
}

// interpolateColor maps value onto the 240..255 greyscale ramp; closer to
// max is brighter.
func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	return lipgloss.Color(fmt.Sprintf("%d", int(240.0+15.0*normalized)))
}
