package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/shreymonka/marine-migration/internal/models"
)

// renderMigrationTab renders the humpback migration reference view: seasonal
// presence for the current month, prey preferences, and the chlorophyll
// feeding assessment from the latest fetch.
func (m Model) renderMigrationTab() string {
	var sections []string

	sections = append(sections, m.renderPresencePane(time.Now()))
	sections = append(sections, m.renderPreyPane())
	sections = append(sections, m.renderChlorophyllPane())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

var presenceLabels = [4]string{"Absent", "Low", "Medium", "High"}

// renderPresencePane charts species presence levels for the current month.
func (m Model) renderPresencePane(now time.Time) string {
	month := int(now.Month()) - 1

	var content strings.Builder
	content.WriteString(titleStyle.Render(fmt.Sprintf("Presence in Holyrood Waters - %s", now.Format("January"))))
	content.WriteString("\n\n")

	barStyles := []lipgloss.Style{
		lipgloss.NewStyle().Foreground(colorPrimary),
		lipgloss.NewStyle().Foreground(colorChlorophyll),
		lipgloss.NewStyle().Foreground(colorSuccess),
		lipgloss.NewStyle().Foreground(colorSecondary),
	}

	bc := barchart.New(44, 8)
	for i, entry := range models.PresenceCalendar {
		bc.Push(barchart.BarData{
			Label: entry.Name,
			Values: []barchart.BarValue{
				{Name: entry.Name, Value: float64(entry.Levels[month]), Style: barStyles[i%len(barStyles)]},
			},
		})
	}
	bc.Draw()
	content.WriteString(bc.View())
	content.WriteString("\n")

	for _, entry := range models.PresenceCalendar {
		level := entry.Levels[month]
		content.WriteString(fmt.Sprintf("%s %s\n",
			labelStyle.Width(18).Render(entry.Name),
			valueStyle.Render(presenceLabels[level])))
	}

	return paneStyle.Render(content.String())
}

// renderPreyPane lists prey species preferences.
func (m Model) renderPreyPane() string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("Prey Species Reference"))
	content.WriteString("\n\n")

	content.WriteString(labelStyle.Render(fmt.Sprintf("%-10s %-14s %-18s %s\n",
		"Species", "Temp (C)", "Chlorophyll", "Peak Season")))

	for _, prey := range models.PreyProfiles {
		line := fmt.Sprintf("%-10s %-14s %-18s %s\n",
			prey.Name,
			fmt.Sprintf("%.1f to %.1f", prey.TempRange.Min, prey.TempRange.Max),
			fmt.Sprintf("%.1f - %.1f mg/m3", prey.ChlorophyllRange.Min, prey.ChlorophyllRange.Max),
			prey.PeakSeason)
		content.WriteString(valueStyle.Render(line))
	}

	// Flag prey whose preferred water matches the latest temperature reading
	if temp, ok := m.table.LastValue(models.ChannelTemperature); ok {
		var matches []string
		for _, prey := range models.PreyProfiles {
			if prey.TempRange.Contains(temp) {
				matches = append(matches, prey.Name)
			}
		}
		content.WriteString("\n")
		if len(matches) > 0 {
			content.WriteString(labelStyle.Render("In-range at current temperature: "))
			content.WriteString(valueStyle.Render(strings.Join(matches, ", ")))
		} else {
			content.WriteString(mutedStyle.Render(fmt.Sprintf("No prey species favors the current %.1f C water", temp)))
		}
	}

	return paneStyle.Render(content.String())
}

// renderChlorophyllPane grades the latest chlorophyll reading.
func (m Model) renderChlorophyllPane() string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("Chlorophyll Impact Analysis"))
	content.WriteString("\n\n")

	level, ok := m.table.LastValue(models.ChannelChlorophyll)
	if !ok {
		content.WriteString(mutedStyle.Render("Chlorophyll data is not available in the current dataset."))
		return paneStyle.Render(content.String())
	}

	assessment := models.ChlorophyllImpact(level)

	statusStyle := impactLowStyle
	switch assessment.Status {
	case models.ImpactHigh:
		statusStyle = impactHighStyle
	case models.ImpactModerate:
		statusStyle = impactModerateStyle
	}

	content.WriteString(labelStyle.Render("Current Level: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%.2f mg/m3", level)))
	content.WriteString("\n")
	content.WriteString(labelStyle.Render("Impact Status: "))
	content.WriteString(statusStyle.Render(string(assessment.Status)))
	content.WriteString("\n\n")
	content.WriteString(valueStyle.Render(assessment.Description))

	return paneStyle.Render(content.String())
}
