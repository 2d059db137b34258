package ui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/lipgloss"

	"github.com/shreymonka/marine-migration/internal/models"
)

// renderOceanTab renders the sensor charts and summary metrics.
func (m Model) renderOceanTab() string {
	if m.table.IsEmpty() {
		return mutedStyle.Render("No data available. Press Enter to fetch real-time data.")
	}

	chartWidth := (m.width - 10) / 2
	if chartWidth < 30 {
		chartWidth = 30
	}
	chartHeight := 10

	phChart := m.renderChannelChart("Ocean Acidification (pH)", models.ChannelPH, colorPH, chartWidth, chartHeight)
	oxygenChart := m.renderChannelChart("Oxygen Concentration (ml/l)", models.ChannelOxygen, colorOxygen, chartWidth, chartHeight)

	charts := lipgloss.JoinHorizontal(lipgloss.Top, phChart, oxygenChart)

	var sections []string
	sections = append(sections, charts)
	sections = append(sections, m.renderHealthPane(chartWidth*2+3))
	sections = append(sections, m.renderMetricsPane())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderChannelChart draws one channel as a braille time-series line chart.
func (m Model) renderChannelChart(title, channel string, color lipgloss.Color, width, height int) string {
	var content strings.Builder
	content.WriteString(titleStyle.Render(title))
	content.WriteString("\n\n")

	values, ok := m.table.Column(channel)
	if !ok {
		content.WriteString(mutedStyle.Render("Channel not available"))
		return paneStyle.Width(width).Render(content.String())
	}

	chart := timeserieslinechart.New(width-6, height)
	chart.SetStyle(lipgloss.NewStyle().Foreground(color))

	plotted := 0
	for i, v := range values {
		if models.IsNull(v) {
			continue
		}
		chart.Push(timeserieslinechart.TimePoint{Time: m.table.Times[i], Value: v})
		plotted++
	}

	if plotted == 0 {
		content.WriteString(mutedStyle.Render("No readings in this window"))
		return paneStyle.Width(width).Render(content.String())
	}

	chart.DrawBraille()
	content.WriteString(chart.View())

	return paneStyle.Width(width).Render(content.String())
}

// renderHealthPane draws the ecosystem health score trend.
func (m Model) renderHealthPane(width int) string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("Ecosystem Health Score"))
	content.WriteString("\n\n")

	scores := models.HealthScores(m.table)

	sl := sparkline.New(width-6, 5)
	plotted := 0
	var latest float64
	for _, score := range scores {
		if models.IsNull(score) {
			continue
		}
		sl.Push(score)
		latest = score
		plotted++
	}

	if plotted == 0 {
		content.WriteString(mutedStyle.Render("Requires oxygen, pH and temperature readings"))
		return paneStyle.Width(width).Render(content.String())
	}

	sl.Draw()
	content.WriteString(sl.View())
	content.WriteString("\n")
	content.WriteString(labelStyle.Render("Latest: "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%.1f", latest)))

	return paneStyle.Width(width).Render(content.String())
}

// metricChannels drives the summary tiles, in display order.
var metricChannels = []struct {
	label   string
	channel string
}{
	{"pH", models.ChannelPH},
	{"Temperature (C)", models.ChannelTemperature},
	{"Oxygen (ml/l)", models.ChannelOxygen},
	{"Salinity (psu)", models.ChannelSalinity},
	{"Chlorophyll (mg/m3)", models.ChannelChlorophyll},
}

// renderMetricsPane shows mean and range per channel.
func (m Model) renderMetricsPane() string {
	var tiles []string

	for _, mc := range metricChannels {
		values, ok := m.table.Column(mc.channel)
		if !ok {
			continue
		}
		stats, ok := models.ColumnStats(values)
		if !ok {
			continue
		}

		var tile strings.Builder
		tile.WriteString(labelStyle.Render(mc.label))
		tile.WriteString("\n")
		tile.WriteString(valueStyle.Render(fmt.Sprintf("%.2f", stats.Mean)))
		tile.WriteString("\n")
		tile.WriteString(mutedStyle.Render(fmt.Sprintf("Range: %.2f - %.2f", stats.Min, stats.Max)))

		tiles = append(tiles, paneStyle.Render(tile.String()))
	}

	if len(tiles) == 0 {
		return mutedStyle.Render("No channel statistics available")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}
