// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/curllabs/curllabs-client/internal/service"
	"github.com/curllabs/curllabs-client/models"
)

const (
	dashboardDays  = 30
	trendRows      = 7
	weatherDays    = 7
	maxTrendBarLen = 20
)

// DashboardModel shows outcome statistics, trends, insights and recent
// weather. The summary can be copied to the clipboard.
type DashboardModel struct {
	ctx       context.Context
	dashboard service.DashboardService
	weather   service.WeatherService

	overview  models.DashboardOverview
	readings  []models.WeatherData
	loaded    bool
	loading   bool
	capturing bool
	errMsg    string
	status    string
}

func NewDashboardModel(ctx context.Context, dashboard service.DashboardService, weather service.WeatherService) *DashboardModel {
	return &DashboardModel{ctx: ctx, dashboard: dashboard, weather: weather}
}

func (m *DashboardModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.cmdLoad(), m.cmdLoadWeather())
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.overview = msg.overview
		m.loaded = true
		return m, nil
	case weatherLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.readings = msg.readings
		return m, nil
	case weatherCapturedMsg:
		m.capturing = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("Weather captured for %s", msg.weather.Location)
		return m, m.cmdLoadWeather()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageHome} }
		case key.Matches(msg, keys.reload):
			m.status = ""
			return m, m.Init()
		case key.Matches(msg, keys.weather):
			if m.capturing {
				return m, nil
			}
			m.capturing = true
			m.status = "Capturing weather..."
			return m, m.cmdCapture()
		case key.Matches(msg, keys.copy):
			if !m.loaded {
				m.errMsg = errNothingToCopy.Error()
				return m, nil
			}
			if err := clipboard.WriteAll(dashboardSummary(m.overview)); err != nil {
				m.errMsg = fmt.Sprintf("copy failed: %v", err)
				return m, nil
			}
			m.errMsg = ""
			m.status = "Summary copied"
		}
	}
	return m, nil
}

func (m *DashboardModel) cmdLoad() tea.Cmd {
	ctx, dashboard := m.ctx, m.dashboard
	return func() tea.Msg {
		overview, err := dashboard.Overview(ctx, dashboardDays)
		return dashboardLoadedMsg{overview: overview, err: err}
	}
}

func (m *DashboardModel) cmdLoadWeather() tea.Cmd {
	ctx, weather := m.ctx, m.weather
	return func() tea.Msg {
		today := models.NewDate(time.Now())
		readings, err := weather.List(ctx, models.WeatherRange{
			StartDate: models.NewDate(today.AddDate(0, 0, -weatherDays)),
			EndDate:   today,
		})
		return weatherLoadedMsg{readings: readings, err: err}
	}
}

func (m *DashboardModel) cmdCapture() tea.Cmd {
	ctx, weather := m.ctx, m.weather
	return func() tea.Msg {
		reading, err := weather.Capture(ctx)
		return weatherCapturedMsg{weather: reading, err: err}
	}
}

func (m *DashboardModel) View() string {
	const hotKeys = "esc: back │ ctrl+r: reload │ w: capture weather │ c: copy summary"

	var b strings.Builder
	b.WriteString(statusLines(m.errMsg, m.status))

	if m.loading && !m.loaded {
		b.WriteString("Loading dashboard...")
		return renderPage("DASHBOARD", b.String(), hotKeys)
	}

	b.WriteString(dashboardSummary(m.overview))
	b.WriteString("\n")
	b.WriteString(renderTrend(m.overview.Trends))
	b.WriteString("\n")
	b.WriteString(renderWeather(m.readings))

	return renderPage("DASHBOARD", strings.TrimRight(b.String(), "\n"), hotKeys)
}

// dashboardSummary renders stats and insights as plain text.
func dashboardSummary(o models.DashboardOverview) string {
	var b strings.Builder
	s := o.Stats

	fmt.Fprintf(&b, "Logs: %d │ Rated: %d\n", s.TotalLogs, s.TotalOutcomes)
	fmt.Fprintf(&b, "Average: overall %s │ frizz %s │ definition %s │ softness %s │ hold %sh\n",
		score(s.AverageScores.Overall), score(s.AverageScores.Frizz), score(s.AverageScores.Definition),
		score(s.AverageScores.Softness), score(s.AverageScores.HoldHours))

	if s.BestRoutine != nil {
		fmt.Fprintf(&b, "Best routine: %s (%.1f over %d logs)\n", s.BestRoutine.Name, s.BestRoutine.AverageScore, s.BestRoutine.LogCount)
	} else {
		b.WriteString("Best routine: -\n")
	}

	if len(s.BestProducts) > 0 {
		b.WriteString("Top products:\n")
		for i, p := range s.BestProducts {
			fmt.Fprintf(&b, "  %d. %s %s (%s) %.0f%% success, %d uses\n", i+1, p.Brand, p.Name, p.Type, p.SuccessRate, p.UsageCount)
		}
	}

	if len(o.Insights) > 0 {
		b.WriteString("Insights:\n")
		for _, in := range o.Insights {
			fmt.Fprintf(&b, "  * %s (%s confidence)\n", in.Message, in.Confidence)
		}
	}
	return b.String()
}

func renderTrend(points []models.TrendPoint) string {
	if len(points) == 0 {
		return "Trend: no rated logs yet\n"
	}
	if len(points) > trendRows {
		points = points[len(points)-trendRows:]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Trend (last %d days):\n", dashboardDays)
	for _, p := range points {
		bar := int(p.Overall / models.MaxRating * maxTrendBarLen)
		fmt.Fprintf(&b, "  %s %.1f %s\n", p.Date, p.Overall, strings.Repeat("█", max(bar, 0)))
	}
	return b.String()
}

func renderWeather(readings []models.WeatherData) string {
	if len(readings) == 0 {
		return "Weather: no readings this week\n"
	}

	var b strings.Builder
	b.WriteString("Weather:\n")
	for _, w := range readings {
		fmt.Fprintf(&b, "  %s %s humidity %.0f%% │ dew point %.1f°C │ %.1f°C\n",
			w.Date, fitText(w.Location, 20), w.Humidity, w.DewPoint, w.Temperature)
	}
	return b.String()
}

func score(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}
