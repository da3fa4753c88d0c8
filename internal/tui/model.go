// Package tui renders a read-only terminal dashboard over stored reports,
// goals, and missions. Editing stays in the CLI commands.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"daytrack/internal/insights"
	"daytrack/internal/models"
	"daytrack/internal/storage"
	"daytrack/internal/utils"
)

const (
	tabOverview = iota
	tabReports
	tabGoals
	tabMissions
	tabCount
)

var tabNames = [tabCount]string{"Overview", "Reports", "Goals", "Missions"}

type goalRow struct {
	goal     models.ProductivityGoal
	progress insights.GoalProgressResult
}

type Model struct {
	keys keyMap
	help help.Model

	activeTab int
	cursor    [tabCount]int
	width     int

	threshold     float64
	today         string
	currentStreak int
	longestStreak int
	trend         *insights.TrendResult
	consistency   int
	bestWeek      *insights.BestWeekResult
	dayOfWeek     [7]insights.DayBucket

	reports  []models.DailyReport
	goals    []goalRow
	missions []models.Mission
}

// NewModel loads everything the dashboard shows up front. The store is not
// touched again after construction.
func NewModel(store storage.Provider, threshold float64, today string) (Model, error) {
	m := Model{
		keys:      defaultKeyMap(),
		help:      help.New(),
		threshold: threshold,
		today:     today,
	}

	asc, err := store.GetAllReports()
	if err != nil {
		return Model{}, fmt.Errorf("failed to load reports: %w", err)
	}
	desc, err := store.GetRecentReports(0)
	if err != nil {
		return Model{}, fmt.Errorf("failed to load reports: %w", err)
	}
	m.reports = desc

	todayTime, err := utils.ParseDate(today)
	if err != nil {
		todayTime = time.Now()
	}

	m.currentStreak = insights.CurrentStreak(desc, todayTime, threshold)
	m.longestStreak = insights.LongestStreak(asc, threshold)
	m.trend = insights.Trend(desc)
	m.dayOfWeek = insights.DayOfWeekAverages(asc)
	if len(asc) > 0 {
		m.consistency = insights.ConsistencyScore(len(asc), asc[0].Date, todayTime)
	}
	if best, ok := insights.BestWeek(asc); ok {
		m.bestWeek = &best
	}

	goals, err := store.GetAllGoals(false)
	if err != nil {
		return Model{}, fmt.Errorf("failed to load goals: %w", err)
	}
	for _, g := range goals {
		m.goals = append(m.goals, goalRow{
			goal:     g,
			progress: insights.GoalProgress(g, asc, todayTime),
		})
	}

	m.missions, err = store.GetAllMissions(true)
	if err != nil {
		return Model{}, fmt.Errorf("failed to load missions: %w", err)
	}

	return m, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.activeTab = (m.activeTab + 1) % tabCount
		case key.Matches(msg, m.keys.PrevTab):
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case key.Matches(msg, m.keys.Up):
			if m.cursor[m.activeTab] > 0 {
				m.cursor[m.activeTab]--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor[m.activeTab] < m.rowCount()-1 {
				m.cursor[m.activeTab]++
			}
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m Model) rowCount() int {
	switch m.activeTab {
	case tabReports:
		return len(m.reports)
	case tabGoals:
		return len(m.goals)
	case tabMissions:
		return len(m.missions)
	default:
		return 0
	}
}

func (m Model) View() string {
	var b strings.Builder

	tabs := make([]string, tabCount)
	for i, name := range tabNames {
		if i == m.activeTab {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(name)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n")

	var content string
	switch m.activeTab {
	case tabOverview:
		content = m.viewOverview()
	case tabReports:
		content = m.viewReports()
	case tabGoals:
		content = m.viewGoals()
	case tabMissions:
		content = m.viewMissions()
	}
	b.WriteString(contentStyle.Render(content))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) viewOverview() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Productivity overview for " + m.today))
	b.WriteString("\n")

	fmt.Fprintf(&b, "Current streak: %d day(s)\n", m.currentStreak)
	fmt.Fprintf(&b, "Longest streak: %d day(s)\n", m.longestStreak)
	fmt.Fprintf(&b, "Consistency:    %d%%\n", m.consistency)

	if m.trend != nil {
		line := fmt.Sprintf("Trend:          %+.2f%% (%s)", m.trend.Change, insights.TrendLabel(m.trend.Change))
		if m.trend.Improving {
			line = goodStyle.Render(line)
		} else {
			line = badStyle.Render(line)
		}
		b.WriteString(line + "\n")
	} else {
		b.WriteString(dimStyle.Render("Trend:          not enough data") + "\n")
	}

	if m.bestWeek != nil {
		fmt.Fprintf(&b, "Best week:      %.2f%% ending %s\n", m.bestWeek.Average, m.bestWeek.EndDate)
	}

	b.WriteString("\nBy day of week:\n")
	names := [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	for i, bucket := range m.dayOfWeek {
		if bucket.Count == 0 {
			fmt.Fprintf(&b, "  %s  %s\n", names[i], dimStyle.Render("--"))
			continue
		}
		fmt.Fprintf(&b, "  %s  %6.2f%%\n", names[i], bucket.Average)
	}
	return b.String()
}

func (m Model) viewReports() string {
	if len(m.reports) == 0 {
		return dimStyle.Render("No reports logged yet.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Recent reports"))
	b.WriteString("\n")
	for i, r := range m.reports {
		line := fmt.Sprintf("%s  %6.2f%%  %d task(s)", r.Date, r.ProductivityPercent, len(r.Tasks))
		line = m.styleRow(line, i, r.ProductivityPercent >= m.threshold)
		b.WriteString(line + "\n")

		if i == m.cursor[tabReports] {
			for _, task := range r.Tasks {
				fmt.Fprintf(&b, "    %-30s %5.1f%% done\n", task.Title, task.CompletionPercent)
			}
			if r.Notes != "" {
				b.WriteString(dimStyle.Render("    "+r.Notes) + "\n")
			}
		}
	}
	return b.String()
}

func (m Model) viewGoals() string {
	if len(m.goals) == 0 {
		return dimStyle.Render("No active goals.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Goals"))
	b.WriteString("\n")
	for i, row := range m.goals {
		line := fmt.Sprintf("%-25s %6.2f%% / %.0f%%  ends %s",
			row.goal.Title, row.progress.AvgProgress, row.goal.TargetPercentage, row.goal.EndDate)
		line = m.styleRow(line, i, row.progress.Achieved)
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) viewMissions() string {
	if len(m.missions) == 0 {
		return dimStyle.Render("No missions.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Missions"))
	b.WriteString("\n")
	for i, mission := range m.missions {
		marker := " "
		if mission.Completed {
			marker = "x"
		}
		line := fmt.Sprintf("[%s] %-30s %5.1f%%", marker, mission.Title, mission.Progress)
		line = m.styleRow(line, i, mission.Completed)
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) styleRow(line string, index int, good bool) string {
	if index == m.cursor[m.activeTab] {
		return selectedRowStyle.Render(line)
	}
	if good {
		return goodStyle.Render(line)
	}
	return line
}
