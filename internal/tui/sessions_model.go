package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/parvenuprompting/shiftshift/internal/db"
	"github.com/parvenuprompting/shiftshift/internal/models"
	"github.com/parvenuprompting/shiftshift/internal/report"
)

// Scope selects which slice of history the browser shows
type Scope int

const (
	ScopeWeek Scope = iota
	ScopeMonth
	ScopeAll
)

// SessionsModel represents the TUI model for browsing recorded shifts
type SessionsModel struct {
	width  int
	height int

	sessions []models.Session
	selected int // index in sessions slice
	scope    Scope

	// Earnings context
	hourlyWage    float64
	netWageFactor float64
	showEarnings  bool

	// UI state
	confirmDelete bool
	err           error

	// Pagination
	currentPage     int
	sessionsPerPage int
}

// NewSessionsModel creates a new sessions browser TUI model
func NewSessionsModel() (SessionsModel, error) {
	m := SessionsModel{
		scope:           ScopeWeek,
		sessionsPerPage: 12,
	}

	settings, err := db.GetSettings()
	if err != nil {
		return m, err
	}
	m.hourlyWage = settings.HourlyWage
	m.netWageFactor = settings.NetWageFactor
	m.showEarnings = settings.ShowEarnings && settings.HourlyWage > 0

	if err := m.reload(); err != nil {
		return m, err
	}
	return m, nil
}

// reload fetches the session list for the current scope
func (m *SessionsModel) reload() error {
	var sessions []models.Session
	var err error

	now := time.Now()
	switch m.scope {
	case ScopeWeek:
		from, to := report.WeekRange(now)
		sessions, err = db.GetSessionsInRange(from, to)
	case ScopeMonth:
		from, to := report.MonthRange(now)
		sessions, err = db.GetSessionsInRange(from, to)
	default:
		sessions, err = db.GetAllSessions()
	}
	if err != nil {
		return err
	}

	m.sessions = sessions
	if m.selected >= len(sessions) {
		m.selected = len(sessions) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	m.currentPage = m.selected / m.sessionsPerPage
	return nil
}

// Init initializes the model
func (m SessionsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m SessionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Delete confirmation modal swallows everything except y/n
		if m.confirmDelete {
			switch msg.String() {
			case "y", "Y", "enter":
				m.confirmDelete = false
				if len(m.sessions) > 0 {
					if err := db.DeleteSession(m.sessions[m.selected].ID); err != nil {
						m.err = err
					} else {
						m.err = m.reload()
					}
				}
			case "n", "N", "esc", "q":
				m.confirmDelete = false
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.currentPage = m.selected / m.sessionsPerPage
			}
		case "down", "j":
			if m.selected < len(m.sessions)-1 {
				m.selected++
				m.currentPage = m.selected / m.sessionsPerPage
			}
		case "w":
			m.scope = ScopeWeek
			m.selected = 0
			m.err = m.reload()
		case "m":
			m.scope = ScopeMonth
			m.selected = 0
			m.err = m.reload()
		case "a":
			m.scope = ScopeAll
			m.selected = 0
			m.err = m.reload()
		case "d":
			if len(m.sessions) > 0 && m.sessions[m.selected].FinishedAt != nil {
				m.confirmDelete = true
			}
		}
	}

	return m, nil
}

// View renders the sessions browser
func (m SessionsModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder

	// Header with scope and totals
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if len(m.sessions) == 0 {
		emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
		b.WriteString(emptyStyle.Render("No shifts in this range."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderTable())
	}

	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		b.WriteString("\n" + errStyle.Render(m.err.Error()))
	}

	if m.confirmDelete {
		b.WriteString("\n\n")
		modalStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorError)).
			Padding(0, 2).
			Bold(true)
		b.WriteString(modalStyle.Render(fmt.Sprintf(
			"Delete shift #%d? This cannot be undone. y/n", m.sessions[m.selected].ID)))
	}

	b.WriteString("\n\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	b.WriteString(helpStyle.Render("↑/↓ navigate · w week · m month · a all · d delete · esc/q quit"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// renderHeader renders the scope line with aggregate totals
func (m SessionsModel) renderHeader() string {
	scopeNames := map[Scope]string{
		ScopeWeek:  "This week",
		ScopeMonth: "This month",
		ScopeAll:   "All shifts",
	}

	totals := report.ComputeTotals(m.sessions, m.hourlyWage, m.netWageFactor)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	header := fmt.Sprintf("%s — %s worked", scopeNames[m.scope], report.FormatMinutes(totals.TotalMinutes))
	if m.showEarnings {
		header += fmt.Sprintf(" — € %.2f net", totals.NetEarnings)
	}

	return headerStyle.Render(header)
}

// renderTable renders the visible page of the session list
func (m SessionsModel) renderTable() string {
	var b strings.Builder

	start := m.currentPage * m.sessionsPerPage
	end := start + m.sessionsPerPage
	if end > len(m.sessions) {
		end = len(m.sessions)
	}

	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorAccentMain)).
		Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	for i := start; i < end; i++ {
		s := &m.sessions[i]

		endStr := "Active"
		durStr := "-"
		if s.FinishedAt != nil {
			endStr = s.FinishedAt.Format("15:04")
			durStr = report.FormatMinutes(report.SessionMinutes(s))
		}

		row := fmt.Sprintf("#%-4d %-13s %s - %-7s %-9s",
			s.ID,
			s.StartedAt.Format("Mon 02-01-06"),
			s.StartedAt.Format("15:04"),
			endStr,
			durStr)
		if s.BreakSeconds > 0 {
			row += fmt.Sprintf(" ☕ %dm", s.BreakSeconds/60)
		}

		if i == m.selected {
			b.WriteString(selectedStyle.Render("▶ " + row))
		} else {
			b.WriteString(rowStyle.Render("  " + row))
		}
		b.WriteString("\n")
	}

	if len(m.sessions) > m.sessionsPerPage {
		pageStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
		totalPages := (len(m.sessions) + m.sessionsPerPage - 1) / m.sessionsPerPage
		b.WriteString(pageStyle.Render(fmt.Sprintf("page %d/%d", m.currentPage+1, totalPages)))
		b.WriteString("\n")
	}

	return b.String()
}

// RunSessionsTUI starts the interactive sessions browser
func RunSessionsTUI() error {
	model, err := NewSessionsModel()
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
