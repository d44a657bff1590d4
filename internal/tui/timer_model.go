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

// ShiftTimerModel represents the TUI model for a running shift
type ShiftTimerModel struct {
	width   int
	height  int
	session *models.Session

	// Timer state
	workedTime time.Duration
	onBreak    bool
	breakStart time.Time
	lastUpdate time.Time

	// UI state
	stopping bool   // True when user pressed S and we're ending the shift
	exiting  bool   // True when user pressed ESC/Q and we're detaching
	notice   string // transient message after a break toggle
	err      error
}

// shiftTickMsg is sent every second to update the timers
type shiftTickMsg struct{}

// NewShiftTimerModel creates a new shift timer TUI model
func NewShiftTimerModel(session *models.Session) ShiftTimerModel {
	m := ShiftTimerModel{
		session:    session,
		workedTime: report.LiveElapsed(session, time.Now()),
		lastUpdate: time.Now(),
	}
	for i := range session.Breaks {
		if session.Breaks[i].Open() {
			m.onBreak = true
			m.breakStart = session.Breaks[i].StartedAt
		}
	}
	return m
}

// Init initializes the shift timer model
func (m ShiftTimerModel) Init() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return shiftTickMsg{}
	})
}

// Update handles messages
func (m ShiftTimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shiftTickMsg:
		now := time.Now()
		m.workedTime = report.LiveElapsed(m.session, now)
		m.lastUpdate = now

		// Continue ticking if not stopping or exiting
		if !m.stopping && !m.exiting {
			return m, tea.Tick(time.Second, func(t time.Time) tea.Msg {
				return shiftTickMsg{}
			})
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "b", "B":
			return m.toggleBreak(), nil
		case "s", "S":
			// End the shift and save
			m.stopping = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			// Detach without ending the shift
			m.exiting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// toggleBreak starts or ends a break and refreshes the session snapshot
func (m ShiftTimerModel) toggleBreak() ShiftTimerModel {
	if m.onBreak {
		session, err := db.EndBreak()
		if err != nil {
			m.err = err
			return m
		}
		m.session = session
		m.onBreak = false
		m.notice = fmt.Sprintf("Break ended, %dm total break time", session.BreakSeconds/60)
	} else {
		brk, err := db.StartBreak()
		if err != nil {
			m.err = err
			return m
		}
		session, err := db.GetActiveSession()
		if err == nil && session != nil {
			m.session = session
		}
		m.onBreak = true
		m.breakStart = brk.StartedAt
		m.notice = "On break"
	}
	m.err = nil
	m.workedTime = report.LiveElapsed(m.session, time.Now())
	return m
}

// View renders the shift timer TUI
func (m ShiftTimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Help bar at bottom
	helpBar := m.renderHelpBar()
	helpBarHeight := 1

	// Available height for content (total minus help bar and gap)
	contentHeight := m.height - helpBarHeight - 1

	// Check if screen is too narrow for split view
	if m.width < 90 {
		// Narrow view: just timer panel, full width
		timerPanel := m.renderTimerPanel(m.width, contentHeight)

		return lipgloss.JoinVertical(
			lipgloss.Left,
			timerPanel,
			helpBar,
		)
	}

	// Wide view: split screen
	leftWidth := m.width / 2
	rightWidth := m.width - leftWidth - 2 // -2 for gap

	// Left side: timer (full height)
	leftPanel := m.renderTimerPanel(leftWidth, contentHeight)

	// Right side: shift details (full height)
	rightPanel := m.renderShiftDetailsPanel(rightWidth, contentHeight)

	// Main content
	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanel,
		"  ", // Gap
		rightPanel,
	)

	// Final layout
	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		helpBar,
	)
}

// renderTimerPanel renders the left timer panel
func (m ShiftTimerModel) renderTimerPanel(width, height int) string {
	var components []string

	headerText := "⏱  ON SHIFT  ⏱"
	headerColor := ColorAccentBright
	if m.onBreak {
		headerText = "☕  ON BREAK  ☕"
		headerColor = ColorBreak
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(headerColor)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)

	components = append(components, headerStyle.Render(headerText))

	// Big clock: worked time, or current break time while paused
	clockDuration := m.workedTime
	clockColor := ColorAccentBright
	if m.onBreak {
		clockDuration = m.lastUpdate.Sub(m.breakStart)
		clockColor = ColorBreak
	}
	clockDisplay := renderBigClock(clockDuration, clockColor)
	clockLines := strings.Split(clockDisplay, "\n")
	clockContent := ""
	for _, line := range clockLines {
		centeredLine := lipgloss.NewStyle().
			Align(lipgloss.Center).
			Width(width).
			Render(line)
		clockContent += centeredLine + "\n"
	}
	components = append(components, strings.TrimRight(clockContent, "\n"))

	// While on break, keep the worked total visible below the break clock
	if m.onBreak {
		workedInfo := fmt.Sprintf("Worked so far: %s", formatClock(m.workedTime))
		workedStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Align(lipgloss.Center).
			Width(width)
		components = append(components, workedStyle.Render(workedInfo))
	}

	// Shift start time
	sessionInfo := fmt.Sprintf("Shift started at %s", m.session.StartedAt.Format("15:04:05"))
	sessionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, sessionStyle.Render(sessionInfo))

	if m.notice != "" {
		noticeStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess)).
			Align(lipgloss.Center).
			Width(width)
		components = append(components, noticeStyle.Render(m.notice))
	}
	if m.err != nil {
		errStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Align(lipgloss.Center).
			Width(width)
		components = append(components, errStyle.Render(m.err.Error()))
	}

	// Join all components with spacing and center vertically
	content := strings.Join(components, "\n\n")

	panelStyle := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	return panelStyle.Render(content)
}

// renderBigClock renders an ASCII art clock for a duration
func renderBigClock(duration time.Duration, color string) string {
	hours := int(duration.Hours())
	minutes := int(duration.Minutes()) % 60
	seconds := int(duration.Seconds()) % 60

	// ASCII art for digits (5x5 characters each)
	digits := map[rune][][]string{
		'0': {
			{" ███ "},
			{"█   █"},
			{"█   █"},
			{"█   █"},
			{" ███ "},
		},
		'1': {
			{"  █  "},
			{" ██  "},
			{"  █  "},
			{"  █  "},
			{"█████"},
		},
		'2': {
			{" ███ "},
			{"█   █"},
			{"   █ "},
			{"  █  "},
			{"█████"},
		},
		'3': {
			{" ███ "},
			{"█   █"},
			{"  ██ "},
			{"█   █"},
			{" ███ "},
		},
		'4': {
			{"█   █"},
			{"█   █"},
			{"█████"},
			{"    █"},
			{"    █"},
		},
		'5': {
			{"█████"},
			{"█    "},
			{"████ "},
			{"    █"},
			{"████ "},
		},
		'6': {
			{" ███ "},
			{"█    "},
			{"████ "},
			{"█   █"},
			{" ███ "},
		},
		'7': {
			{"█████"},
			{"    █"},
			{"   █ "},
			{"  █  "},
			{" █   "},
		},
		'8': {
			{" ███ "},
			{"█   █"},
			{" ███ "},
			{"█   █"},
			{" ███ "},
		},
		'9': {
			{" ███ "},
			{"█   █"},
			{" ████"},
			{"    █"},
			{" ███ "},
		},
		':': {
			{"     "},
			{"  █  "},
			{"     "},
			{"  █  "},
			{"     "},
		},
	}

	// Format time string
	timeStr := ""
	if hours > 0 {
		timeStr = fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	} else {
		timeStr = fmt.Sprintf("%02d:%02d", minutes, seconds)
	}

	// Build the big clock display
	var lines [5]strings.Builder

	for _, char := range timeStr {
		if digitArt, ok := digits[char]; ok {
			for i := 0; i < 5; i++ {
				lines[i].WriteString(digitArt[i][0])
				lines[i].WriteString(" ") // Space between digits
			}
		}
	}

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true)

	var result strings.Builder
	for i := 0; i < 5; i++ {
		result.WriteString(clockStyle.Render(lines[i].String()))
		if i < 4 {
			result.WriteString("\n")
		}
	}

	return result.String()
}

// renderShiftDetailsPanel renders the right panel with session details
func (m ShiftTimerModel) renderShiftDetailsPanel(width, height int) string {
	session := m.session
	var b strings.Builder

	b.WriteString("\n")

	// ASCII logo at top
	logoLines := []string{
		"███████╗██╗  ██╗██╗███████╗████████╗",
		"██╔════╝██║  ██║██║██╔════╝╚══██╔══╝",
		"███████╗███████║██║█████╗     ██║   ",
		"╚════██║██╔══██║██║██╔══╝     ██║   ",
		"███████║██║  ██║██║██║        ██║   ",
		"╚══════╝╚═╝  ╚═╝╚═╝╚═╝        ╚═╝   ",
	}

	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width - 8)

	b.WriteString(logoStyle.Render(strings.Join(logoLines, "\n")))
	b.WriteString("\n\n")

	// Separator line
	separatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBorder)).
		Align(lipgloss.Center).
		Width(width - 8)
	separatorLine := strings.Repeat("─", min(width-12, 40))
	b.WriteString(separatorStyle.Render(separatorLine))
	b.WriteString("\n\n")

	// Date in bordered box
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Width(width - 12).
		Padding(0, 1)
	b.WriteString(titleStyle.Render(session.StartedAt.Format("Monday 02 January")))
	b.WriteString("\n\n")

	detailStyle := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(width - 8)

	// Break total
	breakValue := "none yet"
	breakColor := ColorDisabledText
	if session.BreakSeconds > 0 || m.onBreak {
		breakValue = fmt.Sprintf("%dm over %d break(s)", session.BreakSeconds/60, len(session.Breaks))
		breakColor = ColorBreak
	}
	breakLine := fmt.Sprintf("☕ Breaks: %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color(breakColor)).Render(breakValue))
	b.WriteString(detailStyle.Render(breakLine))
	b.WriteString("\n")

	// Checklist progress
	taskValue := "none"
	taskColor := ColorDisabledText
	if len(session.Tasks) > 0 {
		done := 0
		for _, t := range session.Tasks {
			if t.Completed {
				done++
			}
		}
		taskValue = fmt.Sprintf("%d/%d done", done, len(session.Tasks))
		taskColor = ColorAccentBright
	}
	taskLine := fmt.Sprintf("📋 Tasks: %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color(taskColor)).Render(taskValue))
	b.WriteString(detailStyle.Render(taskLine))
	b.WriteString("\n")

	// Notes
	notesValue := "none"
	notesColor := ColorDisabledText
	if session.Notes != "" {
		notesValue = session.Notes
		if width > 27 {
			notesValue = truncateRunes(notesValue, width-24)
		}
		notesColor = ColorPrimaryText
	}
	notesLine := fmt.Sprintf("📝 Notes: %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color(notesColor)).Render(notesValue))
	b.WriteString(detailStyle.Render(notesLine))
	b.WriteString("\n")

	// Started date
	startedLine := fmt.Sprintf("🕗 Started: %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Render(session.StartedAt.Format("15:04:05")))
	b.WriteString(detailStyle.Render(startedLine))

	return b.String()
}

// renderHelpBar renders the help bar at the bottom
func (m ShiftTimerModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	helpText := "b break · s end shift & save · esc/q detach (keep running) · ctrl+c force quit"

	return helpStyle.Render(helpText)
}

// truncateRunes shortens s to at most max runes, ellipsis included.
// Cuts on rune boundaries so multi-byte characters stay intact.
func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// formatClock formats a duration as hh:mm:ss
func formatClock(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// RunShiftTimerTUI runs the interactive shift timer
func RunShiftTimerTUI(session *models.Session) error {
	model := NewShiftTimerModel(session)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// Check if we need to end the shift
	timerModel := finalModel.(ShiftTimerModel)
	if timerModel.stopping {
		ended, err := db.EndSession()
		if err != nil {
			return fmt.Errorf("failed to end shift: %w", err)
		}

		minutes := report.SessionMinutes(ended)
		fmt.Printf("⏹️  Shift ended\n")
		fmt.Printf("📊 Worked %s", report.FormatMinutes(minutes))
		if ended.BreakSeconds > 0 {
			fmt.Printf(" (plus %dm break)", ended.BreakSeconds/60)
		}
		fmt.Println()
	} else if timerModel.exiting {
		fmt.Printf("\n💡 Shift is still running in the background.\n")
		fmt.Printf("   Use 'shiftshift status' to check it or 'shiftshift stop' to end it.\n")
	}

	return nil
}
