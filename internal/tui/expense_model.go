package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/parvenuprompting/shiftshift/internal/db"
	"github.com/parvenuprompting/shiftshift/internal/parser"
)

// ExpenseStep represents the current step in the expense wizard
type ExpenseStep int

const (
	StepType ExpenseStep = iota
	StepAmount
	StepDescription
	StepDate
	StepComplete
)

var expenseTypes = []string{"toll", "meal", "fuel", "other"}

// ExpenseModel represents the TUI model for recording an expense
type ExpenseModel struct {
	currentStep ExpenseStep
	inputs      []textinput.Model
	width       int
	height      int

	// Expense data
	typeIndex   int
	amount      float64
	description string
	spentAt     *time.Time

	// State
	err              error
	completed        bool
	cancelled        bool
	validationErr    string
	createdExpenseID uint
}

// NewExpenseModel creates a new expense wizard TUI model
func NewExpenseModel() ExpenseModel {
	inputs := make([]textinput.Model, 3)

	// Apply color theme to all inputs
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40

		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	// Amount input
	inputs[0].Placeholder = "0.00 (required)"
	inputs[0].CharLimit = 12

	// Description input
	inputs[1].Placeholder = "What was it for? (Enter to skip)"
	inputs[1].CharLimit = 200

	// Date input
	inputs[2].Placeholder = "dd/mm/yyyy hh:mm or hh:mm (Enter for now)"
	inputs[2].CharLimit = 20

	return ExpenseModel{
		currentStep: StepType,
		inputs:      inputs,
	}
}

// Init initializes the expense model
func (m ExpenseModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m ExpenseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		}

		switch m.currentStep {
		case StepType:
			return m.updateTypeStep(msg)
		case StepAmount, StepDescription, StepDate:
			return m.updateInputStep(msg)
		}
	}

	return m, nil
}

// updateTypeStep handles the type selector
func (m ExpenseModel) updateTypeStep(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.typeIndex = (m.typeIndex + len(expenseTypes) - 1) % len(expenseTypes)
	case "right", "l", "tab":
		m.typeIndex = (m.typeIndex + 1) % len(expenseTypes)
	case "enter":
		m.currentStep = StepAmount
		m.inputs[0].Focus()
		return m, textinput.Blink
	}
	return m, nil
}

// updateInputStep handles the textinput steps
func (m ExpenseModel) updateInputStep(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	idx := int(m.currentStep) - 1 // StepAmount is inputs[0]

	if msg.String() == "enter" {
		if err := m.validateStep(); err != "" {
			m.validationErr = err
			return m, nil
		}
		m.validationErr = ""

		m.inputs[idx].Blur()
		if m.currentStep == StepDate {
			return m.save()
		}
		m.currentStep++
		m.inputs[idx+1].Focus()
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	return m, cmd
}

// validateStep validates the current input, returning a message or ""
func (m *ExpenseModel) validateStep() string {
	switch m.currentStep {
	case StepAmount:
		parsed := parser.ParseExpense(expenseTypes[m.typeIndex] + " " + strings.TrimSpace(m.inputs[0].Value()))
		if len(parsed.Errors) > 0 {
			return parsed.Errors[0]
		}
		m.amount = parsed.Amount
	case StepDescription:
		m.description = strings.TrimSpace(m.inputs[1].Value())
	case StepDate:
		value := strings.TrimSpace(m.inputs[2].Value())
		if value == "" {
			m.spentAt = nil
			return ""
		}
		ts, err := parser.ParseTimestamp(value, time.Now())
		if err != nil {
			return err.Error()
		}
		m.spentAt = ts
	}
	return ""
}

// save records the expense and quits
func (m ExpenseModel) save() (tea.Model, tea.Cmd) {
	settings, err := db.GetSettings()
	if err != nil {
		m.err = err
		return m, tea.Quit
	}

	req := db.CreateExpenseRequest{
		UserID:      settings.Username,
		Type:        expenseTypes[m.typeIndex],
		Amount:      m.amount,
		Description: m.description,
		SpentAt:     m.spentAt,
	}

	// Link to the running shift when there is one
	if session, err := db.GetActiveSession(); err == nil && session != nil {
		req.SessionID = &session.ID
	}

	expense, err := db.CreateExpense(req)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}

	m.completed = true
	m.createdExpenseID = expense.ID
	m.currentStep = StepComplete
	return m, tea.Quit
}

// View renders the expense wizard
func (m ExpenseModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var b strings.Builder

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	b.WriteString(headerStyle.Render("💶 New Expense"))
	b.WriteString("\n\n")

	b.WriteString(m.renderTypeRow())
	b.WriteString("\n\n")

	labels := []string{"Amount (€)", "Description", "Date"}
	for i, label := range labels {
		step := ExpenseStep(i + 1)

		labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
		if m.currentStep == step {
			labelStyle = labelStyle.Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
		}
		b.WriteString(labelStyle.Render(label))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	if m.validationErr != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		b.WriteString(errStyle.Render("✗ " + m.validationErr))
		b.WriteString("\n\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	b.WriteString(helpStyle.Render("←/→ pick type · enter next · esc cancel"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(1, 2)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		boxStyle.Render(b.String()))
}

// renderTypeRow renders the expense type selector
func (m ExpenseModel) renderTypeRow() string {
	var parts []string
	for i, t := range expenseTypes {
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Padding(0, 1)
		if i == m.typeIndex {
			style = style.
				Foreground(lipgloss.Color(ColorPrimaryText)).
				Background(lipgloss.Color(ColorAccentMain)).
				Bold(true)
		}
		parts = append(parts, style.Render(t))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// RunExpenseTUI starts the interactive expense wizard
func RunExpenseTUI() error {
	model := NewExpenseModel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// Handle exit messages after TUI closes
	if m, ok := finalModel.(ExpenseModel); ok {
		if m.cancelled {
			fmt.Println("❌ Expense cancelled.")
		} else if m.completed {
			fmt.Printf("✅ Expense #%d recorded: %s € %.2f\n",
				m.createdExpenseID, expenseTypes[m.typeIndex], m.amount)
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}

	return nil
}
