package ui

import (
	"context"
	"fmt"

	"mwadmin/internal/api"
	"mwadmin/internal/dashboard"
	"mwadmin/internal/models"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model represents the dashboard UI model
type Model struct {
	Viewport      viewport.Model
	Spinner       spinner.Model
	IsLoading     bool
	StatusMessage string
	ErrorMessage  string
	Client        *api.Client
	Admin         *models.User
	Stats         *dashboard.Stats
	Width         int
	Height        int
	Ready         bool

	palette palette
}

// NewModel creates a new dashboard model
func NewModel(client *api.Client, admin *models.User, theme string) Model {
	p := paletteFor(theme)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(p.accent)

	return Model{
		Spinner:       s,
		IsLoading:     true,
		StatusMessage: "Loading dashboard...",
		Client:        client,
		Admin:         admin,
		palette:       p,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Spinner.Tick, loadStats(m.Client))
}

// Update handles UI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.IsLoading = true
			m.ErrorMessage = ""
			m.StatusMessage = "Refreshing..."
			return m, tea.Batch(m.Spinner.Tick, loadStats(m.Client))
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		if !m.Ready {
			// First time initializing
			m.Viewport = viewport.New(msg.Width, msg.Height-6)
			m.Viewport.YPosition = 3
			m.Ready = true
		} else {
			m.Viewport.Width = msg.Width
			m.Viewport.Height = msg.Height - 6
		}

		if m.Stats != nil {
			m.Viewport.SetContent(renderStats(m.Stats, m.Width, m.palette))
		}
		return m, nil

	case spinner.TickMsg:
		var spinnerCmd tea.Cmd
		m.Spinner, spinnerCmd = m.Spinner.Update(msg)
		cmds = append(cmds, spinnerCmd)

	case statsLoadedMsg:
		m.IsLoading = false
		m.Stats = msg
		m.StatusMessage = fmt.Sprintf("%d projects, %d gallery items", msg.TotalProjects, msg.TotalGallery)
		m.Viewport.SetContent(renderStats(msg, m.Width, m.palette))
		return m, nil

	case errorMsg:
		m.IsLoading = false
		m.ErrorMessage = string(msg)
		m.StatusMessage = "Error"
		return m, nil
	}

	if m.Ready {
		var viewportCmd tea.Cmd
		m.Viewport, viewportCmd = m.Viewport.Update(msg)
		cmds = append(cmds, viewportCmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI
func (m Model) View() string {
	if !m.Ready {
		return "Initializing..."
	}

	var status string
	if m.IsLoading {
		status = fmt.Sprintf("%s %s", m.Spinner.View(), m.StatusMessage)
	} else {
		status = m.StatusMessage
	}

	identity := ""
	if m.Admin != nil {
		identity = fmt.Sprintf(" — %s <%s>", m.Admin.FullName(), m.Admin.Email)
	}

	titleBar := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.palette.accent).
		Padding(0, 1).
		Render("MustardWorks Admin" + identity)

	statusBar := lipgloss.NewStyle().
		Foreground(m.palette.muted).
		Padding(0, 1).
		Render(status)

	help := lipgloss.NewStyle().
		Foreground(m.palette.muted).
		Padding(0, 1).
		Render("Press q to quit, r to refresh")

	errorView := ""
	if m.ErrorMessage != "" {
		errorView = lipgloss.NewStyle().
			Bold(true).
			Foreground(m.palette.danger).
			Padding(0, 1).
			Render(m.ErrorMessage)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		statusBar,
		m.Viewport.View(),
		errorView,
		help,
	)
}

// Messages
type statsLoadedMsg *dashboard.Stats
type errorMsg string

// Commands
func loadStats(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		stats, err := dashboard.Load(context.Background(), client)
		if err != nil {
			return errorMsg(fmt.Sprintf("Failed to load dashboard: %v", err))
		}
		return statsLoadedMsg(stats)
	}
}

// Helper functions
func renderStats(stats *dashboard.Stats, width int, p palette) string {
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.muted).
		Padding(0, 2).
		Width(22)

	card := func(label string, value int, c lipgloss.Color) string {
		return cardStyle.Render(fmt.Sprintf("%s\n%s",
			lipgloss.NewStyle().Foreground(p.muted).Render(label),
			lipgloss.NewStyle().Bold(true).Foreground(c).Render(fmt.Sprintf("%d", value)),
		))
	}

	row1 := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total Projects", stats.TotalProjects, p.accent),
		card("Pending Review", stats.PendingProjects, p.warning),
		card("Approved", stats.ApprovedProjects, p.success),
	)
	row2 := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Rejected", stats.RejectedProjects, p.danger),
		card("Gallery Items", stats.TotalGallery, p.accent),
		card("Active Gallery", stats.ActiveGallery, p.success),
	)
	row3 := card("Registered Users", stats.TotalUsers, p.accent)

	sections := []string{row1, row2, row3}

	if len(stats.RecentProjects) > 0 {
		header := lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent).
			Render("Recent Project Submissions:")

		content := header + "\n"
		for _, project := range stats.RecentProjects {
			content += fmt.Sprintf("  %s — %s (%s)\n",
				project.UserName,
				project.ProjectType,
				lipgloss.NewStyle().Foreground(statusColorFor(project.Status, p)).Render(string(project.Status)),
			)
		}
		sections = append(sections, content)
	} else {
		sections = append(sections, lipgloss.NewStyle().Foreground(p.muted).Render("No projects yet"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func statusColorFor(status models.ProjectStatus, p palette) lipgloss.Color {
	switch status {
	case models.StatusPending, models.StatusInReview:
		return p.warning
	case models.StatusApproved, models.StatusInProgress, models.StatusCompleted:
		return p.success
	case models.StatusRejected:
		return p.danger
	}
	return p.muted
}

// palette holds the theme colors; the theme preference persists in the
// config file.
type palette struct {
	accent  lipgloss.Color
	muted   lipgloss.Color
	success lipgloss.Color
	warning lipgloss.Color
	danger  lipgloss.Color
}

func paletteFor(theme string) palette {
	if theme == "light" {
		return palette{
			accent:  lipgloss.Color("26"),
			muted:   lipgloss.Color("245"),
			success: lipgloss.Color("28"),
			warning: lipgloss.Color("130"),
			danger:  lipgloss.Color("124"),
		}
	}
	return palette{
		accent:  lipgloss.Color("39"),
		muted:   lipgloss.Color("241"),
		success: lipgloss.Color("10"),
		warning: lipgloss.Color("11"),
		danger:  lipgloss.Color("196"),
	}
}
