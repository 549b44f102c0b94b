package main

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			PaddingLeft(2)

	normalStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepEnteringUsername step = iota
	stepEnteringPassword
	stepLoggingIn
	stepChoosingKind
	stepLoadingItems
	stepSelectingItem
)

var kinds = []kind{kindPlanets, kindPeople}

type model struct {
	client       *apiClient
	step         step
	cursor       int
	username     string
	password     string
	token        string
	kind         kind
	items        []item
	currentInput string
	message      string
	quitting     bool
}

func initialModel(client *apiClient) model {
	return model{
		client: client,
		step:   stepEnteringUsername,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) typing() bool {
	return m.step == stepEnteringUsername || m.step == stepEnteringPassword
}

func (m model) listLen() int {
	switch m.step {
	case stepChoosingKind:
		return len(kinds)
	case stepSelectingItem:
		return len(m.items)
	}
	return 0
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.typing() && (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) {
			m.currentInput += string(msg.Runes)
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.cursor < m.listLen()-1 {
				m.cursor++
			}

		case "esc":
			if m.step == stepSelectingItem {
				m.step = stepChoosingKind
				m.cursor = int(m.kind)
				m.message = ""
			}

		case "backspace":
			if runes := []rune(m.currentInput); len(runes) > 0 {
				m.currentInput = string(runes[:len(runes)-1])
			}

		case "enter":
			switch m.step {
			case stepEnteringUsername:
				if m.currentInput != "" {
					m.username = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPassword
				}

			case stepEnteringPassword:
				if m.currentInput != "" {
					m.password = m.currentInput
					m.currentInput = ""
					m.step = stepLoggingIn
					m.message = "Logging in..."
					return m, m.client.login(m.username, m.password)
				}

			case stepChoosingKind:
				m.kind = kinds[m.cursor]
				m.step = stepLoadingItems
				m.message = fmt.Sprintf("Loading %s...", m.kind)
				return m, m.client.listItems(m.kind)

			case stepSelectingItem:
				if len(m.items) > 0 {
					selected := m.items[m.cursor]
					m.message = fmt.Sprintf("Adding %s to favorites...", selected.Name)
					return m, m.client.addFavorite(m.token, m.kind, selected)
				}
			}
		}

	case loginSuccessMsg:
		m.token = msg.token
		m.password = ""
		m.step = stepChoosingKind
		m.cursor = 0
		m.message = successStyle.Render("✓ Logged in as " + m.username)

	case itemsLoadedMsg:
		m.kind = msg.kind
		m.items = msg.items
		m.cursor = 0
		m.step = stepSelectingItem
		m.message = ""

	case favoriteAddedMsg:
		m.message = successStyle.Render("✓ " + msg.name + " added to favorites")

	case errMsg:
		m.message = errorStyle.Render("✗ " + msg.err.Error())
		switch m.step {
		case stepLoggingIn:
			m.step = stepEnteringUsername
		case stepLoadingItems:
			m.step = stepChoosingKind
		}
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Star Wars Favorites\n\n"))

	switch m.step {
	case stepEnteringUsername:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("Enter your username:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Enter your password:\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("•", utf8.RuneCountInString(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepLoggingIn, stepLoadingItems:
		s.WriteString(m.message + "\n")

	case stepChoosingKind:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("Browse:\n\n"))
		for i, k := range kinds {
			s.WriteString(renderRow(m.cursor == i, k.String()))
		}
		s.WriteString("\nUse ↑/↓, Enter to open, q to quit\n")

	case stepSelectingItem:
		s.WriteString(promptStyle.Render(fmt.Sprintf("Select %s to favorite:\n\n", m.kind)))
		if len(m.items) == 0 {
			s.WriteString(normalStyle.Render("(nothing here yet)") + "\n")
		}
		for i, it := range m.items {
			s.WriteString(renderRow(m.cursor == i, fmt.Sprintf("%s (#%d)", it.Name, it.ID)))
		}
		if m.message != "" {
			s.WriteString("\n" + m.message + "\n")
		}
		s.WriteString("\nUse ↑/↓, Enter to favorite, Esc to go back, q to quit\n")
	}

	return s.String()
}

func renderRow(selected bool, label string) string {
	if selected {
		return fmt.Sprintf("> %s\n", selectedStyle.Render(label))
	}
	return fmt.Sprintf("  %s\n", normalStyle.Render(label))
}

func main() {
	defaultURL := os.Getenv("STARWARS_API_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:3000"
	}

	var baseURL string
	cmd := &cobra.Command{
		Use:   "starwars-browse",
		Short: "Log in and pick favorite planets and people from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := tea.NewProgram(initialModel(newAPIClient(baseURL))).Run()
			return err
		},
	}
	cmd.Flags().StringVar(&baseURL, "api", defaultURL, "Base URL of the starwars-api server")

	if err := cmd.Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
