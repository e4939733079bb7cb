package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultServerURL = "http://localhost:3536"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")).
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

	credentialStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("226")).
			Padding(0, 1)
)

type step int

const (
	stepEnteringEmail step = iota
	stepEnteringPassword
	stepLoggingIn
	stepLoadingFarms
	stepSelectingFarm
	stepEnteringStationName
	stepCreatingStation
	stepComplete
)

type farm struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
}

type model struct {
	serverURL    string
	step         step
	farms        []farm
	cursor       int
	email        string
	password     string
	token        string
	stationName  string
	credential   string
	currentInput string
	message      string
	quitting     bool
}

type loginSuccessMsg struct{ token string }
type farmsLoadedMsg []farm
type stationCreatedMsg struct{ credential string }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

func initialModel() model {
	serverURL := os.Getenv("AGROCLIMA_URL")
	if serverURL == "" {
		serverURL = defaultServerURL
	}
	return model{
		serverURL: serverURL,
		step:      stepEnteringEmail,
		farms:     []farm{},
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func login(serverURL, email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"email":    email,
			"password": password,
		}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest("POST", serverURL+"/v.0/auth/login", bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("server not reachable: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("invalid email or password")}
		}

		var result struct {
			AccessToken string `json:"access_token"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil || result.AccessToken == "" {
			return errMsg{fmt.Errorf("unexpected login response")}
		}

		return loginSuccessMsg{token: result.AccessToken}
	}
}

func loadFarms(serverURL, token string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		req, _ := http.NewRequest("GET", serverURL+"/v.0/fazendas", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("failed to list farms: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("failed to list farms (status %d)", resp.StatusCode)}
		}

		var result struct {
			Farms []farm `json:"fazendas"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("unexpected farms response")}
		}

		return farmsLoadedMsg(result.Farms)
	}
}

func createStation(serverURL, token, farmID, name string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 15 * time.Second}

		payload := map[string]string{"nome": name}
		jsonData, _ := json.Marshal(payload)

		url := fmt.Sprintf("%s/v.0/estacoes/fazenda/%s", serverURL, farmID)
		req, _ := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := client.Do(req)
		if err != nil {
			return errMsg{fmt.Errorf("failed to create station: %w", err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			body, _ := io.ReadAll(resp.Body)
			return errMsg{fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))}
		}

		var result struct {
			Station struct {
				Credential string `json:"uuid"`
			} `json:"estacao"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil || result.Station.Credential == "" {
			return errMsg{fmt.Errorf("unexpected station response")}
		}

		return stationCreatedMsg{credential: result.Station.Credential}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.step == stepSelectingFarm && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.step == stepSelectingFarm && m.cursor < len(m.farms)-1 {
				m.cursor++
			}

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		default:
			if m.step == stepEnteringEmail || m.step == stepEnteringPassword || m.step == stepEnteringStationName {
				m.currentInput += msg.String()
			}

		case "enter":
			switch m.step {
			case stepEnteringEmail:
				if m.currentInput != "" {
					m.email = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPassword
				}

			case stepEnteringPassword:
				if m.currentInput != "" {
					m.password = m.currentInput
					m.currentInput = ""
					m.step = stepLoggingIn
					m.message = "Logging in..."
					return m, login(m.serverURL, m.email, m.password)
				}

			case stepSelectingFarm:
				if len(m.farms) > 0 {
					m.step = stepEnteringStationName
				}

			case stepEnteringStationName:
				if m.currentInput != "" {
					m.stationName = m.currentInput
					m.currentInput = ""
					m.step = stepCreatingStation
					m.message = "Registering station..."
					return m, createStation(m.serverURL, m.token, m.farms[m.cursor].ID, m.stationName)
				}

			case stepComplete:
				m.quitting = true
				return m, tea.Quit
			}
		}

	case loginSuccessMsg:
		m.token = msg.token
		m.step = stepLoadingFarms
		m.message = successStyle.Render("Logged in as " + m.email)
		return m, loadFarms(m.serverURL, m.token)

	case farmsLoadedMsg:
		m.farms = []farm(msg)
		if len(m.farms) == 0 {
			m.message = errorStyle.Render("No farms registered yet - create one through the API first")
			m.step = stepComplete
		} else {
			m.step = stepSelectingFarm
		}

	case stationCreatedMsg:
		m.credential = msg.credential
		m.step = stepComplete
		m.message = successStyle.Render("Station registered!")

	case errMsg:
		m.message = errorStyle.Render(msg.err.Error())
		m.step = stepEnteringEmail
		m.currentInput = ""
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Weather Station Setup\n\n"))

	switch m.step {
	case stepEnteringEmail:
		if m.message != "" {
			s.WriteString(m.message + "\n\n")
		}
		s.WriteString(promptStyle.Render("Enter your email:\n"))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepEnteringPassword:
		s.WriteString(promptStyle.Render("Enter your password:\n"))
		s.WriteString(inputStyle.Render("> " + strings.Repeat("*", len(m.currentInput))))
		s.WriteString("\n\nPress Enter\n")

	case stepLoggingIn, stepLoadingFarms, stepCreatingStation:
		s.WriteString(m.message + "\n")

	case stepSelectingFarm:
		s.WriteString(promptStyle.Render("Select the farm for the new station:\n\n"))
		for i, f := range m.farms {
			cursor := " "
			style := normalStyle
			if m.cursor == i {
				cursor = ">"
				style = selectedStyle
			}
			s.WriteString(fmt.Sprintf("%s %s\n", cursor, style.Render(f.Name)))
		}
		s.WriteString("\nUse up/down, Enter to select, ctrl+c to quit\n")

	case stepEnteringStationName:
		s.WriteString(promptStyle.Render(fmt.Sprintf("Station name (farm: %s):\n", m.farms[m.cursor].Name)))
		s.WriteString(inputStyle.Render("> " + m.currentInput))
		s.WriteString("\n\nPress Enter\n")

	case stepComplete:
		s.WriteString(m.message + "\n")
		if m.credential != "" {
			s.WriteString("\nFlash this credential onto the device firmware:\n\n")
			s.WriteString(credentialStyle.Render(m.credential))
			s.WriteString("\n\nThe credential is shown once and cannot be rotated.\n")
		}
		s.WriteString("\nPress Enter to exit\n")
	}

	return s.String()
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}
