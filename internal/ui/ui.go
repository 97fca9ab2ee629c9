package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ewalker/reportfill/internal/auth"
	"github.com/ewalker/reportfill/internal/models"
	"github.com/ewalker/reportfill/internal/shared"
	"github.com/ewalker/reportfill/internal/workflow"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	LoginView ViewState = iota
	UploadView
	ResultView
)

// Model represents the TUI application state.
//
// Rendering branches on the auth controller's session: an unauthenticated
// session always lands on [LoginView], whatever view was active before.
type Model struct {
	ctx        context.Context
	authCtrl   *auth.Controller
	subCtrl    *workflow.SubmissionController
	outputPath string

	view    ViewState
	session models.Session
	width   int
	height  int

	username textinput.Model
	password textinput.Model
	htmlPath textinput.Model
	xlsxPath textinput.Model
	focus    int

	spin      spinner.Model
	loading   bool
	authError string
	formError string
	savedTo   string

	help help.Model
	keys keyMap
}

type sessionResolvedMsg struct {
	session models.Session
}

type loginResultMsg struct {
	session models.Session
	err     error
}

type submitResultMsg struct {
	result models.SubmissionResult
}

type savedMsg struct {
	path string
	open bool
	err  error
}

// NewModel creates a new TUI model with the provided controllers.
func NewModel(ctx context.Context, authCtrl *auth.Controller, subCtrl *workflow.SubmissionController, outputPath string) *Model {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	htmlPath := textinput.New()
	htmlPath.Placeholder = "path/to/report.html"

	xlsxPath := textinput.New()
	xlsxPath.Placeholder = "path/to/names.xlsx"

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.warn

	return &Model{
		ctx:        ctx,
		authCtrl:   authCtrl,
		subCtrl:    subCtrl,
		outputPath: outputPath,
		view:       LoginView,
		username:   username,
		password:   password,
		htmlPath:   htmlPath,
		xlsxPath:   xlsxPath,
		spin:       s,
		help:       help.New(),
		keys:       newKeyMap(),
	}
}

// usernameShown reports whether the login form carries a username field;
// only the local credential table distinguishes usernames.
func (m *Model) usernameShown() bool {
	return m.authCtrl.Provider().Name() == "local"
}

// Init resolves the initial session before rendering anything.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.resolveSession(), textinput.Blink)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			m.subCtrl.Store().RevokeAll()
			return m, tea.Quit
		}
		switch m.view {
		case LoginView:
			return m.handleLoginKeys(msg)
		case UploadView:
			return m.handleUploadKeys(msg)
		case ResultView:
			return m.handleResultKeys(msg)
		}

	case sessionResolvedMsg:
		m.session = msg.session
		if m.session.Authenticated {
			m.view = UploadView
			return m, m.focusUploadField(0)
		}
		m.view = LoginView
		return m, m.focusLoginField(0)

	case loginResultMsg:
		m.session = msg.session
		if msg.err != nil {
			// a rejected login always clears the typed password
			m.password.Reset()
			m.authError = msg.err.Error()
			return m, m.focusLoginField(m.focus)
		}
		m.authError = ""
		m.password.Reset()
		m.view = UploadView
		return m, m.focusUploadField(0)

	case submitResultMsg:
		m.loading = false
		m.session = m.authCtrl.Session()
		switch {
		case msg.result.State == models.ResultSuccess:
			m.formError = ""
			m.savedTo = ""
			m.view = ResultView
		case !m.session.Authenticated:
			// authorization lost mid-workflow: back to the login gate
			m.authError = msg.result.Message
			m.view = LoginView
			return m, m.focusLoginField(0)
		default:
			m.formError = msg.result.Message
		}
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.formError = msg.err.Error()
			return m, nil
		}
		m.savedTo = msg.path
		if msg.open {
			if err := shared.OpenBrowser(msg.path); err != nil {
				m.formError = err.Error()
			}
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m.updateInputs(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case LoginView:
		return m.renderLogin()
	case UploadView:
		return m.renderUpload()
	case ResultView:
		return m.renderResult()
	default:
		return ""
	}
}

func (m *Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.next):
		if m.usernameShown() {
			m.focus = (m.focus + 1) % 2
			return m, m.focusLoginField(m.focus)
		}
		return m, nil
	case key.Matches(msg, m.keys.enter):
		creds := auth.Credentials{
			Username: m.username.Value(),
			Password: m.password.Value(),
		}
		return m, m.login(creds)
	}
	return m.updateInputs(msg)
}

func (m *Model) handleUploadKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		// submit control is disabled while a request is in flight
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.logout):
		m.authCtrl.Logout(m.ctx)
		m.session = m.authCtrl.Session()
		m.htmlPath.Reset()
		m.xlsxPath.Reset()
		m.formError = ""
		m.view = LoginView
		return m, m.focusLoginField(0)
	case key.Matches(msg, m.keys.next):
		m.focus = (m.focus + 1) % 2
		return m, m.focusUploadField(m.focus)
	case key.Matches(msg, m.keys.enter):
		if err := m.selectFiles(); err != nil {
			m.formError = err.Error()
			return m, nil
		}
		m.formError = ""
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.submit())
	}
	return m.updateInputs(msg)
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.save):
		return m, m.save(false)
	case key.Matches(msg, m.keys.open):
		return m, m.save(true)
	case key.Matches(msg, m.keys.restart):
		m.formError = ""
		m.savedTo = ""
		m.view = UploadView
		return m, m.focusUploadField(0)
	case key.Matches(msg, m.keys.logout):
		m.authCtrl.Logout(m.ctx)
		m.session = m.authCtrl.Session()
		m.htmlPath.Reset()
		m.xlsxPath.Reset()
		m.view = LoginView
		return m, m.focusLoginField(0)
	}
	return m, nil
}

func (m *Model) selectFiles() error {
	if m.htmlPath.Value() == "" || m.xlsxPath.Value() == "" {
		return shared.ErrMissingFile
	}
	if err := m.subCtrl.SelectHTML(m.htmlPath.Value()); err != nil {
		return err
	}
	return m.subCtrl.SelectExcel(m.xlsxPath.Value())
}

func (m *Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch m.view {
	case LoginView:
		m.username, cmd = m.username.Update(msg)
		cmds = append(cmds, cmd)
		m.password, cmd = m.password.Update(msg)
		cmds = append(cmds, cmd)
	case UploadView:
		m.htmlPath, cmd = m.htmlPath.Update(msg)
		cmds = append(cmds, cmd)
		m.xlsxPath, cmd = m.xlsxPath.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) focusLoginField(i int) tea.Cmd {
	m.focus = i
	m.username.Blur()
	m.password.Blur()
	if m.usernameShown() && i == 0 {
		return m.username.Focus()
	}
	return m.password.Focus()
}

func (m *Model) focusUploadField(i int) tea.Cmd {
	m.focus = i
	m.htmlPath.Blur()
	m.xlsxPath.Blur()
	if i == 0 {
		return m.htmlPath.Focus()
	}
	return m.xlsxPath.Focus()
}

func (m *Model) resolveSession() tea.Cmd {
	return func() tea.Msg {
		return sessionResolvedMsg{session: m.authCtrl.ResolveInitial(m.ctx)}
	}
}

func (m *Model) login(creds auth.Credentials) tea.Cmd {
	return func() tea.Msg {
		session, err := m.authCtrl.Login(m.ctx, creds)
		return loginResultMsg{session: session, err: err}
	}
}

func (m *Model) submit() tea.Cmd {
	return func() tea.Msg {
		return submitResultMsg{result: m.subCtrl.Submit(m.ctx)}
	}
}

func (m *Model) save(open bool) tea.Cmd {
	return func() tea.Msg {
		path := m.outputPath
		if path == "" {
			path = workflow.DownloadFilename
		}
		if open {
			path = filepath.Join(os.TempDir(), workflow.DownloadFilename)
		}
		err := m.subCtrl.SaveResult(path)
		return savedMsg{path: path, open: open, err: err}
	}
}

func (m *Model) renderLogin() string {
	title := styles.title.Render("Secure Access")

	var fields string
	if m.usernameShown() {
		fields = fmt.Sprintf("%s\n%s\n", m.username.View(), m.password.View())
	} else {
		fields = fmt.Sprintf("%s\n", m.password.View())
	}

	var errLine string
	if m.authError != "" {
		errLine = styles.err.Render(m.authError) + "\n"
	}

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.next, m.keys.quit})
	return fmt.Sprintf("%s\n%s%s\n%s", title, fields, errLine, helpView)
}

func (m *Model) renderUpload() string {
	title := styles.title.Render("Daily Report Name Injector")

	var adminLine string
	if m.session.Role == models.RoleAdmin {
		adminLine = styles.warn.Render("admin session") + "\n"
	}

	fields := fmt.Sprintf("HTML Daily Report\n%s\n\nNames Excel File\n%s\n", m.htmlPath.View(), m.xlsxPath.View())

	var status string
	switch {
	case m.loading:
		status = fmt.Sprintf("%s Processing...\n", m.spin.View())
	case m.formError != "":
		status = styles.err.Render(m.formError) + "\n"
	}

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.next, m.keys.logout, m.keys.quit})
	return fmt.Sprintf("%s\n%s%s\n%s\n%s", title, adminLine, fields, status, helpView)
}

func (m *Model) renderResult() string {
	title := styles.ok.Render("✓ Report Ready")

	info := fmt.Sprintf("\nThe updated report is ready to download as %s.\n", workflow.DownloadFilename)
	if m.savedTo != "" {
		info += styles.ok.Render(fmt.Sprintf("Saved to %s", m.savedTo)) + "\n"
	}

	var errLine string
	if m.formError != "" {
		errLine = styles.err.Render(m.formError) + "\n"
	}

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.save, m.keys.open, m.keys.restart, m.keys.logout, m.keys.quit})
	return fmt.Sprintf("%s%s%s\n%s", title, info, errLine, helpView)
}
