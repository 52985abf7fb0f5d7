package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned when the user leaves the program from the
// authentication screens instead of signing in.
var ErrUserQuit = errors.New("user quit")

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenList
	screenForm
)

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	currentScreen screen

	welcome  welcomeModel
	login    loginModel
	register registerModel
	list     listModel
	form     formModel

	err           error
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete int64
	logout        bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, loggedIn bool) appModel {
	m := appModel{
		ctx:           ctx,
		services:      services,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		list:          newListModel(),
	}
	if loggedIn {
		m.currentScreen = screenList
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.currentScreen == screenList {
		return m.cmdLoadList()
	}
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == 0 {
					return m, nil
				}
				return m, m.cmdDeleteTask(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = 0
			}
			return m, nil
		}
	case authDoneMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.list = newListModel()
		if msg.username != "" {
			m.list.status = "Signed in as " + msg.username
		}
		m.currentScreen = screenList
		return m, tea.Batch(m.cmdLoadList(), cmdClearStatus())
	case listLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.list.tasks = msg.tasks
		m.list.fromCache = msg.fromCache
		m.list.lastErr = nil
		if m.list.idx >= len(m.list.tasks) {
			m.list.idx = len(m.list.tasks) - 1
		}
		if m.list.idx < 0 {
			m.list.idx = 0
		}
		return m, nil
	case taskSavedMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.currentScreen = screenList
		return m, m.cmdLoadList()
	case taskDeletedMsg:
		m.pendingDelete = 0
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		return m, m.cmdLoadList()
	case loggedOutMsg:
		m.logout = true
		m.err = msg.err
		return m, tea.Quit
	case copiedMsg:
		m.list.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.list.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenList:
		return m.updateList(msg)
	case screenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenList:
		body = m.list.View()
	case screenForm:
		body = m.form.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.login.submitting = v
	m.register.submitting = v
	m.form.submitting = v
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.login = newLoginModel()
			m.currentScreen = screenLogin
		} else {
			m.register = newRegisterModel()
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login.focus = moveFocus(m.login.inputs, m.login.focus, m.login.rows(), 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login.focus = moveFocus(m.login.inputs, m.login.focus, m.login.rows(), -1)
			return m, nil
		case key.Matches(keyMsg, keys.space) && m.login.focus == loginRememberRow:
			m.login.remember = !m.login.remember
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.login.inputs[0].Value())
			password := m.login.inputs[1].Value()
			if email == "" || password == "" {
				m.showErrorf("Email and password are required")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(models.LoginRequest{
				Email:      email,
				Password:   password,
				RememberMe: m.login.remember,
			})
		}
	}

	if m.login.focus >= len(m.login.inputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register.focus = moveFocus(m.register.inputs, m.register.focus, len(m.register.inputs), 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register.focus = moveFocus(m.register.inputs, m.register.focus, len(m.register.inputs), -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			username := strings.TrimSpace(m.register.inputs[0].Value())
			email := strings.TrimSpace(m.register.inputs[1].Value())
			password := m.register.inputs[2].Value()
			repeat := m.register.inputs[3].Value()
			if username == "" || email == "" || password == "" {
				m.showErrorf("Username, email and password are required")
				return m, nil
			}
			if password != repeat {
				m.showErrorf("Passwords do not match")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegister(models.RegisterRequest{
				Username: username,
				Email:    email,
				Password: password,
			})
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.tasks)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.newTask):
		m.form = newFormModel(nil)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.edit):
		task, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.form = newFormModel(&task)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.status):
		task, ok := m.list.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdCycleStatus(task)
	case key.Matches(keyMsg, keys.delete):
		task, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = task.Title
		m.pendingDelete = task.TaskID
	case key.Matches(keyMsg, keys.copy):
		task, ok := m.list.current()
		if !ok || task.Title == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(task.Title)
	case key.Matches(keyMsg, keys.refresh):
		m.list.loading = true
		return m, m.cmdLoadList()
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form.focus = moveFocus(m.form.inputs, m.form.focus, m.form.rows(), 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focus = moveFocus(m.form.inputs, m.form.focus, m.form.rows(), -1)
			return m, nil
		case key.Matches(keyMsg, keys.space) && m.form.focus == formStatusRow:
			m.form.cycleStatus(false)
			return m, nil
		case keyMsg.String() == "right" && m.form.focus == formStatusRow:
			m.form.cycleStatus(false)
			return m, nil
		case keyMsg.String() == "left" && m.form.focus == formStatusRow:
			m.form.cycleStatus(true)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			if strings.TrimSpace(m.form.inputs[0].Value()) == "" {
				m.showErrorf("Title is required")
				return m, nil
			}
			m.form.submitting = true
			if m.form.editing {
				return m, m.cmdUpdateTask(m.form.taskID, m.form.toUpdateRequest())
			}
			return m, m.cmdCreateTask(m.form.toCreateRequest())
		}
	}

	if m.form.focus >= len(m.form.inputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) cmdLogin(req models.LoginRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		sess, err := auth.Login(ctx, req)
		return authDoneMsg{username: sess.User.Username, err: err}
	}
}

func (m appModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		sess, err := auth.Register(ctx, req)
		return authDoneMsg{username: sess.User.Username, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(ctx)}
	}
}

func (m appModel) cmdLoadList() tea.Cmd {
	ctx := m.ctx
	svc := m.services.TaskService
	return func() tea.Msg {
		tasks, fromCache, err := svc.List(ctx)
		return listLoadedMsg{tasks: tasks, fromCache: fromCache, err: err}
	}
}

func (m appModel) cmdCreateTask(req models.CreateTaskRequest) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TaskService
	return func() tea.Msg {
		_, err := svc.Create(ctx, req)
		return taskSavedMsg{err: err}
	}
}

func (m appModel) cmdUpdateTask(taskID int64, req models.UpdateTaskRequest) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TaskService
	return func() tea.Msg {
		_, err := svc.Update(ctx, taskID, req)
		return taskSavedMsg{err: err}
	}
}

func (m appModel) cmdCycleStatus(task models.Task) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TaskService
	next := nextStatus(task.Status)
	return func() tea.Msg {
		_, err := svc.Update(ctx, task.TaskID, models.UpdateTaskRequest{Status: &next})
		return taskSavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteTask(taskID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TaskService
	return func() tea.Msg {
		return taskDeletedMsg{err: svc.Delete(ctx, taskID)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return taskSavedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func nextStatus(s models.TaskStatus) models.TaskStatus {
	for i, candidate := range statusCycle {
		if candidate == s {
			return statusCycle[(i+1)%len(statusCycle)]
		}
	}
	return models.StatusToDo
}

func moveFocus(inputs []textinput.Model, focus, rows, delta int) int {
	if focus < len(inputs) {
		inputs[focus].Blur()
	}
	focus = (focus + delta + rows) % rows
	if focus < len(inputs) {
		inputs[focus].Focus()
	}
	return focus
}
