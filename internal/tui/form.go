package tui

import (
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// formModel is the create/edit form for a single task. The status row is not
// a text input: it cycles through the allowed statuses with space or the
// left/right keys.
type formModel struct {
	inputs     []textinput.Model
	status     models.TaskStatus
	focus      int
	editing    bool
	taskID     int64
	submitting bool
}

const formStatusRow = 2

var statusCycle = []models.TaskStatus{models.StatusToDo, models.StatusInProgress, models.StatusDone}

func newFormModel(task *models.Task) formModel {
	titleInput := textinput.New()
	titleInput.Placeholder = "title"
	titleInput.CharLimit = 200
	titleInput.Width = 50
	titleInput.Focus()

	descriptionInput := textinput.New()
	descriptionInput.Placeholder = "description (optional)"
	descriptionInput.CharLimit = 1000
	descriptionInput.Width = 50

	m := formModel{
		inputs: []textinput.Model{titleInput, descriptionInput},
		status: models.StatusToDo,
	}
	if task == nil {
		return m
	}

	m.editing = true
	m.taskID = task.TaskID
	m.status = task.Status
	m.inputs[0].SetValue(task.Title)
	m.inputs[1].SetValue(task.Description)
	return m
}

func (m formModel) rows() int {
	return len(m.inputs) + 1
}

func (m *formModel) cycleStatus(backwards bool) {
	idx := 0
	for i, s := range statusCycle {
		if s == m.status {
			idx = i
			break
		}
	}
	if backwards {
		idx = (idx - 1 + len(statusCycle)) % len(statusCycle)
	} else {
		idx = (idx + 1) % len(statusCycle)
	}
	m.status = statusCycle[idx]
}

func (m formModel) toCreateRequest() models.CreateTaskRequest {
	return models.CreateTaskRequest{
		Title:       m.inputs[0].Value(),
		Description: m.inputs[1].Value(),
		Status:      m.status,
	}
}

func (m formModel) toUpdateRequest() models.UpdateTaskRequest {
	title := m.inputs[0].Value()
	description := m.inputs[1].Value()
	status := m.status
	return models.UpdateTaskRequest{
		Title:       &title,
		Description: &description,
		Status:      &status,
	}
}

func (m formModel) View() string {
	title := "New task"
	if m.editing {
		title = "Edit: " + fitText(m.inputs[0].Value(), 40)
	}

	statusCursor := "  "
	if m.focus == formStatusRow {
		statusCursor = "> "
	}

	out := titleStyle.Render(title) + "\n\n"
	out += "Title:       [" + m.inputs[0].View() + "]\n"
	out += "Description: [" + m.inputs[1].View() + "]\n"
	out += statusCursor + "Status: < " + string(m.status) + " >\n"

	if m.submitting {
		out += "\nSaving...\n"
	}

	out += "\n" + helpStyle.Render("esc cancel  tab next field  space cycle status  enter save")
	return out
}
