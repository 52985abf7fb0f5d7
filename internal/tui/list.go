package tui

import (
	"fmt"

	"github.com/MKhiriev/go-task-keeper/models"
)

type listModel struct {
	tasks     []models.Task
	idx       int
	loading   bool
	fromCache bool
	status    string
	lastErr   error
}

func newListModel() listModel {
	return listModel{loading: true}
}

func (m listModel) current() (models.Task, bool) {
	if len(m.tasks) == 0 || m.idx < 0 || m.idx >= len(m.tasks) {
		return models.Task{}, false
	}
	return m.tasks[m.idx], true
}

func statusIcon(s models.TaskStatus) string {
	switch s {
	case models.StatusToDo:
		return "[ ]"
	case models.StatusInProgress:
		return "[~]"
	case models.StatusDone:
		return "[x]"
	default:
		return "[?]"
	}
}

func (m listModel) View() string {
	header := titleStyle.Render("Go Task Keeper")
	if m.fromCache {
		header += "  " + offlineStyle.Render("(offline, cached copy)")
	}
	out := header + "\n\n"

	if m.loading {
		out += "Loading...\n"
	} else if len(m.tasks) == 0 {
		out += "No tasks yet\n"
	} else {
		for i, task := range m.tasks {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s %s\n", cursor, statusIcon(task.Status), fitText(task.Title, 60))
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}
	if m.lastErr != nil {
		out += "\nError: " + m.lastErr.Error() + "\n"
	}

	out += "\n" + helpStyle.Render("n new  e edit  s status  d delete  c copy  r refresh  l logout  q quit")
	return out
}
