package tui

import (
	"github.com/MKhiriev/go-task-keeper/models"
)

type authDoneMsg struct {
	username string
	err      error
}

type listLoadedMsg struct {
	tasks     []models.Task
	fromCache bool
	err       error
}

type taskSavedMsg struct {
	err error
}

type taskDeletedMsg struct {
	err error
}

type loggedOutMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
