package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/state"
)

// ============================================================================
// KEY HANDLERS
// ============================================================================

// handleKey dispatches key presses outside of forms.
func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()

	switch m.UiState.Mode() {
	case state.HelpMode:
		m.UiState.SetMode(state.NormalMode)
		return nil
	case state.DeleteConfirmMode:
		return m.handleDeleteConfirm(key)
	}

	m.NotificationState.Clear()

	if m.UiState.Loading() {
		if key == m.Config.KeyMappings.Quit {
			return tea.Quit
		}
		return nil
	}

	if m.UiState.View() == state.LoginView {
		// the login form reopens on any key once it was dismissed
		if key == m.Config.KeyMappings.Quit {
			return tea.Quit
		}
		return m.openLoginForm()
	}

	km := m.Config.KeyMappings
	switch key {
	case km.Quit:
		return tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return nil
	case km.ShowDashboard:
		return m.openDashboard()
	case km.ShowProjects:
		return m.openProjects()
	case km.Logout:
		return m.logout()
	case km.Refresh:
		return m.refresh()
	}

	switch m.UiState.View() {
	case state.ProjectsView:
		return m.handleProjectsKey(key)
	case state.BoardView:
		return m.handleBoardKey(key)
	case state.TaskView:
		return m.handleTaskKey(key)
	}
	return nil
}

// refresh remounts the current view
func (m *Model) refresh() tea.Cmd {
	switch m.UiState.View() {
	case state.DashboardView:
		return m.openDashboard()
	case state.ProjectsView:
		return m.openProjects()
	case state.BoardView:
		if task, ok := m.selectedBoardTask(); ok {
			m.follow = task.ID
		}
		return m.openBoard(m.projectID)
	case state.TaskView:
		if m.Detail != nil {
			return m.openTask(m.Detail.Task())
		}
	}
	return nil
}

// ============================================================================
// PROJECT LIST
// ============================================================================

func (m *Model) handleProjectsKey(key string) tea.Cmd {
	km := m.Config.KeyMappings

	switch key {
	case km.PrevTask, "up":
		m.ProjectList.Up()
	case km.NextTask, "down":
		m.ProjectList.Down()
	case km.ViewTask, km.NextColumn, "right":
		if p, ok := m.ProjectList.Selected(); ok {
			return m.openBoard(p.ID)
		}
	case km.CreateProject:
		return m.openProjectForm()
	case km.DeleteProject:
		if p, ok := m.ProjectList.Selected(); ok {
			m.ProjectList.SetPendingDelete(&p)
			m.UiState.SetMode(state.DeleteConfirmMode)
		}
	case km.Back:
		return m.openDashboard()
	}
	return nil
}

func (m *Model) handleDeleteConfirm(key string) tea.Cmd {
	if m.UiState.View() == state.TaskView {
		return m.handleTaskDeleteConfirm(key)
	}
	pending := m.ProjectList.PendingDelete()

	switch key {
	case "y", "Y":
		m.ProjectList.SetPendingDelete(nil)
		m.UiState.SetMode(state.NormalMode)
		if pending != nil {
			return m.deleteProject(pending.ID)
		}
	case "n", "N", "esc":
		m.ProjectList.SetPendingDelete(nil)
		m.UiState.SetMode(state.NormalMode)
	}
	return nil
}

// ============================================================================
// BOARD
// ============================================================================

func (m *Model) selectedBoardTask() (models.Task, bool) {
	if m.Board == nil {
		return models.Task{}, false
	}
	return m.Board.SelectedTask()
}

func (m *Model) handleBoardKey(key string) tea.Cmd {
	if m.Board == nil {
		if key == m.Config.KeyMappings.Back {
			return m.openProjects()
		}
		return nil
	}
	km := m.Config.KeyMappings

	switch key {
	case km.PrevColumn, "left":
		if !m.Board.PrevColumn() {
			m.NotificationState.Add(state.LevelInfo, "Already at the first column")
		}
	case km.NextColumn, "right":
		if !m.Board.NextColumn() {
			m.NotificationState.Add(state.LevelInfo, "Already at the last column")
		}
	case km.PrevTask, "up":
		m.Board.PrevTask()
	case km.NextTask, "down":
		m.Board.NextTask()
	case km.MoveTaskLeft:
		return m.moveSelectedTask(models.Status.Prev)
	case km.MoveTaskRight:
		return m.moveSelectedTask(models.Status.Next)
	case km.AddTask:
		return m.openTaskForm()
	case km.ViewTask:
		if task, ok := m.Board.SelectedTask(); ok {
			return m.openTask(task)
		}
	case km.Back:
		return m.openProjects()
	}
	return nil
}

// moveSelectedTask moves the selected task one column over. The board shows
// the move at once; the backend call runs as a command.
func (m *Model) moveSelectedTask(step func(models.Status) (models.Status, error)) tea.Cmd {
	task, ok := m.Board.SelectedTask()
	if !ok {
		return nil
	}

	target, err := step(task.Status)
	if err != nil {
		m.NotificationState.Add(state.LevelInfo, "Task is already in the "+task.Status.Title()+" column")
		return nil
	}

	mutation, err := m.Board.Tasks.BeginMove(task.ID, target)
	if err != nil || mutation == nil {
		return nil
	}
	m.Board.Follow(task.ID)
	return m.runMutation(m.Board.Tasks, mutation)
}

// ============================================================================
// TASK DETAIL
// ============================================================================

func (m *Model) handleTaskKey(key string) tea.Cmd {
	if m.Detail == nil {
		if key == m.Config.KeyMappings.Back {
			return m.openBoard(m.projectID)
		}
		return nil
	}
	km := m.Config.KeyMappings

	switch key {
	case km.EditTask:
		return m.openEditTaskForm()
	case km.AddComment:
		return m.openCommentForm()
	case km.DeleteTask:
		m.UiState.SetMode(state.DeleteConfirmMode)
	case km.CycleStatus:
		return m.cycleStatus()
	case km.CyclePriority:
		return m.cyclePriority()
	case km.NextTask, "down":
		m.Detail.NextComment()
	case km.PrevTask, "up":
		m.Detail.PrevComment()
	case "ctrl+d", "pgdown":
		m.Detail.ScrollBy(m.UiState.Height() / 2)
	case "ctrl+u", "pgup":
		m.Detail.ScrollBy(-m.UiState.Height() / 2)
	case km.Back:
		return m.openBoard(m.projectID)
	}
	return nil
}

// handleTaskDeleteConfirm answers the prompt for deleting the shown task
func (m *Model) handleTaskDeleteConfirm(key string) tea.Cmd {
	switch key {
	case "y", "Y":
		m.UiState.SetMode(state.NormalMode)
		if m.Detail != nil {
			task := m.Detail.Task()
			return m.deleteTask(task.ProjectID, task.ID)
		}
	case "n", "N", "esc":
		m.UiState.SetMode(state.NormalMode)
	}
	return nil
}

// cycleStatus moves the task to the next status, wrapping from done to todo
func (m *Model) cycleStatus() tea.Cmd {
	task := m.Detail.Task()
	next := models.Statuses[(task.Status.Index()+1)%len(models.Statuses)]

	mutation, err := m.Detail.Tasks.BeginMove(task.ID, next)
	if err != nil || mutation == nil {
		return nil
	}
	return m.runMutation(m.Detail.Tasks, mutation)
}

// cyclePriority raises the priority by one, wrapping from critical to low
func (m *Model) cyclePriority() tea.Cmd {
	task := m.Detail.Task()
	i := 0
	for idx, p := range models.Priorities {
		if p == task.Priority {
			i = idx
		}
	}
	next := models.Priorities[(i+1)%len(models.Priorities)]
	return m.editTask(models.TaskUpdate{Priority: &next})
}

// editTask merges update into the shown task optimistically
func (m *Model) editTask(update models.TaskUpdate) tea.Cmd {
	task := m.Detail.Task()
	mutation, err := m.Detail.Tasks.BeginEdit(task.ID, update)
	if err != nil {
		return nil
	}
	if mutation == nil {
		m.NotificationState.Add(state.LevelInfo, "No changes")
		return nil
	}
	return m.runMutation(m.Detail.Tasks, mutation)
}
