package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/huhforms"
	"github.com/thenoetrevino/taskflow/internal/tui/state"
	"github.com/thenoetrevino/taskflow/internal/user"
)

// descriptionLines sizes the description field to the terminal
func (m *Model) descriptionLines() int {
	return min(max(m.UiState.Height()/4, 3), 10)
}

// openForm installs form as the active modal and starts it
func (m *Model) openForm(kind state.FormKind, form *huh.Form) tea.Cmd {
	form = form.WithTheme(huhforms.CreateTaskFlowTheme(m.Config.ColorScheme))
	m.FormState.Open(kind, form)
	m.UiState.SetMode(state.FormMode)
	return form.Init()
}

func (m *Model) openLoginForm() tea.Cmd {
	m.FormState.FormPassword = ""
	return m.openForm(state.LoginForm, huhforms.CreateLoginForm(
		&m.FormState.FormEmail,
		&m.FormState.FormPassword,
	))
}

func (m *Model) openRegisterForm() tea.Cmd {
	m.FormState.FormPassword = ""
	if m.FormState.FormName == "" {
		m.FormState.FormName = user.DisplayName()
	}
	return m.openForm(state.RegisterForm, huhforms.CreateRegisterForm(
		&m.FormState.FormEmail,
		&m.FormState.FormName,
		&m.FormState.FormPassword,
	))
}

func (m *Model) openProjectForm() tea.Cmd {
	m.FormState.FormProjectName = ""
	m.FormState.FormProjectDescription = ""
	m.FormState.FormConfirm = true
	return m.openForm(state.ProjectForm, huhforms.CreateProjectForm(
		&m.FormState.FormProjectName,
		&m.FormState.FormProjectDescription,
		&m.FormState.FormConfirm,
	))
}

func (m *Model) openTaskForm() tea.Cmd {
	m.FormState.FormTaskTitle = ""
	m.FormState.FormTaskDescription = ""
	m.FormState.FormTaskPriority = models.PriorityMedium
	m.FormState.FormTaskStatus = models.StatusTodo
	if m.Board != nil {
		m.FormState.FormTaskStatus = m.Board.SelectedStatus()
	}
	m.FormState.FormConfirm = true
	return m.openForm(state.TaskForm, huhforms.CreateTaskForm(
		&m.FormState.FormTaskTitle,
		&m.FormState.FormTaskDescription,
		&m.FormState.FormTaskPriority,
		&m.FormState.FormConfirm,
		m.descriptionLines(),
	))
}

func (m *Model) openEditTaskForm() tea.Cmd {
	m.FormState.LoadTask(m.Detail.Task())
	return m.openForm(state.EditTaskForm, huhforms.EditTaskForm(
		&m.FormState.FormTaskTitle,
		&m.FormState.FormTaskDescription,
		&m.FormState.FormTaskPriority,
		m.descriptionLines(),
	))
}

func (m *Model) openCommentForm() tea.Cmd {
	m.FormState.FormCommentMessage = ""
	return m.openForm(state.CommentForm, huhforms.CreateCommentForm(&m.FormState.FormCommentMessage))
}

// closeForm drops the active form and returns to NormalMode
func (m *Model) closeForm() {
	m.FormState.Close()
	m.UiState.SetMode(state.NormalMode)
}

// updateForm handles all messages while a form is open.
// This is separated out because forms need to receive ALL messages, not just KeyMsg
func (m *Model) updateForm(msg tea.Msg) tea.Cmd {
	if !m.FormState.IsOpen() {
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	// Check for keyboard shortcuts before passing to form
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.closeForm()
			return nil
		case "ctrl+n":
			switch m.FormState.Kind {
			case state.LoginForm:
				return m.openRegisterForm()
			case state.RegisterForm:
				return m.openLoginForm()
			}
		case "ctrl+s":
			// quick save skips the remaining fields
			m.FormState.FormConfirm = true
			return m.completeForm()
		}
	}

	model, cmd := m.FormState.Form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		m.FormState.Form = form
	}

	switch m.FormState.Form.State {
	case huh.StateCompleted:
		return m.completeForm()
	case huh.StateAborted:
		m.closeForm()
		return nil
	}
	return cmd
}

// completeForm closes the active form and submits its values
func (m *Model) completeForm() tea.Cmd {
	kind := m.FormState.Kind
	m.closeForm()
	fs := m.FormState

	switch kind {
	case state.LoginForm:
		m.UiState.SetLoading(true)
		return m.login(models.LoginRequest{
			Email:    strings.TrimSpace(fs.FormEmail),
			Password: fs.FormPassword,
		})

	case state.RegisterForm:
		m.UiState.SetLoading(true)
		return m.register(models.RegisterRequest{
			Email:    strings.TrimSpace(fs.FormEmail),
			Name:     strings.TrimSpace(fs.FormName),
			Password: fs.FormPassword,
		})

	case state.ProjectForm:
		name := strings.TrimSpace(fs.FormProjectName)
		if !fs.FormConfirm || name == "" {
			return nil
		}
		return m.createProject(models.ProjectCreate{
			Name:        name,
			Description: strings.TrimSpace(fs.FormProjectDescription),
		})

	case state.TaskForm:
		title := strings.TrimSpace(fs.FormTaskTitle)
		if !fs.FormConfirm || title == "" || m.Board == nil {
			return nil
		}
		priority := fs.FormTaskPriority
		return m.createTask(m.Board.Project.ID, fs.FormTaskStatus, models.TaskCreate{
			Title:       title,
			Description: fs.FormTaskDescription,
			Priority:    &priority,
		})

	case state.EditTaskForm:
		if m.Detail == nil {
			return nil
		}
		return m.editTask(fs.TaskUpdate(m.Detail.Task()))

	case state.CommentForm:
		content := strings.TrimSpace(fs.FormCommentMessage)
		if m.Detail == nil {
			return nil
		}
		if content == "" {
			m.NotificationState.Add(state.LevelInfo, "Comment is empty")
			return nil
		}
		task := m.Detail.Task()
		return m.createComment(task.ProjectID, task.ID, content)
	}
	return nil
}
