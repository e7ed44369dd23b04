package state

// View is the screen currently shown by the TUI
type View int

const (
	LoginView     View = iota // Sign-in form, shown when there is no valid session
	DashboardView             // Totals, assigned tasks and project progress
	ProjectsView              // Project list
	BoardView                 // Kanban board of one project
	TaskView                  // Detail of one task with its comments
)

// Title returns the tab label for the view
func (v View) Title() string {
	switch v {
	case LoginView:
		return "Login"
	case DashboardView:
		return "Dashboard"
	case ProjectsView:
		return "Projects"
	case BoardView:
		return "Board"
	case TaskView:
		return "Task"
	}
	return ""
}

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	FormMode                      // A huh form is open as a modal
	DeleteConfirmMode             // Confirming project deletion
	HelpMode                      // Displaying help screen
)

// UIState manages the user interface state: the current view and mode plus
// terminal dimensions.
type UIState struct {
	view   View
	mode   Mode
	width  int
	height int

	// loading is true while the current view waits for its first fetch
	loading bool
}

// NewUIState creates a new UIState starting at the login view.
func NewUIState() *UIState {
	return &UIState{
		view: LoginView,
		mode: NormalMode,
	}
}

// View returns the current view.
func (s *UIState) View() View {
	return s.view
}

// SetView switches view and returns to NormalMode.
func (s *UIState) SetView(view View) {
	s.view = view
	s.mode = NormalMode
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// Loading reports whether the current view is waiting for data.
func (s *UIState) Loading() bool {
	return s.loading
}

// SetLoading marks the current view as waiting for data.
func (s *UIState) SetLoading(loading bool) {
	s.loading = loading
}
