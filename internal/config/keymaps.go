package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask       string `yaml:"add_task"`
	EditTask      string `yaml:"edit_task"`
	MoveTaskLeft  string `yaml:"move_task_left"`
	MoveTaskRight string `yaml:"move_task_right"`
	ViewTask      string `yaml:"view_task"`
	CycleStatus   string `yaml:"cycle_status"`
	CyclePriority string `yaml:"cycle_priority"`
	AddComment    string `yaml:"add_comment"`
	DeleteTask    string `yaml:"delete_task"`

	// Projects
	CreateProject string `yaml:"create_project"`
	DeleteProject string `yaml:"delete_project"`

	// Navigation
	PrevColumn    string `yaml:"prev_column"`
	NextColumn    string `yaml:"next_column"`
	PrevTask      string `yaml:"prev_task"`
	NextTask      string `yaml:"next_task"`
	ShowDashboard string `yaml:"show_dashboard"`
	ShowProjects  string `yaml:"show_projects"`
	Back          string `yaml:"back"`
	Refresh       string `yaml:"refresh"`

	// Other
	Logout   string `yaml:"logout"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		AddTask:       "n",
		EditTask:      "e",
		MoveTaskLeft:  "H",
		MoveTaskRight: "L",
		ViewTask:      "enter",
		CycleStatus:   "s",
		CyclePriority: "p",
		AddComment:    "c",
		DeleteTask:    "d",

		// Projects
		CreateProject: "N",
		DeleteProject: "X",

		// Navigation
		PrevColumn:    "h",
		NextColumn:    "l",
		PrevTask:      "k",
		NextTask:      "j",
		ShowDashboard: "D",
		ShowProjects:  "P",
		Back:          "esc",
		Refresh:       "r",

		// Other
		Logout:   "ctrl+o",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	pairs := []struct {
		value    *string
		fallback string
	}{
		{&k.AddTask, defaults.AddTask},
		{&k.EditTask, defaults.EditTask},
		{&k.MoveTaskLeft, defaults.MoveTaskLeft},
		{&k.MoveTaskRight, defaults.MoveTaskRight},
		{&k.ViewTask, defaults.ViewTask},
		{&k.CycleStatus, defaults.CycleStatus},
		{&k.CyclePriority, defaults.CyclePriority},
		{&k.AddComment, defaults.AddComment},
		{&k.DeleteTask, defaults.DeleteTask},
		{&k.CreateProject, defaults.CreateProject},
		{&k.DeleteProject, defaults.DeleteProject},
		{&k.PrevColumn, defaults.PrevColumn},
		{&k.NextColumn, defaults.NextColumn},
		{&k.PrevTask, defaults.PrevTask},
		{&k.NextTask, defaults.NextTask},
		{&k.ShowDashboard, defaults.ShowDashboard},
		{&k.ShowProjects, defaults.ShowProjects},
		{&k.Back, defaults.Back},
		{&k.Refresh, defaults.Refresh},
		{&k.Logout, defaults.Logout},
		{&k.ShowHelp, defaults.ShowHelp},
		{&k.Quit, defaults.Quit},
	}
	for _, p := range pairs {
		if *p.value == "" {
			*p.value = p.fallback
		}
	}
}
