package components

const (
	ColumnWidth        = 40 // ColumnWidth is the outer width of a board column
	TaskCardHeight     = 5  // TaskCardHeight is the fixed height of the task card
	taskTitleMaxLength = 30 // Maximum display length for task title before truncation
	columnOverhead     = 5  // borders, padding, header and top indicator
	progressBarWidth   = 24 // width of dashboard progress bars

	// Footer help strings
	BoardFooter     = "h/l column  j/k task  H/L move  n new  enter open  ? help"
	DetailFooter    = "e edit  s status  p priority  c comment  d delete  j/k comments  esc back"
	ProjectsFooter  = "enter open  N new  X delete  D dashboard  ? help"
	DashboardFooter = "P projects  r refresh  ctrl+o logout  q quit"
)
