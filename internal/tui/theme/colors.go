package theme

import "github.com/thenoetrevino/taskflow/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Title          string
	Subtle         string
	Normal         string
	Create         string
	Edit           string
	Delete         string
	ColumnBorder   string
	TaskBorder     string
	SelectedBorder string
	SelectedBg     string
	TaskBg         string
	ProgressFill   string
	ProgressEmpty  string
	InfoFg         string
	InfoBg         string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
)

func init() {
	Init(*colors.Default())
}

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Highlight = scheme.Accent
	Title = scheme.Title
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	Create = scheme.Create
	Edit = scheme.Edit
	Delete = scheme.Delete
	ColumnBorder = scheme.ColumnBorder
	TaskBorder = scheme.TaskBorder
	SelectedBorder = scheme.SelectedBorder
	SelectedBg = scheme.SelectedBg
	TaskBg = scheme.TaskBackground
	ProgressFill = scheme.ProgressFill
	ProgressEmpty = scheme.ProgressEmpty
	InfoFg = scheme.InfoFg
	InfoBg = scheme.InfoBg
	WarningFg = scheme.WarningFg
	WarningBg = scheme.WarningBg
	ErrorFg = scheme.ErrorFg
	ErrorBg = scheme.ErrorBg
}
