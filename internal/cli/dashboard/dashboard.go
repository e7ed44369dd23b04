package dashboard

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/taskflow/internal/cli"
	"github.com/thenoetrevino/taskflow/internal/cli/styles"
	"github.com/thenoetrevino/taskflow/internal/dashboard"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// ProjectSummary is one project's row in the dashboard
type ProjectSummary struct {
	Project  models.Project     `json:"project"`
	Progress dashboard.Progress `json:"progress"`
}

// Report is the full dashboard
type Report struct {
	Stats    dashboard.Stats          `json:"stats"`
	Assigned []dashboard.AssignedTask `json:"assigned"`
	Projects []ProjectSummary         `json:"projects"`
}

// DashboardCmd returns the dashboard command
func DashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Summarize every project you belong to",
		Long: `Show task totals across all projects, the tasks assigned to you and each
project's completion.

Examples:
  taskflow dashboard
  taskflow dashboard --json`,
		RunE: runDashboard,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runDashboard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err.Error(), "")
	}
	defer cli.CloseQuietly(cliInstance)

	me, err := cliInstance.App.Auth.Me(ctx)
	if err != nil {
		return cli.HandleAPIError(formatter, err)
	}

	projects, err := cliInstance.App.Dashboard(ctx)
	if err != nil {
		return cli.HandleAPIError(formatter, err)
	}

	report := Build(projects, me.ID)

	if formatter.JSON {
		return formatter.Success(report)
	}

	printReport(report)
	return nil
}

// Build derives the report for userID
func Build(projects []dashboard.ProjectTasks, userID int) Report {
	report := Report{
		Stats:    dashboard.Summarize(projects),
		Assigned: dashboard.AssignedTo(projects, userID),
		Projects: make([]ProjectSummary, 0, len(projects)),
	}
	for _, pt := range projects {
		report.Projects = append(report.Projects, ProjectSummary{
			Project:  pt.Project,
			Progress: dashboard.ProjectProgress(pt.Tasks),
		})
	}
	return report
}

func printReport(report Report) {
	s := report.Stats
	fmt.Println(styles.TitleStyle.Render("Dashboard"))
	fmt.Printf("  %s %d   %s %d   %s %d   %s %d   %s %d\n",
		styles.LabelStyle.Render("Projects"), s.Projects,
		styles.LabelStyle.Render("Tasks"), s.Total,
		styles.LabelStyle.Render("Todo"), s.Todo,
		styles.LabelStyle.Render("In Progress"), s.InProgress,
		styles.LabelStyle.Render("Done"), s.Done)

	fmt.Println(styles.SectionStyle.Render(fmt.Sprintf("Assigned to you (%d)", len(report.Assigned))))
	if len(report.Assigned) == 0 {
		fmt.Println("  " + styles.SubtitleStyle.Render("Nothing assigned"))
	}
	for _, t := range report.Assigned {
		fmt.Printf("  [%d] %s  %s  %s\n", t.ID, t.Title,
			styles.SubtitleStyle.Render(t.ProjectName), styles.RenderStatus(t.Status))
	}

	fmt.Println(styles.SectionStyle.Render("Projects"))
	for _, p := range report.Projects {
		fmt.Printf("  %-24s %s %3d%%  (%d/%d done)\n", p.Project.Name,
			styles.ProgressBar(p.Progress.Percent, 20), p.Progress.Percent,
			p.Progress.Done, p.Progress.Total)
	}
}
