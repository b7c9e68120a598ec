// Package list implements the portfolio list command.
package list

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bamgstudio/portfolio/internal/cmd/output"
	"github.com/bamgstudio/portfolio/internal/tools/portfolio"
	"github.com/bamgstudio/portfolio/pkg/projects"
)

// AppContext defines the interface the list command needs from the app.
type AppContext interface {
	Logger() *zerolog.Logger
	ProjectDir() string
	Format() string
}

// NewCommand creates the list command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var projectDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered project directories",
		Long: `List scans the project root and shows every project directory, its derived
table-of-contents title and anchor, and whether it has a README.md. Nothing
is written; this is a dry run of the generate command's scan.`,
		Example: `  portfolio list
  portfolio list --format json
  portfolio list --project-dir ./docs/project`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if projectDir == "" {
				projectDir = app.ProjectDir()
			}

			dirs, err := projects.Scan(projectDir)
			if err != nil {
				return err
			}

			rows := make([]output.ProjectRow, 0, len(dirs))
			for _, dir := range dirs {
				content, ok, err := projects.ReadReadme(dir.Path)
				if err != nil {
					return err
				}
				rows = append(rows, output.ProjectRow{
					Project: dir.Name,
					Title:   portfolio.DisplayTitle(dir.Name),
					Anchor:  portfolio.Anchor(dir.Name),
					Readme:  ok,
					Bytes:   len(content),
				})
			}

			format := output.DetectFormat(app.Format())
			formatter := output.NewFormatter(format)

			if format == output.FormatTable {
				return formatter.Format(cmd.OutOrStdout(), output.ProjectsToTableData(rows))
			}
			return formatter.Format(cmd.OutOrStdout(), rows)
		},
	}

	cmd.Flags().StringVar(&projectDir, "project-dir", "", "directory scanned for project subdirectories")

	return cmd
}
