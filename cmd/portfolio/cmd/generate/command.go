// Package generate implements the portfolio generate command.
package generate

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bamgstudio/portfolio/internal/tools/portfolio"
	"github.com/bamgstudio/portfolio/pkg/logging"
	"github.com/bamgstudio/portfolio/pkg/manifest"
)

// AppContext defines the interface the generate command needs from the app.
// This allows for better testability and decoupling from the full app.
type AppContext interface {
	Logger() *zerolog.Logger
	ProjectDir() string
	OutputFile() string
	ManifestFile() string
}

// NewCommand creates the generate command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var (
		projectDir   string
		outputFile   string
		manifestFile string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the aggregated portfolio document",
		Long: `Generate scans the project root for subdirectories containing a README.md,
builds a numbered table of contents, and writes one aggregated markdown
document. Directories without a README are skipped; the output file is
fully regenerated on every run.`,
		Example: `  portfolio generate
  portfolio generate --project-dir ./docs/project --output ./docs/PORTFOLIO.md
  portfolio generate --manifest ./portfolio.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if projectDir == "" {
				projectDir = app.ProjectDir()
			}
			if outputFile == "" {
				outputFile = app.OutputFile()
			}
			if manifestFile == "" {
				manifestFile = app.ManifestFile()
			}

			m, err := manifest.Load(manifestFile)
			if err != nil {
				return err
			}

			gen := portfolio.New(
				portfolio.WithProjectDir(projectDir),
				portfolio.WithOutputFile(outputFile),
				portfolio.WithManifest(m),
			)

			ctx := logging.WithLogger(cmd.Context(), app.Logger())
			result, err := gen.Generate(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !result.Written {
				fmt.Fprintln(out, "No project README files found!")
				return nil
			}

			fmt.Fprintf(out, "Portfolio generated: %s\n", result.OutputFile)
			fmt.Fprintf(out, "Total projects: %d\n", result.Projects)
			fmt.Fprintf(out, "Total size: %s characters\n", thousands(result.Characters))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectDir, "project-dir", "", "directory scanned for project subdirectories")
	cmd.Flags().StringVar(&outputFile, "output", "", "path the assembled document is written to")
	cmd.Flags().StringVar(&manifestFile, "manifest", "", "document header manifest file")

	return cmd
}

// thousands formats n with comma separators, e.g. 1234567 -> "1,234,567".
func thousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
