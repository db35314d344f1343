package board

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/syllabus/internal/cli"
	"github.com/thenoetrevino/syllabus/internal/curriculum"
	"github.com/thenoetrevino/syllabus/internal/models"
)

// ExportFile is a board together with the subjects placed on it
type ExportFile struct {
	Board    *models.Board    `json:"board" yaml:"board"`
	Subjects []models.Subject `json:"subjects" yaml:"subjects"`
}

// ExportCmd returns the board export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <board>",
		Short: "Export a board as YAML or JSON",
		Long: `Write a board snapshot and the subjects placed on it.

The subjects section has the layout accepted by 'syllabus subject import'.

Examples:
  syllabus board export "Computer Science" > cs.yaml
  syllabus board export "Computer Science" --format=json --output=cs.json
`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}

	cmd.Flags().String("format", "yaml", "Output format: yaml or json")
	cmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	format, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")
	formatter := &cli.OutputFormatter{}

	format = strings.ToLower(format)
	if format != "yaml" && format != "json" {
		return cli.Usagef(formatter, "Use --format=yaml or --format=json", "unknown export format %q", format)
	}

	cliInstance, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	boardID, err := cli.ResolveBoard(ctx, cliInstance.App.BoardService, args[0])
	if err != nil {
		return cli.Fail(formatter, err)
	}
	overview, err := cliInstance.App.BoardService.Overview(ctx, boardID)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	export := ExportFile{Board: overview.Board, Subjects: []models.Subject{}}
	for _, id := range curriculum.Placed(overview.Board) {
		if s, ok := overview.Registry.Get(id); ok {
			export.Subjects = append(export.Subjects, s)
		}
	}

	var out io.Writer = os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return cli.Fail(formatter, fmt.Errorf("failed to create %s: %w", outputPath, err))
		}
		defer f.Close()
		out = f
	}

	if err := encodeExport(out, format, export); err != nil {
		return cli.Fail(formatter, err)
	}
	if outputPath != "" {
		fmt.Fprintf(os.Stderr, "✓ Board '%s' exported to %s\n", overview.Board.Name, outputPath)
	}
	return nil
}

func encodeExport(w io.Writer, format string, export ExportFile) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(export)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(export); err != nil {
		return fmt.Errorf("failed to encode board: %w", err)
	}
	return enc.Close()
}
