package subject

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/syllabus/internal/cli"
)

// ImportCmd returns the subject import subcommand
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Import subjects from a YAML file",
		Long: `Create or replace subjects from a YAML document. The import is applied as
a whole: one invalid subject, unknown prerequisite or cycle rejects it.

File layout:
  subjects:
    - id: CS101
      name: Programming I
      credits: 6
      hours: 96
    - id: CS201
      name: Data Structures
      credits: 6
      prerequisites: [CS101]

Use "-" to read from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromFlags(cmd)

	var in io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return cli.Fail(formatter, fmt.Errorf("failed to open %s: %w", args[0], err))
		}
		defer f.Close()
		in = f
	}

	cliInstance, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	count, err := cliInstance.App.SubjectService.ImportSubjects(ctx, in)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		fmt.Println(count)
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]any{"imported": count})
	}
	fmt.Printf("✓ Imported %d subject(s)\n", count)
	return nil
}
