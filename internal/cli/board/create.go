package board

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/syllabus/internal/cli"
	boardservice "github.com/thenoetrevino/syllabus/internal/services/board"
)

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new board",
		Long: `Create a new board with empty semesters.

Examples:
  # Board with the configured number of semesters
  syllabus board create --name="Computer Science"

  # Four semesters, tagged with a type
  syllabus board create --name="Minor in Math" --type=minor --semesters=4

  # Quiet mode for bash capture
  BOARD_ID=$(syllabus board create --name="Computer Science" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("name", "", "Board name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("type", "", "Board category, e.g. core or elective")
	cmd.Flags().Int("semesters", 0, "Number of semesters (default from config)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	name, _ := cmd.Flags().GetString("name")
	boardType, _ := cmd.Flags().GetString("type")

	req := boardservice.CreateBoardRequest{Name: name, Type: boardType}
	if cmd.Flags().Changed("semesters") {
		semesters, _ := cmd.Flags().GetInt("semesters")
		req.Semesters = &semesters
	}

	formatter := cli.FormatterFromFlags(cmd)

	cliInstance, err := cli.Open(ctx, formatter)
	if err != nil {
		return err
	}
	defer cli.CloseQuietly(cliInstance)

	b, err := cliInstance.App.BoardService.CreateBoard(ctx, req)
	if err != nil {
		return cli.Fail(formatter, err)
	}

	if formatter.Quiet {
		fmt.Println(b.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.Success(b)
	}

	fmt.Printf("✓ Board '%s' created successfully (ID: %s)\n", b.Name, b.ID)
	fmt.Printf("  %d semesters\n", len(b.ColumnOrder))
	return nil
}
