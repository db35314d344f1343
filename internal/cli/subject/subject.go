// Package subject holds all cli commands related to the subject registry
//
// e.g., syllabus subject ...
package subject

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/syllabus/internal/cli/styles"
	"github.com/thenoetrevino/syllabus/internal/models"
	"github.com/thenoetrevino/syllabus/internal/types"
)

// SubjectCmd returns the subject parent command
func SubjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subject",
		Short: "Manage the subject registry",
		Long: `Subjects are the courses boards can place. A subject may require other
subjects; prerequisites must be registered and may not form a cycle.`,
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(ImportCmd())
	cmd.AddCommand(RequireCmd())

	return cmd
}

func toSubjectIDs(refs []string) []types.SubjectID {
	ids := make([]types.SubjectID, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, types.SubjectID(ref))
	}
	return ids
}

func printSubject(s *models.Subject) {
	fmt.Println(styles.RenderSubject(s))
}
