package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-class-reports/internal/validators"
	"github.com/MKhiriev/go-class-reports/models"
)

type classList struct {
	Classes []models.Class `json:"classes" yaml:"classes"`
	Count   int            `json:"count" yaml:"count"`
}

func registerClassesCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "classes",
		Short: "Manage classes",
	}

	cmd.AddCommand(
		newClassesCreateCmd(),
		newClassesListCmd(),
		newClassesGetCmd(),
		newClassesArchiveCmd(),
	)

	parent.AddCommand(cmd)
}

func newClassesCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Create a class (employees only)",
		Example: `  class-reports-admin classes create --name "Piano beginners" --age-group 7-9`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := sessionFromCommand(cmd)
			if err != nil {
				return err
			}

			id, err := s.adapter.CreateClass(cmd.Context(), fieldsFromFlags(cmd, map[string]string{
				"name":        validators.FieldName,
				"age-group":   validators.FieldAgeGroup,
				"description": validators.FieldDescription,
			}))
			if err != nil {
				return err
			}

			return s.printer.print(map[string]int64{"classId": id}, func(w io.Writer) {
				_, _ = fmt.Fprintf(w, "Class created with ID %d\n", id)
			})
		},
	}

	cmd.Flags().String("name", "", "Class name")
	cmd.Flags().String("age-group", "", "Target age group, e.g. 7-9")
	cmd.Flags().String("description", "", "Optional description")

	return cmd
}

func newClassesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List active classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := sessionFromCommand(cmd)
			if err != nil {
				return err
			}

			classes, count, err := s.adapter.ListClasses(cmd.Context())
			if err != nil {
				return err
			}

			return s.printer.print(classList{Classes: classes, Count: count}, func(w io.Writer) {
				printClassesTable(w, classes)
				_, _ = fmt.Fprintf(w, "\nTotal: %d\n", count)
			})
		},
	}
}

func newClassesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sessionFromCommand(cmd)
			if err != nil {
				return err
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			class, err := s.adapter.GetClass(cmd.Context(), id)
			if err != nil {
				return err
			}

			return s.printer.print(class, func(w io.Writer) {
				printClassesTable(w, []models.Class{class})
			})
		},
	}
}

func newClassesArchiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive ID",
		Short: "Archive a class (employees only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sessionFromCommand(cmd)
			if err != nil {
				return err
			}

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err = s.adapter.ArchiveClass(cmd.Context(), id); err != nil {
				return err
			}

			return s.printer.print(map[string]int64{"classId": id}, func(w io.Writer) {
				_, _ = fmt.Fprintf(w, "Class %d archived\n", id)
			})
		},
	}
}

func printClassesTable(w io.Writer, classes []models.Class) {
	_, _ = fmt.Fprintln(w, "ID\tNAME\tAGE GROUP\tDESCRIPTION\tARCHIVED")
	for _, c := range classes {
		description := c.Description
		if description == "" {
			description = "-"
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", c.ID, c.Name, c.AgeGroup, description, c.IsArchived)
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", raw)
	}
	return id, nil
}
