package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-class-reports/internal/validators"
)

func registerClassRolesCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "class-roles",
		Short: "Manage class roles",
	}

	create := &cobra.Command{
		Use:     "create",
		Short:   "Create a class role (employees only)",
		Example: `  class-reports-admin class-roles create --name Instructor --payment-per-hour 25.5`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := sessionFromCommand(cmd)
			if err != nil {
				return err
			}

			id, err := s.adapter.CreateClassRole(cmd.Context(), fieldsFromFlags(cmd, map[string]string{
				"name":             validators.FieldName,
				"payment-per-hour": validators.FieldPaymentPerHour,
			}))
			if err != nil {
				return err
			}

			return s.printer.print(map[string]int64{"classRoleId": id}, func(w io.Writer) {
				_, _ = fmt.Fprintf(w, "Class role created with ID %d\n", id)
			})
		},
	}
	create.Flags().String("name", "", "Role name")
	create.Flags().String("payment-per-hour", "", "Hourly payment, zero or positive")

	cmd.AddCommand(create)
	parent.AddCommand(cmd)
}

func registerReportEntitiesCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "report-entities",
		Short: "Manage report entities",
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Record hours spent in a class",
		Example: `  class-reports-admin report-entities create --class-id 3 --class-role-id 4 \
    --date 2026-03-01 --hours-spend 1.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := sessionFromCommand(cmd)
			if err != nil {
				return err
			}

			id, err := s.adapter.CreateReportEntity(cmd.Context(), fieldsFromFlags(cmd, map[string]string{
				"report-id":     validators.FieldReportID,
				"class-id":      validators.FieldClassID,
				"class-role-id": validators.FieldClassRoleID,
				"date":          validators.FieldDate,
				"hours-spend":   validators.FieldHoursSpend,
			}))
			if err != nil {
				return err
			}

			return s.printer.print(map[string]int64{"reportEntityId": id}, func(w io.Writer) {
				_, _ = fmt.Fprintf(w, "Report entity created with ID %d\n", id)
			})
		},
	}
	flags := create.Flags()
	flags.String("report-id", "", "Optional report ID")
	flags.String("class-id", "", "Class ID")
	flags.String("class-role-id", "", "Class role ID")
	flags.String("date", "", "Date of the lesson")
	flags.String("hours-spend", "", "Hours spent, e.g. 1.5")

	cmd.AddCommand(create)
	parent.AddCommand(cmd)
}
