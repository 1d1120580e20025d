package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-class-reports/internal/utils"
	"github.com/MKhiriev/go-class-reports/internal/validators"
)

type loginResult struct {
	UserID    int64     `json:"userId" yaml:"userId"`
	RoleID    int64     `json:"roleId" yaml:"roleId"`
	ExpiresAt time.Time `json:"expiresAt" yaml:"expiresAt"`
	Token     string    `json:"token" yaml:"token"`
}

func registerAuthCmds(parent *cobra.Command) {
	parent.AddCommand(newRegisterCmd(), newLoginCmd())
}

func newRegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new user",
		Example: `  class-reports-admin register --username alice --email alice@example.com \
    --password secret123 --first-name Alice --last-name Smith --role-id 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := sessionFromCommand(cmd)
			if err != nil {
				return err
			}

			fields := fieldsFromFlags(cmd, map[string]string{
				"username":   validators.FieldUsername,
				"email":      validators.FieldEmail,
				"password":   validators.FieldPassword,
				"first-name": validators.FieldFirstName,
				"last-name":  validators.FieldLastName,
				"role-id":    validators.FieldRoleID,
			})

			id, err := s.adapter.Register(cmd.Context(), fields)
			if err != nil {
				return err
			}

			return s.printer.print(map[string]int64{"userId": id}, func(w io.Writer) {
				_, _ = fmt.Fprintf(w, "User registered with ID %d\n", id)
			})
		},
	}

	flags := cmd.Flags()
	flags.String("username", "", "Login of the new user")
	flags.String("email", "", "E-mail of the new user")
	flags.String("password", "", "Password of the new user")
	flags.String("first-name", "", "First name")
	flags.String("last-name", "", "Last name")
	flags.String("role-id", "", "Role ID")

	return cmd
}

func newLoginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print the auth token",
		Long: `Log in and print the auth token. Pass it to other commands with --token
or export it as CLIENT_TOKEN.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := sessionFromCommand(cmd)
			if err != nil {
				return err
			}

			userID, err := s.adapter.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}

			result := loginResult{UserID: userID, Token: s.adapter.Token()}
			claims, err := utils.ParseClaimsUnverified(result.Token)
			if err != nil {
				s.logger.Warn().Err(err).Msg("token claims are not readable")
			} else {
				result.RoleID = claims.RoleID
				if claims.ExpiresAt != nil {
					result.ExpiresAt = claims.ExpiresAt.UTC()
				}
			}

			return s.printer.print(result, func(w io.Writer) {
				_, _ = fmt.Fprintln(w, "USER ID\tROLE ID\tEXPIRES AT")
				_, _ = fmt.Fprintf(w, "%d\t%d\t%s\n", result.UserID, result.RoleID, formatTime(result.ExpiresAt))
				_, _ = fmt.Fprintf(w, "\nexport CLIENT_TOKEN=%s\n", result.Token)
			})
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Login")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password")

	return cmd
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(time.RFC3339)
}
