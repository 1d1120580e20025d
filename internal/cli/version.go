package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-class-reports/models"
)

type versionResult struct {
	Client models.AppBuildInfo  `json:"client" yaml:"client"`
	Server *models.AppBuildInfo `json:"server,omitempty" yaml:"server,omitempty"`
}

func registerVersionCmd(parent *cobra.Command, buildInfo models.AppBuildInfo) {
	parent.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := sessionFromCommand(cmd)
			if err != nil {
				return err
			}

			result := versionResult{Client: buildInfo}
			serverInfo, err := s.adapter.Version(cmd.Context())
			if err != nil {
				s.logger.Warn().Err(err).Msg("server version is unavailable")
			} else {
				result.Server = &serverInfo
			}

			return s.printer.print(result, func(w io.Writer) {
				_, _ = fmt.Fprintln(w, "\tVERSION\tDATE\tCOMMIT")
				printBuildInfoRow(w, "client", &result.Client)
				printBuildInfoRow(w, "server", result.Server)
			})
		},
	})
}

func printBuildInfoRow(w io.Writer, name string, info *models.AppBuildInfo) {
	if info == nil {
		_, _ = fmt.Fprintf(w, "%s\tunavailable\t-\t-\n", name)
		return
	}
	_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, info.Version, info.Date, info.Commit)
}
