// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli contains the commands of the class-reports admin client.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-class-reports/internal/adapter"
	"github.com/MKhiriev/go-class-reports/internal/config"
	"github.com/MKhiriev/go-class-reports/internal/logger"
	"github.com/MKhiriev/go-class-reports/models"
)

type rootOptions struct {
	configPath string
	address    string
	token      string
	output     string
	verbose    bool
}

type sessionKey struct{}

// session is built once per invocation by the root PersistentPreRunE.
type session struct {
	adapter adapter.ServerAdapter
	printer *printer
	logger  *logger.Logger
}

// NewRootCmd creates the root command of the admin CLI.
func NewRootCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "class-reports-admin",
		Short:         "Administer classes, class roles and report entities",
		Version:       buildInfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadSession(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to a JSON or YAML configuration file")
	flags.StringVarP(&opts.address, "address", "a", "", "Server base URL (overrides CLIENT_ADDRESS)")
	flags.StringVarP(&opts.token, "token", "t", "", "Auth token from \"login\" (overrides CLIENT_TOKEN)")
	flags.StringVarP(&opts.output, "output", "o", formatTable, "Output format (table, json, yaml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Print debug logs to stderr")

	registerAuthCmds(rootCmd)
	registerClassesCmd(rootCmd)
	registerClassRolesCmd(rootCmd)
	registerReportEntitiesCmd(rootCmd)
	registerVersionCmd(rootCmd, buildInfo)

	return rootCmd
}

// loadSession resolves the client configuration and stores the session in
// the command context. Flags set on the command line override env, file
// and defaults.
func loadSession(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.GetClientConfig(opts.configPath)
	if err != nil && !errors.Is(err, config.ErrInvalidClientConfigs) {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("address") {
		cfg.Client.Address = opts.address
	}
	if flags.Changed("token") {
		cfg.Client.Token = opts.token
	}

	p, err := newPrinter(cmd.OutOrStdout(), opts.output)
	if err != nil {
		return err
	}

	log := logger.NewConsoleLogger("class-reports-admin", opts.verbose)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Client, log)
	if err != nil {
		return err
	}
	serverAdapter.SetToken(cfg.Client.Token)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, sessionKey{}, &session{
		adapter: serverAdapter,
		printer: p,
		logger:  log,
	}))

	return nil
}

func sessionFromCommand(cmd *cobra.Command) (*session, error) {
	if cmd.Context() == nil {
		return nil, errors.New("client session not loaded")
	}
	s, ok := cmd.Context().Value(sessionKey{}).(*session)
	if !ok {
		return nil, errors.New("client session not loaded")
	}
	return s, nil
}

// fieldsFromFlags copies the flags that were set on the command line into
// a request body, keyed by field name. Unset flags are omitted so the
// server reports them as not defined.
func fieldsFromFlags(cmd *cobra.Command, flagToField map[string]string) adapter.Fields {
	fields := adapter.Fields{}
	for flagName, field := range flagToField {
		flag := cmd.Flags().Lookup(flagName)
		if flag != nil && flag.Changed {
			fields[field] = flag.Value.String()
		}
	}
	return fields
}
