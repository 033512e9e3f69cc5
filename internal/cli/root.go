// Package cli wires the fakeftp command tree.
package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Ning0612/FakeFTP/internal/checksum"
	"github.com/Ning0612/FakeFTP/internal/config"
	"github.com/Ning0612/FakeFTP/internal/domain"
	"github.com/Ning0612/FakeFTP/internal/fixture"
	"github.com/Ning0612/FakeFTP/internal/listing"
	"github.com/Ning0612/FakeFTP/internal/logger"
)

type app struct {
	fs         afero.Fs
	configPath string
	logLevel   string
	logFormat  string

	table     *fixture.Table
	responder *listing.Responder
}

// NewRootCommand builds the command tree; fixture files are read from fs
func NewRootCommand(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs}

	root := &cobra.Command{
		Use:           "fakeftp",
		Short:         "Inspect the fixtures a mock FTP server would report",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Shutdown()
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "fixture file (default: search for fixtures.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "override log format (text, json)")

	root.AddCommand(
		a.listCommand(),
		a.nameListCommand(),
		a.sizeCommand(),
		a.modTimeCommand(),
		a.hashCommand(),
		a.modesCommand(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadFs(a.fs, a.configPath)
	if err != nil {
		return fmt.Errorf("load fixtures: %w", err)
	}

	lc := cfg.Log.Logger()
	if a.logLevel != "" {
		lc.Level = logger.ParseLevel(a.logLevel)
	}
	if a.logFormat != "" {
		lc.Format = logger.ParseFormat(a.logFormat)
	}
	lc.Writer = cmd.ErrOrStderr()
	// PersistentPostRunE is skipped when RunE fails, so a logger may still be live
	logger.Shutdown()
	if err := logger.Init(lc); err != nil {
		return err
	}

	a.table = fixture.NewTable(cfg.Files()...)
	a.responder = listing.NewResponder(a.table)
	logger.With("component", "cli").Debug("fixtures loaded", "count", a.table.Len(), "command", cmd.Name())
	return nil
}

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ls [dir]",
		Short: "Print LIST lines for a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), a.responder.List(firstArg(args)))
			return err
		},
	}
}

func (a *app) nameListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "nlst [dir]",
		Short: "Print NLST names for a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), a.responder.NameList(firstArg(args)))
			return err
		},
	}
}

func (a *app) sizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "size <name>",
		Short: "Print the SIZE reply for a fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.responder.Size(args[0]))
			return err
		},
	}
}

func (a *app) modTimeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mdtm <name>",
		Short: "Print the MDTM reply for a fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.responder.ModTime(args[0]))
			return err
		},
	}
}

func (a *app) hashCommand() *cobra.Command {
	var algo string
	cmd := &cobra.Command{
		Use:   "hash <name>",
		Short: "Print the HASH reply for a fixture payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := checksum.ParseAlgorithm(algo)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.responder.Hash(cmd.Context(), args[0], alg))
			return err
		},
	}
	cmd.Flags().StringVar(&algo, "algo", string(checksum.SHA256), "hash algorithm (MD5, SHA-1, SHA-256)")
	return cmd
}

func (a *app) modesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "Count fixtures staged per data-connection mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, m := range []domain.TransferMode{domain.ModeActive, domain.ModePassive} {
				if _, err := fmt.Fprintf(out, "%s\t%d\n", m, len(a.table.ByMode(m))); err != nil {
					return err
				}
			}
			_, err := fmt.Fprintf(out, "unset\t%d\n", len(a.table.ByMode(domain.ModeUnset)))
			return err
		},
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
