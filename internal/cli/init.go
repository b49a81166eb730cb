package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration and data directories",
		Long:  "Create the configuration and data directories and write a default config.yaml when none exists.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd)
		},
	}
}

func (a *app) runInit(cmd *cobra.Command) error {
	if err := os.MkdirAll(a.configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}
	if err := os.MkdirAll(a.dataDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create data directory: %w", err))
	}

	cfg := a.cfg
	cfg.DataDir = ""
	if a.flags.dataDir != "" {
		cfg.DataDir = a.dataDir
	}
	written, err := writeConfigIfMissing(a.configDir, cfg)
	if err != nil {
		return sysError(err)
	}

	out := cmd.OutOrStdout()
	if written {
		fmt.Fprintf(out, "wrote %s/%s\n", a.configDir, configFileExt)
	} else {
		fmt.Fprintf(out, "kept existing %s/%s\n", a.configDir, configFileExt)
	}
	fmt.Fprintln(out, "cowbox initialized successfully")
	return nil
}
