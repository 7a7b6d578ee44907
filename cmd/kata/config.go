package main

import (
	"fmt"

	"github.com/katalvlaran/kata/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration as YAML",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				data, err := yaml.Marshal(a.cfg)
				if err != nil {
					return fmt.Errorf("failed to encode config: %w", err)
				}
				out := cmd.OutOrStdout()
				if used := a.viper.ConfigFileUsed(); used != "" {
					fmt.Fprintf(out, "# file: %s\n", used)
				}
				_, err = out.Write(data)

				return err
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write a default config file unless one exists",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				path := a.configPath()
				created, err := config.WriteDefault(path)
				if err != nil {
					return err
				}
				if created {
					a.log.Info("config written", "path", path)
					fmt.Fprintln(cmd.OutOrStdout(), path)
				} else {
					a.log.Warn("config exists, left untouched", "path", path)
				}

				return nil
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), a.configPath())

				return err
			},
		},
	)

	return cmd
}

// configPath is --config when given, the XDG location otherwise.
func (a *app) configPath() string {
	if a.cfgFile != "" {
		return a.cfgFile
	}

	return config.DefaultPath()
}
