package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"suggestbox/internal/config"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or create the configuration",
		Long: `View or create the suggestbox configuration.

Without arguments, displays the effective configuration: defaults merged with
the config file, SUGGESTBOX_* environment variables and flags.`,
		RunE: runConfigShow,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE:  runConfigShow,
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default config file",
		RunE:  runConfigInit,
	}
	initCmd.Flags().BoolP("force", "f", false, "overwrite an existing file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Show the config file path",
		RunE:  runConfigPath,
	}

	cmd.AddCommand(showCmd, initCmd, pathCmd)
	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath(cmd)
	force, _ := cmd.Flags().GetBool("force")

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	if err := config.SaveToPath(config.DefaultConfig(), path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", path)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), configPath(cmd))
	return nil
}

func configPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	return config.ConfigFile()
}
