package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"suggestbox/internal/logger"
	"suggestbox/internal/suggest"
)

func newQueryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <text>...",
		Short: "Print suggestions for a query and exit",
		Long: `Send one request to the suggestion service and print the suggestions,
one per line. The arguments are joined with spaces.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runQuery,
	}
	cmd.Flags().Bool("json", false, "print the suggestions as a JSON array")
	return cmd
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	lg, err := logger.NewFile(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() {
		_ = lg.Close()
	}()

	query := strings.Join(args, " ")
	client := suggest.NewClient(cfg.Endpoint, cfg.HTTPTimeout, lg.Logger)

	resp, err := client.Fetch(cmd.Context(), client.URL(query))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		return enc.Encode(resp.Suggestions)
	}
	for _, s := range resp.Suggestions {
		fmt.Fprintln(out, s)
	}
	return nil
}
