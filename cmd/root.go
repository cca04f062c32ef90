package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/bookwise/bookwise_backend/cmd/http"
	systemcmd "github.com/bookwise/bookwise_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "bookwise",
	Short: "Bookwise appointment booking backend.",
	Long: `Bookwise is an appointment booking backend. It manages providers,
their service catalog and weekly availability, and lets users book
appointments against derived time slots, with email notifications and
scheduled reminder jobs.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
