package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ninjasaskeh/vr46/internal/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vr46ctl",
		Short: "VR46 - admin tool for the weighing and inventory API",
		Long: `vr46ctl manages the VR46 database (migrations, demo data, users)
and follows the weighing events published to Kafka.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cli.MigrateCmd())
	rootCmd.AddCommand(cli.SeedCmd())
	rootCmd.AddCommand(cli.UserCmd())
	rootCmd.AddCommand(cli.EventsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
