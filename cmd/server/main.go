// @title           PropertyOps HTTP Service API
// @version         1.0
// @description     Tenants, units, maintenance requests and rent payments.

// @host      localhost:3000
// @BasePath  /api
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "propertyops",
		Short:         "PropertyOps HTTP service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			envFile, _ := cmd.Flags().GetString("env-file")
			if err := godotenv.Load(envFile); err != nil && cmd.Flags().Changed("env-file") {
				return fmt.Errorf("load %s: %w", envFile, err)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().String("env-file", ".env", "dotenv file to load before reading the environment")

	rootCmd.AddCommand(
		ServeCmd(),
		MigrateCmd(),
		SeedCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
