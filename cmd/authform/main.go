// Package main provides the authform CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	authform "github.com/goliatone/go-authform"
)

var (
	configFile string
	storeFlag  string
	pathFlag   string
	presetFlag string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "authform",
	Short: "authform - interactive sign-up and sign-in forms",
	Long: `authform validates registration and sign-in input field by field,
shows live password strength, and stores registered users in a YAML/JSON
file (authform-users.yaml by default), SQLite, or memory. Users registered
with the memory driver are gone when the command exits.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "authform %s\n", authform.Version)
		fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", authform.Commit)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "authform.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", "", "store driver: memory, sqlite, file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&pathFlag, "store-path", "", "store path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&presetFlag, "preset", "", "password rule preset: standard, extended (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(versionCmd, signUpCmd, signInCmd, usersCmd, schemaCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
