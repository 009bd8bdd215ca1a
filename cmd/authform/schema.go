package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-authform/pkg/openapi"
)

var (
	schemaFormat   string
	schemaValidate string
	schemaSignIn   bool
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the OpenAPI contract or validate a payload against it",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		rules := cfg.RuleSet()

		if schemaValidate != "" {
			payload, err := os.ReadFile(schemaValidate)
			if err != nil {
				return fmt.Errorf("read payload: %w", err)
			}
			if schemaSignIn {
				err = openapi.ValidateSignIn(payload)
			} else {
				err = openapi.ValidateSignUp(rules, payload)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "payload is valid")
			return nil
		}

		data, err := openapi.Marshal(openapi.Document(rules), schemaFormat)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	schemaCmd.Flags().StringVarP(&schemaFormat, "format", "f", "json", "output format: json, yaml")
	schemaCmd.Flags().StringVar(&schemaValidate, "validate", "", "validate the JSON payload in this file instead of printing")
	schemaCmd.Flags().BoolVar(&schemaSignIn, "signin", false, "validate against the sign-in payload")
}
