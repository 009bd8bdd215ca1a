package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-authform/pkg/model"
)

var usersFormat string

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List registered users",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		users, err := app.Service().Users(cmd.Context())
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		return writeUsers(cmd.OutOrStdout(), usersFormat, users)
	},
}

func init() {
	usersCmd.Flags().StringVarP(&usersFormat, "format", "f", "table", "output format: table, json, yaml")
}

func writeUsers(w io.Writer, format string, users []model.UserRecord) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(users)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(users)
	case "table", "":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "USERNAME\tNAME\tEMAIL\tCREATED")
		for _, u := range users {
			fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\n", u.Username, u.FirstName, u.LastName, u.Email, u.CreatedAt.Format(time.RFC3339))
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
