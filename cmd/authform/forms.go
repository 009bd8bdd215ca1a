package main

import (
	"fmt"

	"github.com/spf13/cobra"

	authform "github.com/goliatone/go-authform"
	"github.com/goliatone/go-authform/pkg/form"
	"github.com/goliatone/go-authform/pkg/model"
	"github.com/goliatone/go-authform/pkg/renderers/tui"
)

var maxAttempts int

var signUpCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register a new user interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runForm(cmd, func(app *authform.App) *form.Controller { return app.SignUpForm() })
	},
}

var signInCmd = &cobra.Command{
	Use:   "signin",
	Short: "Sign in with a registered username",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runForm(cmd, func(app *authform.App) *form.Controller { return app.SignInForm() })
	},
}

func init() {
	for _, c := range []*cobra.Command{signUpCmd, signInCmd} {
		c.Flags().IntVar(&maxAttempts, "max-attempts", 0, "give up after this many blocked submits (0 = unlimited)")
	}
}

func runForm(cmd *cobra.Command, build func(*authform.App) *form.Controller) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	renderer, err := tui.New(
		tui.WithPromptDriver(tui.NewSurveyDriver(cmd.OutOrStdout())),
		tui.WithMaxAttempts(maxAttempts),
	)
	if err != nil {
		return err
	}

	ctrl := build(app)
	result, err := renderer.Run(ctx, ctrl)
	logCounts(app)
	if err != nil {
		return err
	}

	username := result.Snapshot.Value(model.FieldUsername)
	switch ctrl.Name() {
	case form.FormSignUp:
		fmt.Fprintf(cmd.OutOrStdout(), "Registered %s.\n", username)
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "Welcome back, %s.\n", username)
	}
	return nil
}

func logCounts(app *authform.App) {
	counts, err := app.SubmitCounts()
	if err != nil {
		return
	}
	attrs := make([]any, 0, len(counts)*2)
	for key, value := range counts {
		attrs = append(attrs, key, value)
	}
	app.Logger().Debug("submit outcomes", attrs...)
}
