package client

import (
	"fmt"

	"github.com/MKhiriev/go-omnisearch/internal/app"
	"github.com/spf13/cobra"
)

func (a *App) newHelloCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hello",
		Short: "Check that the API is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.session.services.OmniSearch.Hello(cmd.Context())
			return a.finish(cmd, app.MsgErrorCallingHello, result, err)
		},
	}
}

func (a *App) newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-languages",
		Short: "List the languages supported by the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.session.services.OmniSearch.Languages(cmd.Context())
			return a.finish(cmd, app.MsgErrorCallingLanguages, result, err)
		},
	}
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(a.stdout, a.info.String())
			return err
		},
	}
}
