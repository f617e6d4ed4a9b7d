package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"estoque/cmd/estoque/cmd/types"
	"estoque/cmd/estoque/cmd/ui"
)

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Показать текущего пользователя",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := types.AppFrom(cmd.Context())
			if err != nil {
				return err
			}

			email, ok, err := a.Users.CurrentUser(cmd.Context())
			if err != nil {
				return ui.NewNotice(a.Localizer.Message(err), err)
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), a.Localizer.T("whoami.none"))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), a.Localizer.TData("whoami.current", map[string]any{"Email": email}))
			return nil
		},
	}
}
