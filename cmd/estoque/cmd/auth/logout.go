package auth

import (
	"github.com/spf13/cobra"

	"estoque/cmd/estoque/cmd/types"
	"estoque/cmd/estoque/cmd/ui"
)

func newLogoutCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Выйти",
		Long: `Завершает работу с текущим пользователем.

Сохранённый текущий пользователь не удаляется: его заменит следующий
успешный вход.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := types.AppFrom(cmd.Context())
			if err != nil {
				return err
			}
			t := a.Localizer

			if !yes {
				ui.Info(cmd.OutOrStdout(), t.T("logout.title"))
				ok, err := ui.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()).Confirm(t.T("logout.message"))
				if err != nil || !ok {
					return err
				}
			}

			ui.Success(cmd.OutOrStdout(), t.T("logout.done"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "не спрашивать подтверждение")
	return cmd
}
