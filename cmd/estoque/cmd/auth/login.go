package auth

import (
	"github.com/spf13/cobra"

	"estoque/cmd/estoque/cmd/types"
	"estoque/cmd/estoque/cmd/ui"
	"estoque/internal/i18n"
)

func newLoginCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Войти в систему",
		Long: `Проверка e-mail и пароля.

После входа e-mail сохраняется как текущий пользователь; команды product
работают с его списком продуктов.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := types.AppFrom(cmd.Context())
			if err != nil {
				return err
			}
			t := a.Localizer
			p := ui.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

			ui.Info(cmd.OutOrStdout(), "=== "+t.T("screen.login")+" ===")

			if email == "" {
				if email, err = p.Line(t.T("field.email"), ""); err != nil {
					return err
				}
			}
			password, err := p.Secret(t.T("field.password"))
			if err != nil {
				return err
			}

			if _, err := a.Users.Login(cmd.Context(), email, password); err != nil {
				return ui.NewNotice(t.Failure(i18n.ActionLogin, err), err)
			}

			ui.Success(cmd.OutOrStdout(), t.T("success.login"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "e-mail пользователя")
	return cmd
}
