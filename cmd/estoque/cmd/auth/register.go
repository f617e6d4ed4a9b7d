package auth

import (
	"github.com/spf13/cobra"

	"estoque/cmd/estoque/cmd/types"
	"estoque/cmd/estoque/cmd/ui"
	"estoque/internal/i18n"
)

func newRegisterCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Зарегистрировать нового пользователя",
		Long: `Регистрация нового пользователя в локальном хранилище.

Пароль вводится дважды и должен совпадать.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := types.AppFrom(cmd.Context())
			if err != nil {
				return err
			}
			t := a.Localizer
			p := ui.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

			ui.Info(cmd.OutOrStdout(), "=== "+t.T("screen.signup")+" ===")

			if email == "" {
				if email, err = p.Line(t.T("field.email"), ""); err != nil {
					return err
				}
			}
			password, err := p.Secret(t.T("field.password"))
			if err != nil {
				return err
			}
			confirm, err := p.Secret(t.T("field.confirm_password"))
			if err != nil {
				return err
			}

			if err := a.Users.SignUp(cmd.Context(), email, password, confirm); err != nil {
				return ui.NewNotice(t.Failure(i18n.ActionRegister, err), err)
			}

			ui.Success(cmd.OutOrStdout(), t.T("success.register"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "e-mail пользователя")
	return cmd
}
