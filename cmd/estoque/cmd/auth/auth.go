package auth

import (
	"github.com/spf13/cobra"
)

// NewCmd - родительская команда для операций с пользователем
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Управление пользователем",
		Long:  `Регистрация, вход, текущий пользователь и выход.`,
	}
	cmd.AddCommand(newRegisterCmd(), newLoginCmd(), newWhoamiCmd(), newLogoutCmd())
	return cmd
}
