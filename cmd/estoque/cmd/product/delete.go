package product

import (
	"github.com/spf13/cobra"

	"estoque/cmd/estoque/cmd/ui"
	"estoque/internal/i18n"
)

func newDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Удалить продукт",
		Long:    `Удаляет продукт из списка. Несуществующий id не считается ошибкой.`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, sess, err := current(cmd.Context())
			if err != nil {
				return err
			}
			t := a.Localizer

			if !yes {
				ui.Info(cmd.OutOrStdout(), t.T("delete.title"))
				ok, err := ui.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()).Confirm(t.T("delete.confirm"))
				if err != nil {
					return err
				}
				if !ok {
					ui.Info(cmd.OutOrStdout(), t.T("delete.cancelled"))
					return nil
				}
			}

			if err := a.Products.Remove(cmd.Context(), sess, id); err != nil {
				return ui.NewNotice(t.Failure(i18n.ActionDeleteProduct, err), err)
			}

			ui.Success(cmd.OutOrStdout(), t.T("success.product_deleted"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "не спрашивать подтверждение")
	return cmd
}
