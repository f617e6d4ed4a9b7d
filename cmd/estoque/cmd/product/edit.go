package product

import (
	"github.com/spf13/cobra"

	"estoque/cmd/estoque/cmd/ui"
	"estoque/internal/domain/product"
	"estoque/internal/i18n"
)

func newEditCmd() *cobra.Command {
	var f draftFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Изменить продукт",
		Long: `Изменяет продукт, сохраняя его место в списке.

С флагами меняются только указанные поля. Без флагов каждое поле
запрашивается с текущим значением по умолчанию.`,
		Args: cobra.ExactArgs(1),
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

			existing, err := a.Products.Get(cmd.Context(), sess, id)
			if err != nil {
				return ui.NewNotice(t.Failure(i18n.ActionSaveProduct, err), err)
			}

			if !anyChanged(cmd) {
				ui.Info(cmd.OutOrStdout(), "=== "+t.T("screen.edit_product")+" ===")
			}
			d, err := f.collect(cmd, a, product.DraftOf(existing))
			if err != nil {
				return err
			}

			if _, err := a.Products.Update(cmd.Context(), sess, id, d); err != nil {
				return ui.NewNotice(t.Failure(i18n.ActionSaveProduct, err), err)
			}

			ui.Success(cmd.OutOrStdout(), t.T("success.product_saved"))
			return nil
		},
	}

	f.register(cmd)
	return cmd
}
