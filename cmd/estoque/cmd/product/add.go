package product

import (
	"fmt"

	"github.com/spf13/cobra"

	"estoque/cmd/estoque/cmd/ui"
	"estoque/internal/domain/product"
	"estoque/internal/i18n"
)

func newAddCmd() *cobra.Command {
	var f draftFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Добавить продукт",
		Long: `Добавляет продукт в конец списка текущего пользователя.

Без флагов поля запрашиваются по одному. Цена вводится с маской или без:
"3,50", "R$ 3,50" и "350" дают одно и то же значение.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, sess, err := current(cmd.Context())
			if err != nil {
				return err
			}
			t := a.Localizer

			if !anyChanged(cmd) {
				ui.Info(cmd.OutOrStdout(), "=== "+t.T("screen.add_product")+" ===")
			}
			d, err := f.collect(cmd, a, product.Draft{})
			if err != nil {
				return err
			}

			p, err := a.Products.Add(cmd.Context(), sess, d)
			if err != nil {
				return ui.NewNotice(t.Failure(i18n.ActionSaveProduct, err), err)
			}

			ui.Success(cmd.OutOrStdout(), t.T("success.product_saved"))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", t.T("field.id"), p.ID)
			return nil
		},
	}

	f.register(cmd)
	return cmd
}
