package product

import (
	"github.com/spf13/cobra"

	"estoque/cmd/estoque/cmd/ui"
	"estoque/internal/domain/product"
)

func newGetCmd() *cobra.Command {
	var outFormat string

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Показать продукт",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, sess, err := current(cmd.Context())
			if err != nil {
				return err
			}

			p, err := a.Products.Get(cmd.Context(), sess, id)
			if err != nil {
				return ui.NewNotice(a.Localizer.Message(err), err)
			}
			return render(cmd.OutOrStdout(), a.Localizer, product.List{p}, outFormat)
		},
	}

	cmd.Flags().StringVarP(&outFormat, "format", "f", formatSimple, "формат вывода (simple, table, json)")
	return cmd
}
