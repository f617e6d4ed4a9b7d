package product

import (
	"github.com/spf13/cobra"

	"estoque/cmd/estoque/cmd/ui"
)

func newListCmd() *cobra.Command {
	var outFormat string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Список продуктов",
		Long:  `Продукты текущего пользователя в порядке добавления.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, sess, err := current(cmd.Context())
			if err != nil {
				return err
			}

			list, err := a.Products.List(cmd.Context(), sess)
			if err != nil {
				return ui.NewNotice(a.Localizer.Message(err), err)
			}
			return render(cmd.OutOrStdout(), a.Localizer, list, outFormat)
		},
	}

	cmd.Flags().StringVarP(&outFormat, "format", "f", formatSimple, "формат вывода (simple, table, json)")
	return cmd
}
