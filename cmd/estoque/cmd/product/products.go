package product

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"estoque/cmd/estoque/cmd/types"
	"estoque/cmd/estoque/cmd/ui"
	"estoque/internal/app"
	"estoque/internal/domain/product"
	"estoque/internal/domain/session"
	"estoque/internal/format"
)

// NewCmd - родительская команда для всех операций с продуктами
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "product",
		Aliases: []string{"products"},
		Short:   "Управление продуктами",
		Long:    `Создание, просмотр, изменение и удаление продуктов текущего пользователя.`,
	}
	cmd.AddCommand(newListCmd(), newGetCmd(), newAddCmd(), newEditCmd(), newDeleteCmd())
	return cmd
}

// current returns the app and the logged-in user, or a notice asking to log in.
func current(ctx context.Context) (*app.App, session.Session, error) {
	a, err := types.AppFrom(ctx)
	if err != nil {
		return nil, session.Session{}, err
	}
	sess, err := a.Session(ctx)
	if err != nil {
		return nil, session.Session{}, ui.NewNotice(a.Localizer.Message(err), err)
	}
	return a, sess, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("некорректный id %q: %w", s, err)
	}
	return id, nil
}

// draftFlags - поля продукта из флагов команды
type draftFlags struct {
	name        string
	price       string
	quantity    string
	expiration  string
	description string
}

func (f *draftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "название")
	cmd.Flags().StringVarP(&f.price, "price", "p", "", "цена, например 3,50 или R$ 3,50")
	cmd.Flags().StringVarP(&f.quantity, "quantity", "q", "", "количество")
	cmd.Flags().StringVarP(&f.expiration, "expiration", "x", "", "срок годности DD/MM/YYYY")
	cmd.Flags().StringVarP(&f.description, "description", "d", "", "описание")
}

func anyChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"name", "price", "quantity", "expiration", "description"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// collect builds a draft from base, the changed flags and, when no flag was
// given, answers to one prompt per field.
func (f *draftFlags) collect(cmd *cobra.Command, a *app.App, base product.Draft) (product.Draft, error) {
	d := base
	if anyChanged(cmd) {
		set := func(name string, dst *string, v string) {
			if cmd.Flags().Changed(name) {
				*dst = v
			}
		}
		set("name", &d.Name, f.name)
		set("price", &d.Price, f.price)
		set("quantity", &d.Quantity, f.quantity)
		set("expiration", &d.ExpirationDate, f.expiration)
		set("description", &d.Description, f.description)
		return normalize(d, base), nil
	}

	t := a.Localizer
	p := ui.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	fields := []struct {
		label string
		dst   *string
	}{
		{t.T("field.name"), &d.Name},
		{t.T("field.price"), &d.Price},
		{t.T("field.quantity"), &d.Quantity},
		{t.T("field.expiration_date") + " (DD/MM/YYYY)", &d.ExpirationDate},
		{t.T("field.description"), &d.Description},
	}
	for _, field := range fields {
		v, err := p.Line(field.label, *field.dst)
		if err != nil {
			return product.Draft{}, err
		}
		*field.dst = v
	}
	return normalize(d, base), nil
}

// normalize removes input masks: price and quantity keep digits only and the
// date is rebuilt as DD/MM/YYYY from its digits. A date left as in base is
// kept verbatim, so products saved in an older date format stay editable.
func normalize(d, base product.Draft) product.Draft {
	d.Price = format.Digits(d.Price)
	d.Quantity = format.Digits(d.Quantity)
	if d.ExpirationDate != "" && d.ExpirationDate != base.ExpirationDate {
		d.ExpirationDate = format.MaskDate(d.ExpirationDate)
	}
	return d
}
