package product

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"estoque/internal/domain/product"
	"estoque/internal/format"
	"estoque/internal/i18n"
)

const (
	formatSimple = "simple"
	formatTable  = "table"
	formatJSON   = "json"
)

func render(w io.Writer, t *i18n.Localizer, list product.List, outFormat string) error {
	switch outFormat {
	case formatJSON:
		return printJSON(w, list)
	case formatTable:
		return printTable(w, t, list)
	case formatSimple, "":
		printSimple(w, t, list)
		return nil
	}
	return fmt.Errorf("неизвестный формат вывода %q", outFormat)
}

func price(p product.Product, l format.Locale) string {
	cents, err := strconv.ParseInt(p.Price, 10, 64)
	if err != nil {
		return p.Price
	}
	return format.Currency(cents, l)
}

func printSimple(w io.Writer, t *i18n.Localizer, list product.List) {
	fmt.Fprintln(w, t.T("screen.products"))
	if len(list) == 0 {
		fmt.Fprintln(w, t.T("products.empty"))
		return
	}

	l := t.Locale()
	for _, p := range list {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s: %d\n", t.T("field.id"), p.ID)
		fmt.Fprintf(w, "%s: %s\n", t.T("field.name"), p.Name)
		fmt.Fprintf(w, "%s: %s\n", t.T("field.price"), price(p, l))
		fmt.Fprintf(w, "%s: %s\n", t.T("field.quantity"), p.Quantity)
		fmt.Fprintf(w, "%s: %s\n", t.T("field.expiration_date"), format.DisplayDate(p.ExpirationDate, l))
		fmt.Fprintf(w, "%s: %s\n", t.T("field.description"), p.Description)
	}
}

func printTable(w io.Writer, t *i18n.Localizer, list product.List) error {
	if len(list) == 0 {
		fmt.Fprintln(w, t.T("products.empty"))
		return nil
	}

	l := t.Locale()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
		t.T("field.id"),
		t.T("field.name"),
		t.T("field.price"),
		t.T("field.quantity"),
		t.T("field.expiration_date"),
		t.T("field.description"),
	)
	for _, p := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t\n",
			p.ID,
			p.Name,
			price(p, l),
			p.Quantity,
			format.DisplayDate(p.ExpirationDate, l),
			p.Description,
		)
	}
	return tw.Flush()
}

func printJSON(w io.Writer, list product.List) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(list)
}
