package generator

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/mlwelles/fluentGen/fluent"
	"github.com/mlwelles/fluentGen/model"
)

// Report writes one line per classified field:
//
//	Order.ShipTo      *Address   element   WithShipTo
//	Order.Item        []*Item    sequence  WithItem, WithNewItem
//	Order.Comment     string     other
func Report(w io.Writer, res fluent.Result, colored bool) error {
	kindColor := map[model.FieldKind]*color.Color{
		model.KindElement:  color.New(color.FgGreen),
		model.KindSequence: color.New(color.FgCyan),
		model.KindOther:    color.New(color.FgYellow),
	}
	for _, c := range kindColor {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	nameWidth, typeWidth := 0, 0
	for _, d := range res.Decisions {
		nameWidth = max(nameWidth, len(d.Class)+1+len(d.Field))
		typeWidth = max(typeWidth, len(d.Type))
	}

	for _, d := range res.Decisions {
		kind := fmt.Sprintf("%-8s", d.Kind)
		line := fmt.Sprintf("%-*s  %-*s  %s  %s",
			nameWidth, d.Class+"."+d.Field,
			typeWidth, d.Type,
			kindColor[d.Kind].Sprint(kind),
			strings.Join(d.Methods, ", "))
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d fields, %d methods\n", len(res.Decisions), res.Added)
	return err
}
