package cmd

import (
	"fmt"
	"github.com/cottand/annot/annot"
	"github.com/cottand/annot/strpool"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"io"
	"text/tabwriter"
)

func newResolveCmd() *cobra.Command {
	var interned bool
	c := &cobra.Command{
		Use:   "resolve name...",
		Short: "Resolve type-hint names to annotation categories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := newTabWriter(cmd.OutOrStdout())
			for _, name := range args {
				writeResolution(tw, name, interned)
			}
			return errors.Wrap(tw.Flush(), "could not write output")
		},
	}
	c.Flags().BoolVar(&interned, "interned", false, "look names up by their interned handle")
	return c
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func resolve(name string, interned bool) (annot.Category, bool) {
	if interned {
		return annot.ResolveHandle(strpool.Static(name))
	}
	return annot.ResolveText(name)
}

func writeResolution(w io.Writer, name string, interned bool) {
	c, ok := resolve(name, interned)
	if !ok {
		_, _ = fmt.Fprintf(w, "%s\tunresolved\t(class or typedef name)\n", name)
		return
	}
	_, _ = fmt.Fprintf(w, "%s\t%s\tdefault %s\n", name, c, annot.DefaultValue(c).Format())
}
