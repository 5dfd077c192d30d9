package cmd

import (
	"fmt"
	"github.com/cottand/annot/annot"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"io"
)

func newCapsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "caps interface...",
		Short: "Show which non-object values satisfy an interface hint",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := newTabWriter(cmd.OutOrStdout())
			_, _ = fmt.Fprintln(tw, "interface\tarraylike\tstring\tint\tdouble\tnonobject")
			for _, name := range args {
				writeCapabilities(tw, name)
			}
			return errors.Wrap(tw.Flush(), "could not write output")
		},
	}
}

func writeCapabilities(w io.Writer, name string) {
	caps := annot.CapabilitiesOf(name)
	_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
		name,
		yesNo(caps.ArrayLike),
		yesNo(caps.String),
		yesNo(caps.Int),
		yesNo(caps.Double),
		yesNo(caps.NonObject),
	)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
