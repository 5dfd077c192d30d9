package cmd

import (
	"fmt"
	"github.com/cottand/annot/annot"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"io"
)

func newDefaultCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default category...",
		Short: "Print the default value of annotation categories",
		Long:  "Print the default value of annotation categories, e.g. `annot default vec arraykey`.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// validate everything first so a typo does not leave half the output written
			cats := make([]annot.Category, 0, len(args))
			for _, arg := range args {
				c, ok := annot.ParseCategory(arg)
				if !ok {
					return errors.Errorf("unknown category %q", arg)
				}
				cats = append(cats, c)
			}
			tw := newTabWriter(cmd.OutOrStdout())
			for _, c := range cats {
				writeDefault(tw, c)
			}
			return errors.Wrap(tw.Flush(), "could not write output")
		},
	}
}

func writeDefault(w io.Writer, c annot.Category) {
	tv := annot.DefaultValue(c)
	_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", c, tv.Format(), tv.Type)
}
