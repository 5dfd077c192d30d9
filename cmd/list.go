package cmd

import (
	"fmt"
	"github.com/cottand/annot/annot"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"io"
	"slices"
)

type listing struct {
	HackArrDVArrs bool                          `yaml:"hack_arr_dv_arrs"`
	Hints         []annot.Entry                 `yaml:"hints"`
	Interfaces    map[string]annot.Capabilities `yaml:"interfaces"`
}

func currentListing() listing {
	l := listing{
		HackArrDVArrs: annot.ProcessTable().HackArrDVArrs(),
		Hints:         annot.Entries(),
		Interfaces:    map[string]annot.Capabilities{},
	}
	for _, name := range annot.InterfaceNames().Slice() {
		l.Interfaces[name] = annot.CapabilitiesOf(name)
	}
	return l
}

func newListCmd() *cobra.Command {
	var asYaml bool
	c := &cobra.Command{
		Use:   "list",
		Short: "List every builtin hint name and capable interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l := currentListing()
			if asYaml {
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(l); err != nil {
					return errors.Wrap(err, "could not encode listing")
				}
				return errors.Wrap(enc.Close(), "could not encode listing")
			}
			return writeListing(cmd.OutOrStdout(), l)
		},
	}
	c.Flags().BoolVar(&asYaml, "yaml", false, "print as YAML")
	return c
}

func writeListing(w io.Writer, l listing) error {
	mode := "legacy arrays"
	if l.HackArrDVArrs {
		mode = "hack arrays"
	}
	tw := newTabWriter(w)
	_, _ = fmt.Fprintf(tw, "mode: %s\n\n", mode)
	for _, e := range l.Hints {
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", e.Name, e.Category)
	}
	_, _ = fmt.Fprintln(tw)
	_, _ = fmt.Fprintln(tw, "interface\tarraylike\tstring\tint\tdouble\tnonobject")
	names := make([]string, 0, len(l.Interfaces))
	for name := range l.Interfaces {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		writeCapabilities(tw, name)
	}
	return errors.Wrap(tw.Flush(), "could not write output")
}
