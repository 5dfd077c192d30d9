package cmd

import (
	"fmt"
	"github.com/cottand/annot/annot"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	replPrompt  = "annot> "
	historyFile = ".annot_history"
	replHelp    = `enter hint names to resolve them, or one of:
  :caps <interface>...    capabilities of interface names
  :default <category>...  default values of categories
  :list                   every builtin hint
  :quit                   exit`
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively resolve hints and query interfaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRepl(cmd.OutOrStdout())
		},
	}
}

func runRepl(out io.Writer) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	_, _ = fmt.Fprintln(out, replHelp)
	for {
		line, err := ln.Prompt(replPrompt)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			_, _ = fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "could not read line")
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		if quit := evalLine(out, line); quit {
			return nil
		}
	}
}

// evalLine runs one line of repl input and reports whether the repl should exit
func evalLine(w io.Writer, line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	tw := newTabWriter(w)
	defer func() { _ = tw.Flush() }()

	switch fields[0] {
	case ":quit", ":q":
		return true
	case ":help", ":h":
		_, _ = fmt.Fprintln(tw, replHelp)
	case ":list":
		if err := writeListing(w, currentListing()); err != nil {
			_, _ = fmt.Fprintf(tw, "%s\n", err)
		}
	case ":caps":
		for _, name := range fields[1:] {
			writeCapabilities(tw, name)
		}
	case ":default":
		for _, arg := range fields[1:] {
			c, ok := annot.ParseCategory(arg)
			if !ok {
				_, _ = fmt.Fprintf(tw, "%s\tunknown category\n", arg)
				continue
			}
			writeDefault(tw, c)
		}
	default:
		if strings.HasPrefix(fields[0], ":") {
			_, _ = fmt.Fprintf(tw, "unknown command %s, try :help\n", fields[0])
			return false
		}
		for _, name := range fields {
			writeResolution(tw, name, false)
			if _, ok := annot.ResolveText(name); !ok && annot.SupportsNonObject(name) {
				writeCapabilities(tw, name)
			}
		}
	}
	return false
}
