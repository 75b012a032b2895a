// Copyright (c) 2025 BVK Chaitanya

package subcmds

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bvk/cmdtree/tree"
	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	tokenStyle = lipgloss.NewStyle().Underline(true)
)

func printSuggestions(w io.Writer, suggestions []string) {
	if len(suggestions) == 0 {
		fmt.Fprintln(w, hintStyle.Render("(no suggestions)"))
		return
	}
	for _, s := range suggestions {
		fmt.Fprintln(w, hintStyle.Render(s))
	}
}

func printError(w io.Writer, err error) {
	var perr *tree.ParseError
	var ierr *tree.IncompleteError
	switch {
	case errors.As(err, &perr):
		fmt.Fprintf(w, "%s %s\n", errorStyle.Render("no match for"), tokenStyle.Render(perr.Token))
		if hints := tree.Suggestions(perr.Node); len(hints) != 0 {
			fmt.Fprintln(w, hintStyle.Render("expected one of: "+strings.Join(hints, " ")))
		}
	case errors.As(err, &ierr):
		fmt.Fprintln(w, errorStyle.Render("incomplete command"))
		if hints := tree.Suggestions(ierr.Node); len(hints) != 0 {
			fmt.Fprintln(w, hintStyle.Render("expected one of: "+strings.Join(hints, " ")))
		}
	default:
		fmt.Fprintln(w, errorStyle.Render(err.Error()))
	}
}

func printResult(w io.Writer, r *tree.Result) {
	fmt.Fprintf(w, "node: %s\n", r.Node().Name())
	fmt.Fprintf(w, "literals: %s\n", strings.Join(r.Literals(), " "))
	for i, v := range r.Values() {
		fmt.Fprintf(w, "value[%d]: %v (%T)\n", i, v, v)
	}
	if rest, ok := r.Rest(); ok {
		fmt.Fprintf(w, "rest: %q\n", rest)
	}
}
