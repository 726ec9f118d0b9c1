// Package report prints build steps either as short friendly messages or,
// when requested, as the full commands being run.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	actionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Width(6)
	targetStyle = lipgloss.NewStyle()
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(10)
)

// Reporter writes build progress to w.
type Reporter struct {
	w        io.Writer
	showCmds bool
}

// New returns a Reporter. With showCmds set, Step prints command lines
// instead of friendly messages.
func New(w io.Writer, showCmds bool) *Reporter {
	return &Reporter{w: w, showCmds: showCmds}
}

// Step reports one build action such as ("CXX", "test/foo", args).
func (r *Reporter) Step(action, target string, args []string) {
	if r.showCmds {
		fmt.Fprintln(r.w, Command(args))
		return
	}
	fmt.Fprintln(r.w, actionStyle.Render(action)+" "+targetStyle.Render(target))
}

// Field prints an aligned "label value" line.
func (r *Reporter) Field(label, value string) {
	fmt.Fprintln(r.w, labelStyle.Render(label)+" "+value)
}

// Fail reports a failed step.
func (r *Reporter) Fail(target string, err error) {
	fmt.Fprintln(r.w, errorStyle.Render("FAIL")+" "+target+": "+err.Error())
}

// Command renders args as a shell-like command line, quoting arguments that
// contain spaces or quotes.
func Command(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			a = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
		}
		quoted[i] = a
	}
	return strings.Join(quoted, " ")
}
