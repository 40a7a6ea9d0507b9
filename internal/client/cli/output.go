package cli

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	alertColor   = color.New(color.FgRed, color.Bold)
	successColor = color.New(color.FgGreen)
	noticeColor  = color.New(color.FgYellow)
)

// alert reports a failed action the user has to acknowledge.
func (a *App) alert(format string, args ...any) {
	alertColor.Fprintln(a.out, fmt.Sprintf(format, args...))
}

func (a *App) success(format string, args ...any) {
	successColor.Fprintln(a.out, fmt.Sprintf(format, args...))
}

func (a *App) notice(format string, args ...any) {
	noticeColor.Fprintln(a.out, fmt.Sprintf(format, args...))
}
