package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"webhooktask/cli/internal/sqlexec"
)

// printResponse shows the webhook's reply in a titled box.
func printResponse(w io.Writer, resp string) {
	body := strings.TrimSpace(resp)
	if body == "" {
		body = "(empty response)"
	}
	title := pterm.NewStyle(pterm.FgGreen, pterm.Bold).Sprint("Webhook Response")
	box := pterm.DefaultBox.WithTitle(title).WithPadding(1).Sprint(body)
	fmt.Fprintln(w, box)
}

// printTable renders a query result with a header row.
func printTable(w io.Writer, res sqlexec.Result) error {
	if len(res.Rows) == 0 {
		fmt.Fprintln(w, "No rows returned.")
		return nil
	}

	data := pterm.TableData{res.Columns}
	data = append(data, res.Strings()...)

	out, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, out)
	return nil
}
