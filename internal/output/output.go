// Package output renders command results as a human-readable table or as
// JSON, selected by the global --output flag.
package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/cyptokoz-svg/polymarket-cli/internal/ctf"
)

// Format selects the rendering mode.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat validates the --output flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("output: unknown format %q (want table or json)", s)
	}
}

// TxResult reports a completed mutating operation: its label, the
// transaction hash, and the block it was mined in.
func (f Format) TxResult(operation string, res ctf.TxResult) error {
	if f == FormatJSON {
		return printJSON(map[string]any{
			"operation":        operation,
			"transaction_hash": res.TxHash.Hex(),
			"block_number":     res.BlockNumber,
		})
	}
	t := newTable()
	t.SetHeader([]string{"Operation", "Transaction Hash", "Block"})
	t.Append([]string{operation, res.TxHash.Hex(), fmt.Sprintf("%d", res.BlockNumber)})
	t.Render()
	return nil
}

// ID reports a single derived identifier.
func (f Format) ID(name, value string) error {
	if f == FormatJSON {
		return printJSON(map[string]string{name: value})
	}
	t := newTable()
	t.SetHeader([]string{name})
	t.Append([]string{value})
	t.Render()
	return nil
}

// KV reports a set of label/value rows, e.g. wallet info.
func (f Format) KV(pairs [][2]string) error {
	if f == FormatJSON {
		m := make(map[string]string, len(pairs))
		for _, p := range pairs {
			m[p[0]] = p[1]
		}
		return printJSON(m)
	}
	t := newTable()
	for _, p := range pairs {
		t.Append([]string{p[0], p[1]})
	}
	t.Render()
	return nil
}

// Error prints an error chain to stderr.
func (f Format) Error(err error) {
	if f == FormatJSON {
		blob, _ := json.Marshal(map[string]string{"error": err.Error()})
		fmt.Fprintln(os.Stderr, string(blob))
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

func newTable() *tablewriter.Table {
	t := tablewriter.NewWriter(os.Stdout)
	t.SetAutoWrapText(false)
	t.SetBorder(false)
	return t
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("output: encoding json: %w", err)
	}
	return nil
}
