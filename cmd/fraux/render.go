package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	fraux "github.com/xh-gotz9/go-fraux"
)

var (
	markerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	integerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	bytesStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

func render(v *fraux.Value) string {
	var b strings.Builder
	renderValue(&b, v, 0)
	return strings.TrimRight(b.String(), "\n")
}

func renderValue(b *strings.Builder, v *fraux.Value, indent int) {
	pad := strings.Repeat("  ", indent)
	switch v.Kind() {
	case fraux.KindBytes:
		fmt.Fprintf(b, "%s%s\n", pad, bytesStyle.Render(renderBytes(v.Bytes())))
	case fraux.KindInteger:
		fmt.Fprintf(b, "%s%s\n", pad, integerStyle.Render(fmt.Sprintf("%d", v.Int32())))
	case fraux.KindList:
		fmt.Fprintf(b, "%s%s\n", pad, markerStyle.Render(fmt.Sprintf("list (%d)", v.Len())))
		for _, elem := range v.List() {
			renderValue(b, elem, indent+1)
		}
	case fraux.KindDict:
		fmt.Fprintf(b, "%s%s\n", pad, markerStyle.Render(fmt.Sprintf("dict (%d)", v.Len())))
		keys := make([]string, 0, v.Len())
		for k := range v.Dict() {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(b, "%s  %s\n", pad, keyStyle.Render(renderBytes([]byte(k))))
			renderValue(b, v.Get(k), indent+2)
		}
	}
}

// renderBytes shows printable strings quoted and everything else as hex
// with a byte count.
func renderBytes(b []byte) string {
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			if len(b) > 16 {
				return fmt.Sprintf("%d bytes <%x...>", len(b), b[:16])
			}
			return fmt.Sprintf("%d bytes <%x>", len(b), b)
		}
	}
	return fmt.Sprintf("%q", b)
}
