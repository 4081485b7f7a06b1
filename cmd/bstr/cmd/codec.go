package cmd

import (
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rivo/uniseg"
	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/bstr/foundation/core/errors"
	"github.com/msto63/bstr/foundation/utils/numx"
	"github.com/msto63/bstr/foundation/utils/stringx"
	"github.com/msto63/bstr/foundation/utils/utf8x"
	"github.com/msto63/bstr/pkg/core/logging"
)

var ordCmd = &cobra.Command{
	Use:   "ord <zeichen>",
	Short: "Codepoint eines UTF-8-Zeichens",
	Long: `Gibt den Unicode-Codepoint eines einzelnen UTF-8-Zeichens aus.
Die Eingabe muss genau ein vollständiges Zeichen enthalten.

Beispiele:
  bstr ord A
  bstr ord €
  bstr --output json ord ü`,
	Args: cobra.ExactArgs(1),
	RunE: runOrd,
}

var chrCmd = &cobra.Command{
	Use:   "chr <codepoint>",
	Short: "UTF-8-Zeichen zu einem Codepoint",
	Long: `Kodiert einen Codepoint als UTF-8-Zeichen.

Der Codepoint wird dezimal, mit Präfix (0x, 0o, 0b) oder als U+XXXX angegeben.

Beispiele:
  bstr chr 65
  bstr chr 0x20AC
  bstr chr U+1F600`,
	Args: cobra.ExactArgs(1),
	RunE: runChr,
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <text>",
	Short: "Bytes, Zeichen und Grapheme eines Textes",
	Long: `Zeigt Länge in Bytes, Anzahl der Codepoints und Graphem-Cluster,
die Anzeigebreite, den Hash und eine Tabelle aller Zeichen.

Beispiele:
  bstr inspect "Grüße"
  echo -n "é" | bstr inspect -`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(ordCmd)
	rootCmd.AddCommand(chrCmd)
	rootCmd.AddCommand(inspectCmd)
}

type codePointOutput struct {
	Char      string `json:"char"`
	CodePoint uint32 `json:"code_point"`
	Hex       string `json:"hex"`
	UTF8      string `json:"utf8"`
}

func newCodePointOutput(s stringx.String, c uint32) codePointOutput {
	return codePointOutput{
		Char:      s.String(),
		CodePoint: c,
		Hex:       fmt.Sprintf("U+%04X", c),
		UTF8:      hex.EncodeToString(s.Bytes()),
	}
}

func runOrd(cmd *cobra.Command, args []string) error {
	input, err := textArg(cmd, args[0])
	if err != nil {
		return err
	}

	s := stringx.New(input)
	c, err := s.Ord()
	if err != nil {
		return err
	}
	return emit(cmd, strconv.FormatUint(uint64(c), 10), newCodePointOutput(s, c))
}

func runChr(cmd *cobra.Command, args []string) error {
	c, err := parseCodePoint(args[0])
	if err != nil {
		return err
	}

	s, err := stringx.Chr(c)
	if err != nil {
		return err
	}
	return emit(cmd, s.String(), newCodePointOutput(s, c))
}

// parseCodePoint accepts U+XXXX and every integer literal numx understands
func parseCodePoint(arg string) (uint32, error) {
	var (
		n   int
		err error
	)
	if rest, ok := strings.CutPrefix(strings.ToUpper(arg), "U+"); ok {
		n, err = numx.Atol(rest, 16)
	} else {
		n, err = numx.Atol(arg, 0)
	}
	if err != nil {
		return 0, err
	}
	if n < 0 || int64(n) > math.MaxUint32 {
		return 0, mdwerrors.InvalidInput(mdwerrors.ModuleUtf8x, "chr", arg, fmt.Sprintf("code point between 0 and 0x%X", utf8x.MaxCodePoint))
	}
	return uint32(n), nil
}

type charInfo struct {
	Offset    int    `json:"offset"`
	CodePoint string `json:"code_point"`
	UTF8      string `json:"utf8"`
}

type inspectOutput struct {
	Bytes      int        `json:"bytes"`
	CodePoints int        `json:"code_points"`
	Graphemes  int        `json:"graphemes"`
	Width      int        `json:"width"`
	WellFormed bool       `json:"well_formed"`
	Hash       string     `json:"hash"`
	Chars      []charInfo `json:"chars"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	input, err := textArg(cmd, args[0])
	if err != nil {
		return err
	}
	s := stringx.New(input)
	data := []byte(input)

	result := inspectOutput{
		Bytes:      s.Len(),
		Graphemes:  uniseg.GraphemeClusterCount(input),
		Width:      uniseg.StringWidth(input),
		WellFormed: true,
		Hash:       fmt.Sprintf("%016x", s.Hash()),
		Chars:      []charInfo{},
	}

	offsets := make([]int, 0, len(data))
	for off := range s.CodePoints() {
		offsets = append(offsets, off)
	}
	offsets = append(offsets, len(data))

	rows := make([][]string, 0, len(offsets)-1)
	for i := 0; i < len(offsets)-1; i++ {
		start, end := offsets[i], offsets[i+1]
		c, _, err := utf8x.Decode(data[start:end])

		info := charInfo{Offset: start, UTF8: hex.EncodeToString(data[start:end])}
		display := "?"
		if err != nil {
			result.WellFormed = false
			info.CodePoint = "-"
		} else {
			info.CodePoint = fmt.Sprintf("U+%04X", c)
			display = strconv.QuoteRune(rune(c))
		}
		result.Chars = append(result.Chars, info)
		rows = append(rows, []string{strconv.Itoa(info.Offset), info.CodePoint, info.UTF8, display})
	}
	result.CodePoints = len(result.Chars)

	logger.Debug("inspected input", logging.KV("bytes", result.Bytes, "graphemes", result.Graphemes))

	return emit(cmd, renderInspect(cmd, result, rows), result)
}

// renderInspect lays out the summary and the character table for terminals
func renderInspect(cmd *cobra.Command, result inspectOutput, rows [][]string) string {
	r := lipgloss.NewRenderer(cmd.OutOrStdout())
	label := r.NewStyle().Bold(true).Width(12)
	header := r.NewStyle().Bold(true).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)

	var b strings.Builder
	summary := []struct {
		name  string
		value string
	}{
		{"Bytes", strconv.Itoa(result.Bytes)},
		{"Codepoints", strconv.Itoa(result.CodePoints)},
		{"Grapheme", strconv.Itoa(result.Graphemes)},
		{"Breite", strconv.Itoa(result.Width)},
		{"UTF-8", strconv.FormatBool(result.WellFormed)},
		{"Hash", result.Hash},
	}
	for _, line := range summary {
		b.WriteString(label.Render(line.name))
		b.WriteString(line.value)
		b.WriteByte('\n')
	}

	if len(rows) == 0 {
		return strings.TrimSuffix(b.String(), "\n")
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Offset", "Codepoint", "UTF-8", "Zeichen").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	b.WriteString(t.String())
	return b.String()
}
