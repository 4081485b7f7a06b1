package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/bstr/foundation/utils/numx"
)

var atolBase int

var atolCmd = &cobra.Command{
	Use:   "atol <literal>",
	Short: "Ganzzahl-Literal parsen",
	Long: `Parst ein Ganzzahl-Literal in der angegebenen Basis (2 bis 36).

Basis 0 erkennt die Präfixe 0b, 0o und 0x; ohne Präfix gilt Basis 10.
Unterstriche zwischen Ziffern sind erlaubt, Leerraum am Anfang und Ende
wird ignoriert. Ohne --base gilt defaults.base aus der Konfiguration.

Beispiele:
  bstr atol 1_000
  bstr atol --base 0 0x1F
  bstr atol --base 36 zz`,
	Args: cobra.ExactArgs(1),
	RunE: runAtol,
}

var sizeCmd = &cobra.Command{
	Use:   "size <zahl>",
	Short: "Dezimalstellen und Puffergröße einer Ganzzahl",
	Long: `Gibt die Anzahl der Dezimalstellen und die Puffergröße aus, die die
Textdarstellung einer Ganzzahl benötigt (Vorzeichen, Ziffern, Terminator).

Beispiele:
  bstr size 12345
  bstr size -- -42`,
	Args: cobra.ExactArgs(1),
	RunE: runSize,
}

func init() {
	rootCmd.AddCommand(atolCmd)
	rootCmd.AddCommand(sizeCmd)

	atolCmd.Flags().IntVarP(&atolBase, "base", "b", 10, "Basis (0 oder 2 bis 36)")
}

type atolOutput struct {
	Input string `json:"input"`
	Base  int    `json:"base"`
	Value int    `json:"value"`
}

func runAtol(cmd *cobra.Command, args []string) error {
	input, err := textArg(cmd, args[0])
	if err != nil {
		return err
	}

	base := atolBase
	if !cmd.Flags().Changed("base") {
		base = appConfig.Defaults.Base
	}

	value, err := numx.Atol(input, base)
	if err != nil {
		return err
	}
	return emit(cmd, strconv.Itoa(value), atolOutput{Input: input, Base: base, Value: value})
}

type sizeOutput struct {
	Value  int `json:"value"`
	Digits int `json:"digits"`
	Size   int `json:"size"`
}

func runSize(cmd *cobra.Command, args []string) error {
	n, err := numx.Atoi(args[0])
	if err != nil {
		return err
	}

	magnitude := uint64(n)
	if n < 0 {
		magnitude = -magnitude
	}
	result := sizeOutput{
		Value:  n,
		Digits: numx.DigitCount64(magnitude),
		Size:   numx.IntSize(int64(n)),
	}
	text := "digits=" + strconv.Itoa(result.Digits) + " size=" + strconv.Itoa(result.Size)
	return emit(cmd, text, result)
}
