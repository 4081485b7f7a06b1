package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/bstr/foundation/core/errors"
	"github.com/msto63/bstr/foundation/utils/numx"
	"github.com/msto63/bstr/foundation/utils/slicex"
	"github.com/msto63/bstr/foundation/utils/stringx"
)

// maxRepeatBytes caps the output of repeat and pad
const maxRepeatBytes = 1 << 30

var (
	splitMax      int
	stripChars    string
	sliceStart    int
	sliceEnd      int
	sliceStep     int
	joinSkipEmpty bool
	padAlign      string
	padFill       string
)

var splitCmd = &cobra.Command{
	Use:   "split <text> <trenner>",
	Short: "Text an einem Trenner zerlegen",
	Long: `Zerlegt den Text an jedem Vorkommen des Trenners. Leere Teile bleiben
erhalten. Ein leerer Trenner ist ein Fehler.

Beispiele:
  bstr split a,,b ,
  bstr split --max 1 a,b,c ,`,
	Args: cobra.ExactArgs(2),
	RunE: runSplit,
}

var replaceCmd = &cobra.Command{
	Use:   "replace <text> <alt> <neu>",
	Short: "Teilstring ersetzen",
	Long: `Ersetzt alle nicht überlappenden Vorkommen von <alt> durch <neu>.
Ist <alt> leer, wird <neu> vor jedes Byte eingefügt.

Beispiele:
  bstr replace "hello world" world go
  bstr replace ab "" X`,
	Args: cobra.ExactArgs(3),
	RunE: runReplace,
}

var stripCmd = &cobra.Command{
	Use:   "strip <text>",
	Short: "Leerraum an beiden Enden entfernen",
	Long: `Entfernt ASCII-Leerraum (oder die Bytes aus --chars) an beiden Enden.

Beispiele:
  bstr strip "  hi  "
  bstr strip --chars xy xxhiyy`,
	Args: cobra.ExactArgs(1),
	RunE: runStrip,
}

var lstripCmd = &cobra.Command{
	Use:   "lstrip <text>",
	Short: "Leerraum am Anfang entfernen",
	Args:  cobra.ExactArgs(1),
	RunE:  runStrip,
}

var rstripCmd = &cobra.Command{
	Use:   "rstrip <text>",
	Short: "Leerraum am Ende entfernen",
	Args:  cobra.ExactArgs(1),
	RunE:  runStrip,
}

var lowerCmd = &cobra.Command{
	Use:   "lower <text>",
	Short: "ASCII-Großbuchstaben in Kleinbuchstaben wandeln",
	Args:  cobra.ExactArgs(1),
	RunE:  runCase,
}

var upperCmd = &cobra.Command{
	Use:   "upper <text>",
	Short: "ASCII-Kleinbuchstaben in Großbuchstaben wandeln",
	Args:  cobra.ExactArgs(1),
	RunE:  runCase,
}

var repeatCmd = &cobra.Command{
	Use:   "repeat <text> <anzahl>",
	Short: "Text wiederholen",
	Long: `Wiederholt den Text <anzahl> mal. Eine Anzahl <= 0 ergibt den leeren Text.

Beispiele:
  bstr repeat ab 3`,
	Args: cobra.ExactArgs(2),
	RunE: runRepeat,
}

var sliceCmd = &cobra.Command{
	Use:   "slice <text>",
	Short: "Ausschnitt mit Schrittweite",
	Long: `Schneidet text[start:end:step] aus. Negative Indizes zählen vom Ende,
fehlende Grenzen stehen für den Anfang bzw. das Ende, ein negativer Schritt
läuft rückwärts.

Beispiele:
  bstr slice --start 1 --end 3 hello
  bstr slice --step=-1 hello`,
	Args: cobra.ExactArgs(1),
	RunE: runSlice,
}

var removeprefixCmd = &cobra.Command{
	Use:   "removeprefix <text> <präfix>",
	Short: "Präfix entfernen",
	Long: `Entfernt das Präfix, falls der Text damit beginnt; sonst bleibt er unverändert.

Beispiele:
  bstr removeprefix Test Te`,
	Args: cobra.ExactArgs(2),
	RunE: runRemoveAffix,
}

var removesuffixCmd = &cobra.Command{
	Use:   "removesuffix <text> <suffix>",
	Short: "Suffix entfernen",
	Long: `Entfernt das Suffix, falls der Text damit endet; sonst bleibt er unverändert.

Beispiele:
  bstr removesuffix datei.txt .txt`,
	Args: cobra.ExactArgs(2),
	RunE: runRemoveAffix,
}

var joinCmd = &cobra.Command{
	Use:   "join <trenner> <teil>...",
	Short: "Teile mit einem Trenner verbinden",
	Long: `Verbindet die Teile mit dem Trenner.

Beispiele:
  bstr join ", " a b c
  bstr join --skip-empty - a "" b`,
	Args: cobra.MinimumNArgs(1),
	RunE: runJoin,
}

var padCmd = &cobra.Command{
	Use:   "pad <text> <breite>",
	Short: "Text auf eine Byte-Breite auffüllen",
	Long: `Füllt den Text mit dem Füllbyte auf <breite> Bytes auf. Ohne --fill gilt
defaults.fill aus der Konfiguration.

Ausrichtung:
  right   - rechtsbündig (Füllung links)
  left    - linksbündig (Füllung rechts)
  center  - zentriert, ein ungerader Rest geht nach rechts

Beispiele:
  bstr pad ab 5
  bstr pad --align center --fill '*' ab 6`,
	Args: cobra.ExactArgs(2),
	RunE: runPad,
}

func init() {
	rootCmd.AddCommand(splitCmd, replaceCmd, stripCmd, lstripCmd, rstripCmd, lowerCmd, upperCmd,
		repeatCmd, sliceCmd, removeprefixCmd, removesuffixCmd, joinCmd, padCmd)

	splitCmd.Flags().IntVar(&splitMax, "max", -1, "Maximale Anzahl Trennungen (-1 = unbegrenzt)")

	for _, c := range []*cobra.Command{stripCmd, lstripCmd, rstripCmd} {
		c.Flags().StringVar(&stripChars, "chars", "", "Zu entfernende Bytes (default: defaults.strip_chars oder Leerraum)")
	}

	sliceCmd.Flags().IntVar(&sliceStart, "start", 0, "Start-Index (ohne Angabe: offen)")
	sliceCmd.Flags().IntVar(&sliceEnd, "end", 0, "End-Index (ohne Angabe: offen)")
	sliceCmd.Flags().IntVar(&sliceStep, "step", 1, "Schrittweite (nicht 0)")

	joinCmd.Flags().BoolVar(&joinSkipEmpty, "skip-empty", false, "Leere Teile überspringen")

	padCmd.Flags().StringVar(&padAlign, "align", "right", "Ausrichtung (right, left, center)")
	padCmd.Flags().StringVar(&padFill, "fill", "", "Füllbyte (default: defaults.fill)")
}

// emitString writes a String result
func emitString(cmd *cobra.Command, s stringx.String) error {
	return emit(cmd, s.String(), resultOutput{Result: s.String()})
}

// inputString resolves the first positional argument
func inputString(cmd *cobra.Command, args []string) (stringx.String, error) {
	text, err := textArg(cmd, args[0])
	if err != nil {
		return stringx.String{}, err
	}
	return stringx.New(text), nil
}

type splitOutput struct {
	Parts []string `json:"parts"`
}

func runSplit(cmd *cobra.Command, args []string) error {
	s, err := inputString(cmd, args)
	if err != nil {
		return err
	}

	parts, err := s.SplitN(stringx.New(args[1]), splitMax)
	if err != nil {
		return err
	}

	result := splitOutput{Parts: slicex.Map(parts, stringx.String.String)}
	quoted := slicex.Map(result.Parts, func(p string) stringx.String {
		return stringx.New(strconv.Quote(p))
	})
	return emit(cmd, stringx.New("\n").Join(quoted...).String(), result)
}

func runReplace(cmd *cobra.Command, args []string) error {
	s, err := inputString(cmd, args)
	if err != nil {
		return err
	}
	return emitString(cmd, s.Replace(stringx.New(args[1]), stringx.New(args[2])))
}

func runStrip(cmd *cobra.Command, args []string) error {
	s, err := inputString(cmd, args)
	if err != nil {
		return err
	}

	chars := stripChars
	if !cmd.Flags().Changed("chars") {
		chars = appConfig.Defaults.StripChars
	}

	var result stringx.String
	switch {
	case cmd.Name() == "lstrip" && chars == "":
		result = s.LStrip()
	case cmd.Name() == "lstrip":
		result = s.LStripChars(chars)
	case cmd.Name() == "rstrip" && chars == "":
		result = s.RStrip()
	case cmd.Name() == "rstrip":
		result = s.RStripChars(chars)
	case chars == "":
		result = s.Strip()
	default:
		result = s.StripChars(chars)
	}
	return emitString(cmd, result)
}

func runCase(cmd *cobra.Command, args []string) error {
	s, err := inputString(cmd, args)
	if err != nil {
		return err
	}
	if cmd.Name() == "upper" {
		return emitString(cmd, s.Upper())
	}
	return emitString(cmd, s.Lower())
}

func runRepeat(cmd *cobra.Command, args []string) error {
	s, err := inputString(cmd, args)
	if err != nil {
		return err
	}
	n, err := numx.Atoi(args[1])
	if err != nil {
		return err
	}
	if n > 0 && s.Len() > 0 && n > maxRepeatBytes/s.Len() {
		return mdwerrors.InvalidInput(mdwerrors.ModuleStringx, "repeat", n, "a result of at most 1 GiB")
	}
	return emitString(cmd, s.Repeat(n))
}

func runSlice(cmd *cobra.Command, args []string) error {
	s, err := inputString(cmd, args)
	if err != nil {
		return err
	}

	start, end := stringx.Open, stringx.Open
	if cmd.Flags().Changed("start") {
		start = sliceStart
	}
	if cmd.Flags().Changed("end") {
		end = sliceEnd
	}

	result, err := s.SliceStep(start, end, sliceStep)
	if err != nil {
		return err
	}
	return emitString(cmd, result)
}

func runRemoveAffix(cmd *cobra.Command, args []string) error {
	s, err := inputString(cmd, args)
	if err != nil {
		return err
	}
	affix := stringx.New(args[1])
	if cmd.Name() == "removesuffix" {
		return emitString(cmd, s.RemoveSuffix(affix))
	}
	return emitString(cmd, s.RemovePrefix(affix))
}

func runJoin(cmd *cobra.Command, args []string) error {
	items := args[1:]
	if joinSkipEmpty {
		items = slicex.Filter(items, func(a string) bool { return a != "" })
	}
	parts := slicex.Map(items, stringx.New)
	return emitString(cmd, stringx.New(args[0]).Join(parts...))
}

func runPad(cmd *cobra.Command, args []string) error {
	s, err := inputString(cmd, args)
	if err != nil {
		return err
	}
	width, err := numx.Atoi(args[1])
	if err != nil {
		return err
	}

	if width > maxRepeatBytes {
		return mdwerrors.InvalidInput(mdwerrors.ModuleStringx, "pad", width, "a width of at most 1 GiB")
	}

	fill := padFill
	if !cmd.Flags().Changed("fill") {
		fill = appConfig.Defaults.Fill
	}
	if len(fill) != 1 {
		return mdwerrors.InvalidInput(mdwerrors.ModuleStringx, "pad", fill, "a single fill byte")
	}

	switch padAlign {
	case "right":
		return emitString(cmd, s.PadLeft(width, fill[0]))
	case "left":
		return emitString(cmd, s.PadRight(width, fill[0]))
	case "center":
		return emitString(cmd, s.Center(width, fill[0]))
	default:
		return mdwerrors.InvalidInput(mdwerrors.ModuleStringx, "pad", padAlign, "right, left or center")
	}
}
