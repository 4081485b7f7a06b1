package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/bstr/foundation/utils/stringx"
)

var (
	searchStart int
	boundStart  int
	boundEnd    int
)

var findCmd = &cobra.Command{
	Use:   "find <text> <teilstring>",
	Short: "Erstes Vorkommen suchen",
	Long: `Gibt den Byte-Offset des ersten Vorkommens ab --start aus, sonst -1.
Ein negativer Start zählt vom Ende.

Beispiele:
  bstr find hello l
  bstr find --start=-2 hello l`,
	Args: cobra.ExactArgs(2),
	RunE: runFind,
}

var rfindCmd = &cobra.Command{
	Use:   "rfind <text> <teilstring>",
	Short: "Letztes Vorkommen suchen",
	Long: `Gibt den Byte-Offset des letzten Vorkommens ab --start aus, sonst -1.

Beispiele:
  bstr rfind hello l`,
	Args: cobra.ExactArgs(2),
	RunE: runFind,
}

var countCmd = &cobra.Command{
	Use:   "count <text> <teilstring>",
	Short: "Vorkommen zählen",
	Long: `Zählt die nicht überlappenden Vorkommen eines Teilstrings.
Ein leerer Teilstring kommt Länge+1 mal vor.

Beispiele:
  bstr count banana an
  bstr count abc ""`,
	Args: cobra.ExactArgs(2),
	RunE: runCount,
}

var startswithCmd = &cobra.Command{
	Use:   "startswith <text> <präfix>",
	Short: "Prüft auf ein Präfix",
	Long: `Gibt true aus, wenn der Text (oder text[start:end]) mit dem Präfix beginnt.

Beispiele:
  bstr startswith hello he
  bstr startswith --start 2 hello ll`,
	Args: cobra.ExactArgs(2),
	RunE: runAffix,
}

var endswithCmd = &cobra.Command{
	Use:   "endswith <text> <suffix>",
	Short: "Prüft auf ein Suffix",
	Long: `Gibt true aus, wenn der Text (oder text[start:end]) mit dem Suffix endet.

Beispiele:
  bstr endswith hello lo
  bstr endswith --end 4 hello ll`,
	Args: cobra.ExactArgs(2),
	RunE: runAffix,
}

func init() {
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(rfindCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(startswithCmd)
	rootCmd.AddCommand(endswithCmd)

	findCmd.Flags().IntVar(&searchStart, "start", 0, "Start-Offset")
	rfindCmd.Flags().IntVar(&searchStart, "start", 0, "Start-Offset")

	for _, c := range []*cobra.Command{startswithCmd, endswithCmd} {
		c.Flags().IntVar(&boundStart, "start", 0, "Beginn des Bereichs")
		c.Flags().IntVar(&boundEnd, "end", 0, "Ende des Bereichs (ohne Angabe: Textende)")
	}
}

// textPair resolves the two positional arguments of the search commands
func textPair(cmd *cobra.Command, args []string) (stringx.String, stringx.String, error) {
	text, err := textArg(cmd, args[0])
	if err != nil {
		return stringx.String{}, stringx.String{}, err
	}
	return stringx.New(text), stringx.New(args[1]), nil
}

func runFind(cmd *cobra.Command, args []string) error {
	s, sub, err := textPair(cmd, args)
	if err != nil {
		return err
	}

	idx := s.Find(sub, searchStart)
	if cmd.Name() == "rfind" {
		idx = s.RFind(sub, searchStart)
	}
	return emit(cmd, strconv.Itoa(idx), indexOutput{Index: idx})
}

func runCount(cmd *cobra.Command, args []string) error {
	s, sub, err := textPair(cmd, args)
	if err != nil {
		return err
	}

	n := s.Count(sub)
	return emit(cmd, strconv.Itoa(n), countOutput{Count: n})
}

func runAffix(cmd *cobra.Command, args []string) error {
	s, x, err := textPair(cmd, args)
	if err != nil {
		return err
	}

	end := stringx.Open
	if cmd.Flags().Changed("end") {
		end = boundEnd
	}
	bounded := cmd.Flags().Changed("start") || cmd.Flags().Changed("end")

	var ok bool
	switch {
	case cmd.Name() == "startswith" && bounded:
		ok = s.StartsWithIn(x, boundStart, end)
	case cmd.Name() == "startswith":
		ok = s.StartsWith(x)
	case bounded:
		ok = s.EndsWithIn(x, boundStart, end)
	default:
		ok = s.EndsWith(x)
	}
	return emit(cmd, strconv.FormatBool(ok), boolOutput{Result: ok})
}
