package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-millipede/internal/games/millipede"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the monster spawn tables",
	Long: `Shows, for every wave, the percent chance each random event spawns a
given monster and the caps on concurrent beetles, spiders, earwigs and
inchworms. Waves past the last row reuse the last row.

Honors --config and --difficulty.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, err := millipede.LoadConfig()
	if err != nil {
		return err
	}

	kinds := millipede.EventKinds()
	capped := millipede.CappedKinds()

	// Print header
	var head, rule strings.Builder
	fmt.Fprintf(&head, "  %-4s", "Wave")
	fmt.Fprintf(&rule, "  %-4s", "----")
	for _, k := range kinds {
		fmt.Fprintf(&head, "  %9s", k)
		fmt.Fprintf(&rule, "  %9s", strings.Repeat("-", len(k.String())))
	}
	head.WriteString("  Caps (")
	for i, k := range capped {
		if i > 0 {
			head.WriteString("/")
		}
		head.WriteString(k.String())
	}
	head.WriteString(")")
	fmt.Println(head.String())
	fmt.Println(rule.String())

	// Print waves
	for i, lvl := range cfg.Levels {
		odds := millipede.EventOdds(lvl.Thresholds)
		var line strings.Builder
		fmt.Fprintf(&line, "  %-4d", i+1)
		for _, k := range kinds {
			if p, ok := odds[k]; ok {
				fmt.Fprintf(&line, "  %8d%%", p)
			} else {
				fmt.Fprintf(&line, "  %9s", "-")
			}
		}
		caps := make([]string, len(lvl.Caps))
		for j, c := range lvl.Caps {
			caps[j] = fmt.Sprint(c)
		}
		line.WriteString("  " + strings.Join(caps, "/"))
		fmt.Println(line.String())
	}
	return nil
}
