package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dargueta/diskfrag"
	"github.com/dargueta/diskfrag/compact"
	"github.com/dargueta/diskfrag/diskmap"
	"github.com/dargueta/diskfrag/report"
	"github.com/urfave/cli/v2"
)

func newStrategyFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "strategy",
		Aliases: []string{"s"},
		Usage: fmt.Sprintf(
			"compaction strategy, one of: %s", strings.Join(compact.StrategyNames(), ", ")),
		Value:   compact.WholeFile.String(),
		EnvVars: []string{"DISKFRAG_STRATEGY"},
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "diskfrag",
		Usage: "Compact a disk map and compute its checksums",
		Commands: []*cli.Command{
			{
				Name:      "solve",
				Usage:     "Print the checksums after whole-block and whole-file compaction",
				Action:    solveDiskMap,
				ArgsUsage: "INPUT_FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "indexed",
						Usage:   "use the free run index for whole-file compaction",
						EnvVars: []string{"DISKFRAG_INDEXED"},
					},
				},
			},
			{
				Name:      "extents",
				Usage:     "Show where every file ends up after compaction",
				Action:    reportExtents,
				ArgsUsage: "INPUT_FILE",
				Flags: []cli.Flag{
					newStrategyFlag(),
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "output format, table or csv",
						Value:   "table",
						EnvVars: []string{"DISKFRAG_FORMAT"},
					},
				},
			},
			{
				Name:      "show",
				Usage:     "Draw the layout before and after compaction",
				Action:    showLayout,
				ArgsUsage: "INPUT_FILE",
				Flags:     []cli.Flag{newStrategyFlag()},
			},
		},
	}
}

// loadInput decodes the disk map named by the command's only argument.
func loadInput(context *cli.Context) (diskmap.Layout, error) {
	if context.NArg() != 1 {
		return nil, diskfrag.ErrInvalidArgument.WithMessage(
			fmt.Sprintf("expected exactly one input file, got %d arguments", context.NArg()))
	}
	return diskmap.ReadFile(context.Args().First())
}

func solveDiskMap(context *cli.Context) error {
	start := time.Now()

	layout, err := loadInput(context)
	if err != nil {
		return err
	}

	fileStrategy := compact.WholeFile
	if context.Bool("indexed") {
		fileStrategy = compact.WholeFileIndexed
	}

	result, err := compact.Solve(layout, fileStrategy)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)
	out := context.App.Writer
	fmt.Fprintf(out, "Part 1: %d\n", result.Part1)
	fmt.Fprintf(out, "Part 2: %d\n", result.Part2)
	fmt.Fprintf(out, "Time Taken: %.6f s\n", elapsed.Seconds())
	return nil
}

func reportExtents(context *cli.Context) error {
	strategy, err := compact.ParseStrategy(context.String("strategy"))
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(context.String("format"))
	if err != nil {
		return err
	}

	before, err := loadInput(context)
	if err != nil {
		return err
	}

	after := before.Clone()
	strategy.Apply(after)
	return report.Write(context.App.Writer, format, report.FromLayouts(before, after))
}

func showLayout(context *cli.Context) error {
	strategy, err := compact.ParseStrategy(context.String("strategy"))
	if err != nil {
		return err
	}

	before, err := loadInput(context)
	if err != nil {
		return err
	}

	after := before.Clone()
	strategy.Apply(after)

	out := context.App.Writer
	fmt.Fprintf(out, "before:   %s\n", before)
	fmt.Fprintf(out, "after:    %s\n", after)
	fmt.Fprintf(out, "checksum: %d\n", diskmap.Checksum(after))
	return nil
}
