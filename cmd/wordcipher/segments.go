package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-wordcipher/pkg/alphabet"
	"github.com/goliatone/go-wordcipher/pkg/metadata"
	"github.com/goliatone/go-wordcipher/pkg/segment"
)

func (a *app) segmentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "segments",
		Short: "List the puzzle's segments and decoded constraints",
		Long: `segments tokenizes the puzzle and decodes every metadata block without
consulting a dictionary. Use it to check a puzzle while writing it.`,
		Args: noArgs,
		RunE: a.runSegments,
	}
}

func (a *app) runSegments(cmd *cobra.Command, _ []string) error {
	if err := a.requireConfig(); err != nil {
		return err
	}
	ctx := cmd.Context()

	src, err := a.puzzleSource(*a.cfg)
	if err != nil {
		return err
	}
	doc, err := newLoader(*a.cfg).Load(ctx, src)
	if err != nil {
		return fmt.Errorf("load puzzle: %w", err)
	}

	return a.printSegments(ctx, doc.Text())
}

func (a *app) printSegments(ctx context.Context, text string) error {
	natural := alphabet.Natural()
	letter := func(ordinal int) string {
		b, _ := natural.Letter(ordinal)
		return string(b)
	}

	segments, err := segment.Default().Tokenize(text)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tOFFSET\tENCODED\tMETADATA\tVALUE\tAVERAGE\tFIRST\tLOWEST\tSIZE")
	for _, seg := range segments {
		if err := ctx.Err(); err != nil {
			return err
		}
		c, err := metadata.Decode(seg.Metadata)
		if err != nil {
			return fmt.Errorf("segment %d: %w", seg.Index, err)
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%d\t%d\t%d (%s)\t%d (%s)\t%d\n",
			seg.Index, seg.Offset, seg.Encoded, seg.Metadata,
			c.WordValue, c.Average,
			c.FirstValue, letter(c.FirstValue),
			c.LowestValue, letter(c.LowestValue),
			c.Size,
		)
	}
	a.logger.Debug("segments listed", zap.Int("segments", len(segments)))
	return tw.Flush()
}
