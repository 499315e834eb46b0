package main

import (
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/spf13/cobra"
	"github.com/veedubyou/track-splitter/src/cli/internal/inputs"
	splitentity "github.com/veedubyou/track-splitter/src/shared/split/entity"
	splitusecase "github.com/veedubyou/track-splitter/src/shared/split/usecase"
)

func newSeparateCommand(ctx *commandContext) *cobra.Command {
	var engineFlag string
	var qualityFlag string

	cmd := &cobra.Command{
		Use:   "separate <name|number|path>",
		Short: "Split a track into vocals and karaoke",
		Long: `Split a track into vocals and karaoke.

The track is looked up in this order: a path to an existing file, a file name
in the input directory, a name without extension tried as mp3, wav, flac, ogg
and m4a, and last the number shown by "list".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engineType, err := splitentity.MatchEngineType(engineFlag)
			if err != nil {
				return err
			}

			inputPath, err := inputs.Find(ctx.dirs.input, args[0])
			if err != nil {
				return err
			}

			splitPipeline := ctx.newPipeline()
			defer splitPipeline.Close()

			log.WithFields(log.Fields{
				"input":   inputPath,
				"engine":  engineType,
				"quality": qualityFlag,
			}).Info("Separating")

			started := time.Now()
			outcome, err := splitPipeline.Usecase.Split(cmd.Context(), splitusecase.SplitRequest{
				InputPath: inputPath,
				Engine:    string(engineType),
				Quality:   qualityFlag,
			})
			if err != nil {
				return err
			}

			vocalsPath, karaokePath := outcome.Result.Paths()
			log.Infof("Separated in %s", time.Since(started).Round(time.Second))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Vocals:  %s\n", vocalsPath)
			fmt.Fprintf(out, "Karaoke: %s\n", karaokePath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&engineFlag, "engine", "e", string(splitentity.DemucsType),
		"Separation engine, any unique prefix of demucs or spleeter")
	cmd.Flags().StringVarP(&qualityFlag, "quality", "q", string(splitentity.HighQuality),
		"Output quality, high keeps wav and low encodes mono mp3")

	return cmd
}
