package main

import (
	"github.com/spf13/cobra"
	"github.com/veedubyou/track-splitter/src/shared/config"
	"github.com/veedubyou/track-splitter/src/shared/config/dev"
	"github.com/veedubyou/track-splitter/src/shared/config/envvar"
	"github.com/veedubyou/track-splitter/src/shared/lib/executor"
	"github.com/veedubyou/track-splitter/src/shared/split/pipeline"
)

type dirFlags struct {
	input   string
	output  string
	scratch string
}

type binPaths struct {
	demucs   string
	spleeter string
	ffmpeg   string
}

// commandContext is what the commands share: the flags, and how binaries are found and run
type commandContext struct {
	dirs     dirFlags
	executor executor.Executor
	bins     func() binPaths
}

func lookupBinPaths() binPaths {
	return binPaths{
		demucs:   config.DemucsPath(),
		spleeter: config.SpleeterPath(),
		ffmpeg:   config.FFmpegPath(),
	}
}

func newRootCommand() *cobra.Command {
	return newRootCommandWith(&commandContext{
		executor: executor.BinaryFileExecutor{},
		bins:     lookupBinPaths,
	})
}

func newRootCommandWith(ctx *commandContext) *cobra.Command {
	dirs := &ctx.dirs

	rootCmd := &cobra.Command{
		Use:           "track-splitter",
		Short:         "Split tracks into vocals and karaoke",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dirs.input, "input-dir",
		envvar.Get(envvar.INPUT_DIR_PATH, dev.InputDirPath), "Directory holding the tracks to split")
	rootCmd.PersistentFlags().StringVar(&dirs.output, "output-dir",
		envvar.Get(envvar.OUTPUT_DIR_PATH, dev.OutputDirPath), "Directory the vocals and karaoke tracks are placed in")
	rootCmd.PersistentFlags().StringVar(&dirs.scratch, "scratch-dir",
		envvar.Get(envvar.SCRATCH_DIR_PATH, dev.ScratchDirPath), "Directory for engine scratch output")

	rootCmd.AddCommand(newListCommand(dirs))
	rootCmd.AddCommand(newSeparateCommand(ctx))

	return rootCmd
}

// the CLI runs on local disk only, no ledger, mirror or events
func (c *commandContext) newPipeline() pipeline.Pipeline {
	bins := c.bins()

	return pipeline.New(pipeline.Config{
		DynamoConfig:       config.NoDynamo{},
		CloudStorageConfig: config.NoCloudStorage{},
		EventsConfig:       config.NoEvents{},
		DemucsBinPath:      bins.demucs,
		SpleeterBinPath:    bins.spleeter,
		FFmpegBinPath:      bins.ffmpeg,
		InputDirPath:       c.dirs.input,
		OutputDirPath:      c.dirs.output,
		ScratchDirPath:     c.dirs.scratch,
	}, pipeline.WithExecutor(c.executor))
}
