package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var logLevelFlag string
	var noColorFlag bool

	ctx := newCommandContext(&configFlag, &logLevelFlag, &noColorFlag)

	rootCmd := &cobra.Command{
		Use:   "subbom",
		Short: "Convert subtitle files to UTF-8 with BOM",
		Long: "subbom backs up the .ass, .ssa, .srt and .txt files of a directory into\n" +
			"an \"old\" subdirectory, then rewrites every file that is not already\n" +
			"UTF-8 with BOM. Without a subcommand it converts the current directory.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConversion(cmd, ctx, nil)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override logging.level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored status output")

	rootCmd.AddCommand(newConvertCommand(ctx))
	rootCmd.AddCommand(newDetectCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
