package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"subbom/internal/scan"
	"subbom/internal/workflow"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "convert [dir]",
		Short: "Back up and convert subtitle files to UTF-8 with BOM",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConversion(cmd, ctx, args)
		},
	}
}

func runConversion(cmd *cobra.Command, ctx *commandContext, args []string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := ctx.logger()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() {
		if cerr := closeLog(); cerr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "close log file: %v\n", cerr)
		}
	}()

	out := cmd.OutOrStdout()
	_, err = workflow.Run(workflow.Options{
		Dir:         dirArg(args),
		ImplicitDir: len(args) == 0,
		LockDir:     cfg.Paths.LockDir,
		Logger:      logger,
		Observer:    newConsoleObserver(out, ctx.colorize(out)),
	})
	return err
}

// consoleObserver prints one status line per file per phase.
type consoleObserver struct {
	out      io.Writer
	colorize bool
}

func newConsoleObserver(out io.Writer, colorize bool) *consoleObserver {
	return &consoleObserver{out: out, colorize: colorize}
}

func (o *consoleObserver) line(message string, kind statusKind) {
	fmt.Fprintln(o.out, renderStatusLine(message, kind, o.colorize))
}

func (o *consoleObserver) NoFiles(string) {
	fmt.Fprintln(o.out, "No subtitle files detected.")
}

func (o *consoleObserver) BackupPrepared(dir string, err error) {
	o.line(fmt.Sprintf("Creating backup in `%s` directory", filepath.Base(dir)), kindForError(err))
}

func (o *consoleObserver) FileBackedUp(c scan.Candidate, err error) {
	o.line(fmt.Sprintf("  Copying %s to backup directory", c.Name), kindForError(err))
}

func (o *consoleObserver) ConvertStarted(int) {
	fmt.Fprintln(o.out)
	fmt.Fprintln(o.out, "Converting files:")
}

func (o *consoleObserver) FileConverted(f workflow.FileReport) {
	o.line(fmt.Sprintf("  Converting file %s, encoding: %s", f.Name, f.Encoding), kindForStatus(f.Status))
}

func (o *consoleObserver) Finished(r workflow.Report) {
	if len(r.Files) == 0 {
		return
	}
	s := r.Summary()
	rows := [][]string{
		{"Files", strconv.Itoa(s.Files)},
		{"Backed up", strconv.Itoa(s.BackedUp)},
		{"Backup failed", strconv.Itoa(s.BackupFailed)},
		{"Converted", strconv.Itoa(s.Converted)},
		{"Skipped", strconv.Itoa(s.Skipped)},
		{"Failed", strconv.Itoa(s.Failed)},
	}
	fmt.Fprintln(o.out)
	fmt.Fprintln(o.out, renderTable([]string{"Result", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))
}

var _ workflow.Observer = (*consoleObserver)(nil)
