package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"calltrace/internal/profile"
	"calltrace/internal/replay"
	"calltrace/internal/sink"
)

var (
	replayConfigPath  string
	replaySinkPath    string
	replaySinkMode    string
	replaySinkFormat  string
	replayRingSize    int
	replayJobs        int
	replayUI          string
	replayTraceNative bool
	replayArgs        bool
	replayFilename    bool
	replayLine        bool
	replayFullPath    bool
	replayVerbosity   int
	replayOnlyFuncs   []string
	replayOnlyFiles   []string
	replaySkipFuncs   []string
	replaySkipFiles   []string
)

func init() {
	f := replayCmd.Flags()
	f.StringVar(&replayConfigPath, "config", "", "profile config file (default: calltrace.toml if present)")
	f.StringVar(&replaySinkPath, "sink", "-", "region output path ('-' for stderr)")
	f.StringVar(&replaySinkMode, "sink-mode", "stream", "region storage mode (stream|ring|both)")
	f.StringVar(&replaySinkFormat, "sink-format", "auto", "region output format (auto|text|ndjson)")
	f.IntVar(&replayRingSize, "ring-size", 4096, "ring capacity for ring/both modes")
	f.IntVar(&replayJobs, "jobs", 0, "max concurrently replayed threads (0 = no limit)")
	f.StringVar(&replayUI, "ui", "auto", "interactive progress (auto|on|off)")
	f.BoolVar(&replayTraceNative, "trace-native", false, "trace native (c_call/c_return) events")
	f.BoolVar(&replayArgs, "include-args", false, "encode function arguments in labels")
	f.BoolVar(&replayFilename, "include-filename", false, "encode source files in labels")
	f.BoolVar(&replayLine, "include-line", false, "encode line numbers in labels")
	f.BoolVar(&replayFullPath, "full-filepath", false, "use full paths instead of basenames")
	f.IntVar(&replayVerbosity, "verbosity", 0, "diagnostic verbosity level")
	f.StringSliceVar(&replayOnlyFuncs, "only-functions", nil, "function regexes to collect exclusively")
	f.StringSliceVar(&replayOnlyFiles, "only-filenames", nil, "filename regexes to collect exclusively")
	f.StringSliceVar(&replaySkipFuncs, "skip-functions", nil, "function regexes to filter out")
	f.StringSliceVar(&replaySkipFiles, "skip-filenames", nil, "filename regexes to filter out")
}

var replayCmd = &cobra.Command{
	Use:   "replay <stream.ctr>",
	Short: "Replay a recorded event stream through the tracer",
	Long: `Replay feeds a recorded interpreter event stream back through the
dispatcher, one goroutine per recorded thread, and reports the resulting
begin/end regions to the configured sink.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	mode, err := sink.ParseMode(replaySinkMode)
	if err != nil {
		return err
	}
	format, err := sink.ParseFormat(replaySinkFormat)
	if err != nil {
		return err
	}
	ui, err := readUIMode(replayUI)
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open stream: %w", err)
	}
	defer f.Close()

	reader, err := replay.NewReader(f)
	if err != nil {
		return err
	}
	records, err := replay.ReadAll(reader)
	if err != nil {
		return err
	}

	snk, err := sink.New(sink.Config{
		Mode:       mode,
		Format:     format,
		OutputPath: replaySinkPath,
		RingSize:   replayRingSize,
	})
	if err != nil {
		return err
	}

	p := profile.New(snk)
	if err := applyProfileConfig(cmd, p); err != nil {
		return err
	}

	p.Initialize()
	defer p.Finalize()

	replayErr := runReplayEvents(cmd, args[0], records, p, shouldUseTUI(ui))

	if err := snk.Flush(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "sink: flush error: %v\n", err)
	}
	if ring := sink.RingOf(snk); ring != nil {
		if err := ring.Dump(cmd.OutOrStdout(), sink.FormatText); err != nil {
			return err
		}
	}
	if err := snk.Close(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "sink: close error: %v\n", err)
	}
	if replayErr != nil {
		return replayErr
	}

	if !quiet {
		_, threads := replay.SplitByThread(records)
		okColor := color.New(color.FgGreen)
		okColor.Fprintf(cmd.OutOrStdout(), "replayed %d events across %d threads (%s)\n",
			len(records), len(threads), reader.Header().Program)
	}
	return nil
}

// applyProfileConfig layers configuration: defaults, then the TOML profile
// if one is given (or calltrace.toml exists), then explicit flags.
func applyProfileConfig(cmd *cobra.Command, p *profile.Profiler) error {
	path := replayConfigPath
	if path == "" {
		if _, err := os.Stat("calltrace.toml"); err == nil {
			path = "calltrace.toml"
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	if path != "" {
		if err := profile.LoadFile(path, p); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("trace-native") {
		p.SetTraceNative(replayTraceNative)
	}
	if flags.Changed("include-args") {
		p.SetIncludeArgs(replayArgs)
	}
	if flags.Changed("include-filename") {
		p.SetIncludeFilename(replayFilename)
	}
	if flags.Changed("include-line") {
		p.SetIncludeLine(replayLine)
	}
	if flags.Changed("full-filepath") {
		p.SetFullFilepath(replayFullPath)
	}
	if flags.Changed("verbosity") {
		p.SetVerbose(replayVerbosity)
	}
	if flags.Changed("only-functions") {
		p.SetOnlyFunctions(replayOnlyFuncs)
	}
	if flags.Changed("only-filenames") {
		p.SetOnlyFilenames(replayOnlyFiles)
	}
	if flags.Changed("skip-functions") {
		p.SetSkipFunctions(replaySkipFuncs)
	}
	if flags.Changed("skip-filenames") {
		p.SetSkipFilenames(replaySkipFiles)
	}
	return nil
}
