package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"calltrace/internal/replay"
)

var inspectLimit int

func init() {
	inspectCmd.Flags().IntVar(&inspectLimit, "limit", 0, "stop after N records (0 = all)")
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <stream.ctr>",
	Short: "Pretty-print a recorded event stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open stream: %w", err)
	}
	defer f.Close()

	reader, err := replay.NewReader(f)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	hdr := reader.Header()
	fmt.Fprintf(out, "program: %s\n", hdr.Program)
	fmt.Fprintf(out, "created: %s\n", hdr.CreatedAt.Format("2006-01-02T15:04:05Z07:00"))
	fmt.Fprintf(out, "schema:  v%d\n\n", hdr.Schema)

	count := 0
	for {
		rec, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		argsStr := ""
		if rec.HasArgs {
			argsStr = " " + rec.Args
		}
		fmt.Fprintf(out, "thread %3d | %8s | %s%s | %s:%d\n",
			rec.Thread, rec.What, rec.Func, argsStr, rec.File, rec.Line)
		count++
		if inspectLimit > 0 && count >= inspectLimit {
			break
		}
	}

	fmt.Fprintf(out, "\n%d records\n", count)
	return nil
}
