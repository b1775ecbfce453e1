package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a default calltrace.toml",
	Long: `Initialize a tracing profile by writing a calltrace.toml with the stock
filter sets. If [dir] is omitted, the current directory is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}

	if st, err := os.Stat(target); err != nil {
		return err
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	path := filepath.Join(target, "calltrace.toml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("profile already initialized: %s exists", path)
	}

	if err := os.WriteFile(path, []byte(defaultProfileTOML()), 0o600); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized tracing profile in %s\n", path)
	return nil
}

// defaultProfileTOML returns the stock calltrace.toml contents: every
// profile knob at its default, with the default skip sets spelled out so
// they are easy to trim or extend.
func defaultProfileTOML() string {
	return `# calltrace tracing profile
[profile]
trace_native = false
include_internal = false
include_args = false
include_line = false
include_filename = false
full_filepath = false
base_module_path = ""
verbosity = 0

[filters]
only_functions = []
only_filenames = []
skip_functions = [
    "^(FILE|FUNC|LINE)$",
    "^get_fcode$",
    "^_(_exit__|handle_fromlist|shutdown|get_sep)$",
    "^is(function|class)$",
    "^basename$",
    "^<.*>$",
]
skip_filenames = [
    "(__init__|__main__|functools|encoder|decoder|_pylab_helpers|threading).py$",
    "^<.*>$",
]
`
}
