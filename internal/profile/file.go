package profile

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the calltrace.toml layout.
type fileConfig struct {
	Profile struct {
		TraceNative     bool   `toml:"trace_native"`
		IncludeInternal bool   `toml:"include_internal"`
		IncludeArgs     bool   `toml:"include_args"`
		IncludeLine     bool   `toml:"include_line"`
		IncludeFilename bool   `toml:"include_filename"`
		FullFilepath    bool   `toml:"full_filepath"`
		BaseModulePath  string `toml:"base_module_path"`
		Verbosity       int    `toml:"verbosity"`
	} `toml:"profile"`
	Filters struct {
		OnlyFunctions []string `toml:"only_functions"`
		OnlyFilenames []string `toml:"only_filenames"`
		SkipFunctions []string `toml:"skip_functions"`
		SkipFilenames []string `toml:"skip_filenames"`
	} `toml:"filters"`
}

// LoadFile applies a TOML profile onto p. Keys absent from the file keep
// their current values; a pattern-set key that is present replaces the
// whole set, matching the control surface's replace-whole-set semantics.
func LoadFile(path string, p *Profiler) error {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if meta.IsDefined("profile", "trace_native") {
		p.SetTraceNative(cfg.Profile.TraceNative)
	}
	if meta.IsDefined("profile", "include_internal") {
		p.SetIncludeInternal(cfg.Profile.IncludeInternal)
	}
	if meta.IsDefined("profile", "include_args") {
		p.SetIncludeArgs(cfg.Profile.IncludeArgs)
	}
	if meta.IsDefined("profile", "include_line") {
		p.SetIncludeLine(cfg.Profile.IncludeLine)
	}
	if meta.IsDefined("profile", "include_filename") {
		p.SetIncludeFilename(cfg.Profile.IncludeFilename)
	}
	if meta.IsDefined("profile", "full_filepath") {
		p.SetFullFilepath(cfg.Profile.FullFilepath)
	}
	if meta.IsDefined("profile", "base_module_path") {
		p.SetBaseModulePath(cfg.Profile.BaseModulePath)
	}
	if meta.IsDefined("profile", "verbosity") {
		p.SetVerbose(cfg.Profile.Verbosity)
	}

	if meta.IsDefined("filters", "only_functions") {
		p.SetOnlyFunctions(cfg.Filters.OnlyFunctions)
	}
	if meta.IsDefined("filters", "only_filenames") {
		p.SetOnlyFilenames(cfg.Filters.OnlyFilenames)
	}
	if meta.IsDefined("filters", "skip_functions") {
		p.SetSkipFunctions(cfg.Filters.SkipFunctions)
	}
	if meta.IsDefined("filters", "skip_filenames") {
		p.SetSkipFilenames(cfg.Filters.SkipFilenames)
	}

	return nil
}
