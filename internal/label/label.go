// Package label derives the display label for a traced call site and
// interns labels per tracing thread.
package label

import (
	"strconv"
	"strings"
)

// Options selects which call-site details the label carries.
type Options struct {
	IncludeArgs     bool // append formatted bound arguments
	IncludeFilename bool // append the source file in brackets
	IncludeLine     bool // append the line number
	FullFilepath    bool // use the full path instead of the basename
}

// Basename strips everything up to the last '/'. Event source paths use
// forward slashes regardless of host platform.
func Basename(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// Build produces the final region label for a call site.
//
// The bracket opens before the arguments and closes after them, so that
// name, arguments and filename group visually:
//
//	foo                      (no details)
//	foo:10                   (line only)
//	[foo][bar.py:10]         (filename + line)
//	[foo(x=1)][bar.py:10]    (args + filename + line)
//
// An empty function name yields an empty label; callers must skip the
// event instead of recording an anonymous region.
func Build(opts Options, funcName, base, full string, line int, args string) string {
	if funcName == "" {
		return ""
	}

	var b strings.Builder
	bracket := opts.IncludeFilename
	if bracket {
		b.WriteByte('[')
	}
	b.WriteString(funcName)
	if opts.IncludeArgs {
		b.WriteString(args)
	}
	if bracket {
		b.WriteByte(']')
	}
	if opts.IncludeFilename {
		b.WriteByte('[')
		if opts.FullFilepath {
			b.WriteString(full)
		} else {
			b.WriteString(base)
		}
	}
	switch {
	case opts.IncludeLine && opts.IncludeFilename:
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(line))
		b.WriteByte(']')
	case opts.IncludeLine:
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(line))
	case opts.IncludeFilename:
		b.WriteByte(']')
	}
	return b.String()
}
