package profile

import (
	"errors"
	"strings"

	"calltrace/internal/event"
	"calltrace/internal/label"
)

// Handle is the tracing callback. The embedding layer registers it as the
// interpreter's global trace hook; it runs synchronously on whatever
// goroutine executes the traced code.
//
// Rejections (filtered events, unknown kinds, ledger misses) are silent.
// Only two things return an error: a malformed filter pattern, and an
// argument introspection failure other than event.ErrArgsUnsupported.
func (p *Profiler) Handle(ev event.Event) error {
	ts := p.state()

	// Label and argument formatting can itself run traced code. A nested
	// invocation on the same goroutine must be a complete no-op, and the
	// guard has to clear on every exit path, error returns included.
	if ts.dispatching {
		return nil
	}
	ts.dispatching = true
	defer func() { ts.dispatching = false }()

	if ev.Frame == nil {
		return nil
	}

	kind, err := event.ParseKind(ev.What)
	if err != nil {
		p.diagf(ts, 2, "ignoring event kind %q", ev.What)
		return nil
	}

	if kind.IsNative() && !ts.cfg.TraceNative {
		p.diagf(ts, 2, "ignoring native %s", ev.What)
		return nil
	}

	fn := ev.Frame.Function()

	if !ts.cfg.OnlyFunctions.Empty() {
		ok, err := ts.cfg.OnlyFunctions.Matches(fn)
		if err != nil {
			return err
		}
		if !ok {
			p.diagf(ts, 1, "skipping non-included function: %s", fn)
			return nil
		}
	}
	if ok, err := ts.cfg.SkipFunctions.Matches(fn); err != nil {
		return err
	} else if ok {
		p.diagf(ts, 1, "skipping designated function: %q", fn)
		return nil
	}

	full := ev.Frame.File()
	base := label.Basename(full)

	if !ts.cfg.IncludeInternal && ts.cfg.BaseModulePath != "" &&
		strings.HasPrefix(full, ts.cfg.BaseModulePath) {
		p.diagf(ts, 2, "skipping internal function: %s", fn)
		return nil
	}

	if !ts.cfg.OnlyFilenames.Empty() {
		ok, err := ts.cfg.OnlyFilenames.Matches(full)
		if err != nil {
			return err
		}
		if !ok {
			p.diagf(ts, 2, "skipping non-included file: %s", full)
			return nil
		}
	}
	if ok, err := ts.cfg.SkipFilenames.Matches(full); err != nil {
		return err
	} else if ok {
		p.diagf(ts, 2, "skipping designated file: %s", full)
		return nil
	}

	var args string
	if ts.cfg.IncludeArgs || ts.cfg.Verbose > 3 {
		args, err = ev.Frame.FormatArgs()
		if err != nil {
			p.diagf(ts, 1, "argument introspection failed: %v", err)
			if !errors.Is(err, event.ErrArgsUnsupported) {
				return err
			}
			args = ""
		}
	}

	p.diagf(ts, 3, "%8s | %s%s | %s | %s", ev.What, fn, args, base, full)

	lbl := label.Build(ts.cfg.labelOptions(), fn, base, full, ev.Frame.Line(), args)
	if lbl == "" {
		return nil
	}
	lbl = ts.labels.Intern(lbl)

	depth := ts.nextDepth(kind)

	if kind.IsCall() {
		ts.ledger.Push(depth, lbl, ts.sink)
	} else {
		// A miss means tracing attached mid-call; dropping the end is
		// preferable to an unbalanced region.
		ts.ledger.Pop(depth, lbl, ts.sink)
	}
	return nil
}
