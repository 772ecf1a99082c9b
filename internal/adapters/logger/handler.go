package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/NyanCAD/amscrcuits/internal/ui/style"
	"github.com/muesli/termenv"
)

// Attribute keys the handler lifts out of the key=value list.
const (
	// AttrSimulator names the simulator a line belongs to.
	AttrSimulator = "simulator"
	// AttrHierarchy is an instance path such as tb/buf/inv1.
	AttrHierarchy = "hierarchy"
	// AttrCycle is an entity cycle such as a -> b -> a.
	AttrCycle = "cycle"
	// AttrCached marks a netlist served from the cache.
	AttrCached = "cached"
)

// PrettyHandler is a slog.Handler that writes one colored line per record.
// Simulator and hierarchy attributes become a "ngspice tb/buf/inv1: " prefix,
// a cycle and a cache hit become parenthesised suffixes, and the remaining
// attributes follow as key=value pairs.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a PrettyHandler writing to w.
// Colors are disabled when NO_COLOR is set.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   termenv.NewOutput(w, termenv.WithProfile(colorProfile()), termenv.WithTTY(true)),
		level: level,
	}
}

func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// line collects the parts of one output line.
type line struct {
	simulator string
	hierarchy string
	cycle     string
	cached    bool
	pairs     []string
}

func (l *line) add(group string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if group == "" {
		switch attr.Key {
		case AttrSimulator:
			l.simulator = attr.Value.String()
			return
		case AttrHierarchy:
			l.hierarchy = attr.Value.String()
			return
		case AttrCycle:
			l.cycle = attr.Value.String()
			return
		case AttrCached:
			if attr.Value.Kind() == slog.KindBool {
				l.cached = attr.Value.Bool()
				return
			}
		}
	}
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	l.pairs = append(l.pairs, key+"="+attr.Value.String())
}

func (l *line) render(msg string) string {
	var b strings.Builder
	scope := strings.TrimSpace(l.simulator + " " + l.hierarchy)
	if scope != "" {
		b.WriteString(scope + ": ")
	}
	b.WriteString(msg)
	if l.cycle != "" {
		b.WriteString(" (cycle " + l.cycle + ")")
	}
	if l.cached {
		b.WriteString(" (cached)")
	}
	if len(l.pairs) > 0 {
		b.WriteString(" " + strings.Join(l.pairs, " "))
	}
	return b.String()
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var l line
	for _, attr := range h.attrs {
		l.add(h.group, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		l.add(h.group, attr)
		return true
	})
	msg := l.render(r.Message)

	var color termenv.Color
	switch {
	case r.Level >= slog.LevelError:
		msg = style.Cross + " " + msg
		color = termenv.RGBColor(string(style.Red))
	case r.Level >= slog.LevelWarn:
		msg = style.Warning + " " + msg
		color = termenv.RGBColor(string(style.Yellow))
	case l.cached:
		color = termenv.RGBColor(string(style.Green))
	default:
		color = termenv.RGBColor(string(style.Slate))
	}

	_, err := h.out.WriteString(h.out.String(msg).Foreground(color).String() + "\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	newAttrs = append(newAttrs, h.attrs...)
	newAttrs = append(newAttrs, attrs...)
	return &PrettyHandler{out: h.out, level: h.level, attrs: newAttrs, group: h.group}
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return &PrettyHandler{out: h.out, level: h.level, attrs: h.attrs, group: name}
}
