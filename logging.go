package main

import (
	"context"
	"io"
	"strings"
	"sync"

	"golang.org/x/exp/slog"
)

type LogHandler struct {
	h   slog.Handler
	mu  *sync.Mutex
	out io.Writer
}

func NewLogHandler(o io.Writer, opts *slog.HandlerOptions) *LogHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &LogHandler{
		out: o,
		h: slog.NewTextHandler(o, &slog.HandlerOptions{
			Level:     opts.Level,
			AddSource: opts.AddSource,
		}),
		mu: &sync.Mutex{},
	}
}

func (self *LogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return self.h.Enabled(ctx, level)
}

func (self *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LogHandler{h: self.h.WithAttrs(attrs), out: self.out, mu: self.mu}
}

func (self *LogHandler) WithGroup(name string) slog.Handler {
	return &LogHandler{h: self.h.WithGroup(name), out: self.out, mu: self.mu}
}

func (self *LogHandler) Handle(ctx context.Context, r slog.Record) error {
	strs := []string{r.Time.Format("2006/01/02 15:04:05"), r.Level.String(), r.Message}
	if r.NumAttrs() != 0 {
		r.Attrs(func(a slog.Attr) bool {
			strs = append(strs, a.Key+"="+a.Value.String())
			return true
		})
	}
	strs = append(strs, "\n")
	b := []byte(strings.Join(strs, " "))

	self.mu.Lock()
	defer self.mu.Unlock()
	_, err := self.out.Write(b)
	return err
}
