package logger

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"ruins-game/internal/gameconfig"
)

// DefaultMaxLines bounds the in-memory history shown in the HUD.
const DefaultMaxLines = 200

// Logger is the game's slog logger. Records go to the log file (when configured) and to an
// in-memory ring of recent lines the HUD reads.
type Logger struct {
	*slog.Logger

	file *os.File
	ring *ring
}

// New builds a logger from cfg. An empty cfg.File logs to memory only. Unknown levels fall back
// to info.
func New(cfg gameconfig.Logging) (*Logger, error) {
	l := &Logger{ring: newRing(DefaultMaxLines)}

	var w io.Writer = l.ring
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
		l.file = f
		w = io.MultiWriter(f, l.ring)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	l.Logger = slog.New(h)
	return l, nil
}

// Lines returns a copy of the most recent lines, oldest first.
func (l *Logger) Lines() []string {
	return l.ring.lines()
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

type ring struct {
	mu  sync.Mutex
	buf []string
	max int
}

func newRing(max int) *ring {
	return &ring{max: max}
}

// Write stores each newline-terminated line of p. Handlers write whole records per call.
func (r *ring) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, line := range bytes.Split(bytes.TrimRight(p, "\n"), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		r.buf = append(r.buf, string(line))
	}
	if over := len(r.buf) - r.max; over > 0 {
		r.buf = append(r.buf[:0], r.buf[over:]...)
	}
	return len(p), nil
}

func (r *ring) lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.buf))
	copy(out, r.buf)
	return out
}
