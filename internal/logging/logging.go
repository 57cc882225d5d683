// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Graylog2/go-gelf/gelf"
	"github.com/rs/zerolog"
)

// Options controls New.
type Options struct {
	Level          string // TRACE, DEBUG, INFO, WARN or ERROR; case-insensitive
	Console        io.Writer
	NoColor        bool
	GraylogEnabled bool
	GraylogAddress string
}

// ParseLevel maps a level name to a zerolog level. Unknown names fall back
// to info.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New returns a logger writing human-readable lines to the console and,
// when enabled, GELF messages to Graylog. The returned closer releases the
// GELF connection and is never nil.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	out := opts.Console
	if out == nil {
		out = os.Stderr
	}
	writers := []io.Writer{zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: opts.NoColor}}

	var closer io.Closer = nopCloser{}
	if opts.GraylogEnabled {
		gw, err := gelf.NewWriter(opts.GraylogAddress)
		if err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("creating graylog writer: %w", err)
		}
		writers = append(writers, newGelfLevelWriter(gw))
		closer = gw
	}

	mlw := zerolog.MultiLevelWriter(writers...)
	l := zerolog.New(mlw).Level(ParseLevel(opts.Level)).With().Timestamp().Logger()
	return l, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
