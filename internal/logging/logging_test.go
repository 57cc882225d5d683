package logging

import (
	"bytes"
	"testing"
	"time"

	"github.com/Graylog2/go-gelf/gelf"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"Warning": zerolog.WarnLevel,
		"ERROR":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"loud":    zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNew_ConsoleFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l, closer, err := New(Options{Level: "warn", Console: &buf, NoColor: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer.Close() })

	l.Info().Msg("quiet")
	l.Warn().Str("side", "alien").Msg("loud")

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "loud")
	assert.Contains(t, out, "side=alien")
}

func TestNew_GraylogWriter(t *testing.T) {
	var buf bytes.Buffer
	// UDP dial to loopback succeeds without a listener.
	l, closer, err := New(Options{
		Level:          "info",
		Console:        &buf,
		GraylogEnabled: true,
		GraylogAddress: "127.0.0.1:12201",
	})
	require.NoError(t, err)
	l.Info().Msg("to both")
	assert.Contains(t, buf.String(), "to both")
	assert.NoError(t, closer.Close())
}

func TestNew_GraylogBadAddress(t *testing.T) {
	_, closer, err := New(Options{GraylogEnabled: true, GraylogAddress: "no-port"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating graylog writer")
	assert.NotNil(t, closer)
}

func TestNew_GraylogWritesWithoutErrors(t *testing.T) {
	var writeErrs []error
	prev := zerolog.ErrorHandler
	zerolog.ErrorHandler = func(err error) { writeErrs = append(writeErrs, err) }
	t.Cleanup(func() { zerolog.ErrorHandler = prev })

	// A listener keeps the kernel from reporting the port as unreachable.
	r, err := gelf.NewReader("127.0.0.1:0")
	require.NoError(t, err)

	var buf bytes.Buffer
	l, closer, err := New(Options{
		Level:          "info",
		Console:        &buf,
		NoColor:        true,
		GraylogEnabled: true,
		GraylogAddress: r.Addr(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer.Close() })

	for i := 0; i < 3; i++ {
		l.Info().Int("round", i).Msg("tick")
	}
	assert.Empty(t, writeErrs)
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("tick")))
}

func TestGelfLevelWriter_MessageFields(t *testing.T) {
	r, err := gelf.NewReader("127.0.0.1:0")
	require.NoError(t, err)

	l, closer, err := New(Options{
		Level:          "debug",
		Console:        &bytes.Buffer{},
		GraylogEnabled: true,
		GraylogAddress: r.Addr(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = closer.Close() })

	got := make(chan *gelf.Message, 1)
	go func() {
		m, err := r.ReadMessage()
		if err == nil {
			got <- m
		}
	}()

	l.Warn().Str("side", "alien").Int("frame", 42).Msg("hit")

	select {
	case m := <-got:
		assert.Equal(t, gelf.LOG_WARNING, m.Level)
		assert.Equal(t, "hit", m.Short)
		assert.Equal(t, "alien", m.Extra["_side"])
		assert.EqualValues(t, 42, m.Extra["_frame"])
		assert.NotContains(t, m.Extra, "_level")
		assert.NotContains(t, m.Extra, "_message")
	case <-time.After(2 * time.Second):
		t.Fatal("no GELF message received")
	}
}

func TestSyslogLevel(t *testing.T) {
	assert.Equal(t, gelf.LOG_DEBUG, syslogLevel(zerolog.TraceLevel))
	assert.Equal(t, gelf.LOG_DEBUG, syslogLevel(zerolog.DebugLevel))
	assert.Equal(t, gelf.LOG_INFO, syslogLevel(zerolog.InfoLevel))
	assert.Equal(t, gelf.LOG_WARNING, syslogLevel(zerolog.WarnLevel))
	assert.Equal(t, gelf.LOG_ERR, syslogLevel(zerolog.ErrorLevel))
	assert.Equal(t, gelf.LOG_CRIT, syslogLevel(zerolog.FatalLevel))
	assert.Equal(t, gelf.LOG_INFO, syslogLevel(zerolog.NoLevel))
}
