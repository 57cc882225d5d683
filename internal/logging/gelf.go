package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Graylog2/go-gelf/gelf"
	"github.com/rs/zerolog"
)

// gelfLevelWriter turns zerolog JSON events into GELF messages so Graylog
// sees the real severity and each field as its own attribute.
type gelfLevelWriter struct {
	w    *gelf.Writer
	host string
}

func newGelfLevelWriter(w *gelf.Writer) *gelfLevelWriter {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	return &gelfLevelWriter{w: w, host: host}
}

func (g *gelfLevelWriter) Write(p []byte) (int, error) {
	return g.WriteLevel(zerolog.NoLevel, p)
}

// WriteLevel sends one event. It reports len(p) on success so
// zerolog.MultiLevelWriter never sees a short write.
func (g *gelfLevelWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	msg, err := g.message(level, p)
	if err != nil {
		return 0, err
	}
	if err := g.w.WriteMessage(msg); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (g *gelfLevelWriter) message(level zerolog.Level, p []byte) (*gelf.Message, error) {
	var fields map[string]interface{}
	if err := json.Unmarshal(p, &fields); err != nil {
		return nil, fmt.Errorf("decoding log event: %w", err)
	}

	m := &gelf.Message{
		Version:  "1.1",
		Host:     g.host,
		TimeUnix: float64(time.Now().UnixNano()) / float64(time.Second),
		Level:    syslogLevel(level),
		Facility: g.w.Facility,
		Extra:    make(map[string]interface{}, len(fields)),
	}
	for k, v := range fields {
		switch k {
		case zerolog.MessageFieldName:
			m.Short = fmt.Sprint(v)
		case zerolog.LevelFieldName, zerolog.TimestampFieldName:
		case "id":
			// _id is reserved by GELF.
			m.Extra["_event_id"] = v
		default:
			m.Extra["_"+k] = v
		}
	}
	if m.Short == "" {
		m.Short = "event"
		if l := level.String(); l != "" {
			m.Short = l
		}
	}
	return m, nil
}

func syslogLevel(level zerolog.Level) int32 {
	switch level {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		return gelf.LOG_DEBUG
	case zerolog.WarnLevel:
		return gelf.LOG_WARNING
	case zerolog.ErrorLevel:
		return gelf.LOG_ERR
	case zerolog.FatalLevel:
		return gelf.LOG_CRIT
	case zerolog.PanicLevel:
		return gelf.LOG_ALERT
	default:
		return gelf.LOG_INFO
	}
}
