package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// RunLogger appends JSONL events describing one explorer run. The log is an
// artifact in its own right and is listed in the checksums file.
type RunLogger struct {
	file *os.File
	enc  *json.Encoder
}

type RunEvent struct {
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Event     string                 `json:"event"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
}

func NewRunLogger(path string) (*RunLogger, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil && dir != "." {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &RunLogger{
		file: f,
		enc:  json.NewEncoder(f),
	}, nil
}

func (l *RunLogger) Close() {
	if l == nil || l.file == nil {
		return
	}
	_ = l.file.Close()
}

func (l *RunLogger) Info(event string, fields map[string]interface{}) {
	l.log("INFO", event, fields)
}

func (l *RunLogger) Warn(event string, fields map[string]interface{}) {
	l.log("WARN", event, fields)
}

func (l *RunLogger) log(level, event string, fields map[string]interface{}) {
	if l == nil || l.enc == nil {
		return
	}
	_ = l.enc.Encode(RunEvent{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Level:     level,
		Event:     event,
		Fields:    fields,
	})
}
