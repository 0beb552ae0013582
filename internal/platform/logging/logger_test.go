package logging

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// captureLogOutput captures a single log entry emitted by logFn and returns it as a map.
func captureLogOutput(t *testing.T, logFn func(*zap.Logger)) map[string]any {
	t.Helper()

	resetLoggerForTest()
	t.Cleanup(resetLoggerForTest)

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	defer func() { _ = r.Close() }()

	origStdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = origStdout }()

	logger := Logger()
	logFn(logger)
	_ = logger.Sync()

	if closeErr := w.Close(); closeErr != nil {
		t.Fatalf("failed to close writer: %v", closeErr)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read log output: %v", err)
	}

	line := strings.TrimSpace(string(data))
	if line == "" {
		t.Fatalf("expected log output, got empty string")
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("failed to unmarshal log JSON %q: %v", line, err)
	}
	return payload
}

// resetLoggerForTest clears the singleton so the next call rebuilds it against the current os.Stdout.
func resetLoggerForTest() {
	loggerOnce = sync.Once{}
	baseLogger = nil
	sugarLogger = nil
	loggerErr = nil
}

func TestLoggerStructuredOutput(t *testing.T) {
	payload := captureLogOutput(t, func(l *zap.Logger) {
		l.Info("server listening")
	})

	if got := payload["severity"]; got != "INFO" {
		t.Fatalf("expected severity INFO, got %v", got)
	}
	if _, exists := payload["level"]; exists {
		t.Fatal("did not expect level field")
	}
	if msg, ok := payload["message"].(string); !ok || msg != "server listening" {
		t.Fatalf("expected message 'server listening', got %v", payload["message"])
	}
	if svc := payload["service"]; svc != ServiceName {
		t.Fatalf("expected service %q, got %v", ServiceName, svc)
	}

	ts, ok := payload["timestamp"].(string)
	if !ok {
		t.Fatalf("expected timestamp string, got %T", payload["timestamp"])
	}
	if _, err := time.Parse(RFC3339Micros, ts); err != nil {
		t.Fatalf("timestamp is not RFC3339Micros: %v", err)
	}
	if caller, ok := payload["caller"].(string); !ok || !strings.Contains(caller, "logger_test.go") {
		t.Fatalf("expected caller to reference logger_test.go, got %v", payload["caller"])
	}
}

func TestSugarLoggerStructuredOutput(t *testing.T) {
	payload := captureLogOutput(t, func(*zap.Logger) {
		Sugar().Warnw("slow upstream", "latency_ms", 120)
	})

	if got := payload["severity"]; got != "WARNING" {
		t.Fatalf("expected severity WARNING, got %v", got)
	}
	if latency, ok := payload["latency_ms"].(float64); !ok || latency != 120 {
		t.Fatalf("expected latency_ms 120, got %v", payload["latency_ms"])
	}
}

// encodeEntry renders one entry with the production encoder config and decodes the JSON.
func encodeEntry(t *testing.T, entry zapcore.Entry) map[string]any {
	t.Helper()
	enc := zapcore.NewJSONEncoder(newConfig().EncoderConfig)
	buf, err := enc.EncodeEntry(entry, nil)
	if err != nil {
		t.Fatalf("encode entry: %v", err)
	}
	defer buf.Free()

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}
	return payload
}

func TestSeverityNames(t *testing.T) {
	want := map[zapcore.Level]string{
		zapcore.DebugLevel:  "DEBUG",
		zapcore.InfoLevel:   "INFO",
		zapcore.WarnLevel:   "WARNING",
		zapcore.ErrorLevel:  "ERROR",
		zapcore.DPanicLevel: "CRITICAL",
		zapcore.PanicLevel:  "ALERT",
		zapcore.FatalLevel:  "EMERGENCY",
		zapcore.Level(99):   "DEFAULT",
	}
	for level, severity := range want {
		payload := encodeEntry(t, zapcore.Entry{Level: level, Time: time.Now(), Message: "m"})
		if payload["severity"] != severity {
			t.Errorf("level %d: expected %s, got %v", level, severity, payload["severity"])
		}
	}
}

func TestTimestampIsUTCMicros(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	payload := encodeEntry(t, zapcore.Entry{
		Level:   zapcore.InfoLevel,
		Time:    time.Date(2024, 6, 15, 12, 30, 45, 123456000, loc),
		Message: "m",
	})

	if payload["timestamp"] != "2024-06-15T10:30:45.123456Z" {
		t.Fatalf("unexpected timestamp: %v", payload["timestamp"])
	}
}

func TestLoggerSingletonAndSugarShareCore(t *testing.T) {
	resetLoggerForTest()
	t.Cleanup(resetLoggerForTest)

	if Logger() != Logger() {
		t.Fatal("expected Logger() to return the same instance")
	}
	if Sugar().Desugar().Core() != Logger().Core() {
		t.Fatal("expected Logger and Sugar to share the same core")
	}
	if err := Err(); err != nil {
		t.Fatalf("expected nil init error, got %v", err)
	}
}

func TestDebugLevelNotLogged(t *testing.T) {
	resetLoggerForTest()
	t.Cleanup(resetLoggerForTest)

	if Logger().Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("debug level should be disabled in production config")
	}
}
