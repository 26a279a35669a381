package log

import (
	"bytes"
	"net/url"
	"strings"
	"sync"
	"testing"

	qt "github.com/frankban/quicktest"
	"go.uber.org/zap"
)

type bufferSink struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *bufferSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *bufferSink) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func (*bufferSink) Sync() error  { return nil }
func (*bufferSink) Close() error { return nil }

var (
	testSink     = &bufferSink{}
	registerOnce sync.Once
)

func captureLogs(t *testing.T, level string) *bufferSink {
	t.Helper()
	registerOnce.Do(func() {
		err := zap.RegisterSink("logtest", func(*url.URL) (zap.Sink, error) { return testSink, nil })
		qt.Assert(t, err, qt.IsNil)
	})
	testSink.mu.Lock()
	testSink.buf.Reset()
	testSink.mu.Unlock()
	Init(level, "logtest://")
	t.Cleanup(func() { Init("error", "stderr") })
	return testSink
}

func TestLevelFiltering(t *testing.T) {
	c := qt.New(t)
	sink := captureLogs(t, "warn")

	Debugw("hidden debug", "k", 1)
	Infof("hidden info %d", 2)
	Warnw("shown warning", "path", "/tmp/x")
	Errorf("shown error: %v", "boom")

	out := sink.String()
	c.Assert(out, qt.Not(qt.Contains), "hidden")
	c.Assert(out, qt.Contains, "shown warning")
	c.Assert(out, qt.Contains, "path")
	c.Assert(out, qt.Contains, "shown error: boom")
}

func TestDebugIncludesFields(t *testing.T) {
	c := qt.New(t)
	sink := captureLogs(t, "debug")

	Debugw("stream encrypted", "chunks", 3, "bytes", 1024)
	lines := strings.Split(strings.TrimSpace(sink.String()), "\n")
	last := lines[len(lines)-1]
	c.Assert(last, qt.Contains, "DEBUG")
	c.Assert(last, qt.Contains, "stream encrypted")
	c.Assert(last, qt.Contains, `"chunks": 3`)
}

func TestValidLevel(t *testing.T) {
	c := qt.New(t)
	for _, l := range []string{"debug", "info", "warn", "error", "fatal"} {
		c.Assert(ValidLevel(l), qt.IsTrue, qt.Commentf("level %s", l))
	}
	c.Assert(ValidLevel("verbose"), qt.IsFalse)
	c.Assert(ValidLevel(""), qt.IsFalse)
}
