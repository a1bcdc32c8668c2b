package mocks

import "sync"

// LoggerMock records log lines by level. It satisfies the Wails logger.Logger
// interface.
type LoggerMock struct {
	mu    sync.Mutex
	Lines map[string][]string
}

func NewLoggerMock() *LoggerMock {
	return &LoggerMock{Lines: make(map[string][]string)}
}

func (l *LoggerMock) record(level, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.Lines == nil {
		l.Lines = make(map[string][]string)
	}
	l.Lines[level] = append(l.Lines[level], message)
}

// Count returns how many lines were logged at level.
func (l *LoggerMock) Count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.Lines[level])
}

func (l *LoggerMock) Print(message string)   { l.record("print", message) }
func (l *LoggerMock) Trace(message string)   { l.record("trace", message) }
func (l *LoggerMock) Debug(message string)   { l.record("debug", message) }
func (l *LoggerMock) Info(message string)    { l.record("info", message) }
func (l *LoggerMock) Warning(message string) { l.record("warning", message) }
func (l *LoggerMock) Error(message string)   { l.record("error", message) }
func (l *LoggerMock) Fatal(message string)   { l.record("fatal", message) }
