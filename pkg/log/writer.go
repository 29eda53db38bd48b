package log

import "strings"

// SimpleWriter is an io.Writer which logs every write as one message.
type SimpleWriter struct {
	logger    LoggerInterface
	printFunc func(a ...any)
}

// NewSimpleWriter returns a writer logging at level. Unknown levels log
// at info.
func NewSimpleWriter(logger LoggerInterface, level Level) *SimpleWriter {
	s := &SimpleWriter{logger: logger}
	switch level {
	case DebugLevel:
		s.printFunc = logger.Debug
	case LogLevel:
		s.printFunc = logger.Log
	case InfoLevel:
		s.printFunc = logger.Info
	case WarnLevel:
		s.printFunc = logger.Warn
	case SevereLevel:
		s.printFunc = logger.Severe
	case FatalLevel:
		s.printFunc = logger.Fatal
	default:
		s.printFunc = logger.Info
	}
	return s
}

func (s *SimpleWriter) Write(p []byte) (n int, err error) {
	s.printFunc(strings.TrimSuffix(strings.TrimSuffix(string(p), "\n"), "\r"))
	return len(p), nil
}
