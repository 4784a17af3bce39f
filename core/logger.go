package core

import "log"

// Logger is any service that can log messages with additional context args.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}

type stdLogger struct {
	std *log.Logger
}

var _ Logger = (*stdLogger)(nil)

func NewStdLogger(std *log.Logger) Logger {
	return &stdLogger{std: std}
}

func (l stdLogger) print(msg string, args []interface{}) {
	l.std.Println(msg)
	for _, arg := range args {
		l.std.Printf("%+v\n", arg)
	}
}

func (l stdLogger) Debug(msg string, args ...interface{}) { l.print(msg, args) }
func (l stdLogger) Info(msg string, args ...interface{})  { l.print(msg, args) }
func (l stdLogger) Warn(msg string, args ...interface{})  { l.print(msg, args) }
func (l stdLogger) Error(msg string, args ...interface{}) { l.print(msg, args) }
func (l stdLogger) Fatal(msg string, args ...interface{}) {
	l.print(msg, args)
	l.std.Fatal(msg)
}
