package logging

import (
	"runtime"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	serviceContextKey = "serviceContext"
	sourceLocationKey = "logging.googleapis.com/sourceLocation"
)

type serviceContext struct {
	Name    string `json:"service"`
	Version string `json:"version"`
}

// ServiceContext Stackdriver logging serviceContext Field
func ServiceContext(name, version string) zap.Field {
	return zap.Object(serviceContextKey, &serviceContext{
		Name:    name,
		Version: version,
	})
}

// MarshalLogObject implements zapcore.ObjectMarshaller interface.
func (sc serviceContext) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("service", sc.Name)
	enc.AddString("version", sc.Version)
	return nil
}

type sourceLocation struct {
	File     string `json:"file"`
	Line     string `json:"line"`
	Function string `json:"function"`
}

// SourceLocation Stackdriver logging sourceLocation Field
func SourceLocation(pc uintptr, file string, line int, ok bool) zap.Field {
	return zap.Object(sourceLocationKey, newSourceLocation(pc, file, line, ok))
}

// MarshalLogObject implements zapcore.ObjectMarshaller interface.
func (l sourceLocation) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("file", l.File)
	enc.AddString("line", l.Line)
	enc.AddString("function", l.Function)
	return nil
}

func newSourceLocation(pc uintptr, file string, line int, ok bool) *sourceLocation {
	if !ok {
		return nil
	}

	loc := &sourceLocation{
		File: file,
		Line: strconv.Itoa(line),
	}

	if fn := runtime.FuncForPC(pc); fn != nil {
		loc.Function = fn.Name()
	}

	return loc
}
