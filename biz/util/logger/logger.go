package logger

import (
	"context"
	"io"

	"placehub/be/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/sirupsen/logrus"
)

// Init installs a logrus-backed hlog logger writing to the rotated output.
func Init() {
	l := &Logger{l: logrus.New()}
	l.l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetOutput(newOutput())
	l.SetLevel(newLevel())
	hlog.SetLogger(l)
}

// Logger adapts logrus to hlog.FullLogger. Ctx variants carry the request
// log id from trace_info.
type Logger struct {
	l *logrus.Logger
}

func (lg *Logger) entry(ctx context.Context) *logrus.Entry {
	if logID := trace_info.GetLogId(ctx); logID != "" {
		return lg.l.WithField("log_id", logID)
	}
	return logrus.NewEntry(lg.l)
}

func (lg *Logger) Trace(v ...interface{})  { lg.l.Trace(v...) }
func (lg *Logger) Debug(v ...interface{})  { lg.l.Debug(v...) }
func (lg *Logger) Info(v ...interface{})   { lg.l.Info(v...) }
func (lg *Logger) Notice(v ...interface{}) { lg.l.Warn(v...) }
func (lg *Logger) Warn(v ...interface{})   { lg.l.Warn(v...) }
func (lg *Logger) Error(v ...interface{})  { lg.l.Error(v...) }
func (lg *Logger) Fatal(v ...interface{})  { lg.l.Fatal(v...) }

func (lg *Logger) Tracef(format string, v ...interface{})  { lg.l.Tracef(format, v...) }
func (lg *Logger) Debugf(format string, v ...interface{})  { lg.l.Debugf(format, v...) }
func (lg *Logger) Infof(format string, v ...interface{})   { lg.l.Infof(format, v...) }
func (lg *Logger) Noticef(format string, v ...interface{}) { lg.l.Warnf(format, v...) }
func (lg *Logger) Warnf(format string, v ...interface{})   { lg.l.Warnf(format, v...) }
func (lg *Logger) Errorf(format string, v ...interface{})  { lg.l.Errorf(format, v...) }
func (lg *Logger) Fatalf(format string, v ...interface{})  { lg.l.Fatalf(format, v...) }

func (lg *Logger) CtxTracef(ctx context.Context, format string, v ...interface{}) {
	lg.entry(ctx).Tracef(format, v...)
}

func (lg *Logger) CtxDebugf(ctx context.Context, format string, v ...interface{}) {
	lg.entry(ctx).Debugf(format, v...)
}

func (lg *Logger) CtxInfof(ctx context.Context, format string, v ...interface{}) {
	lg.entry(ctx).Infof(format, v...)
}

func (lg *Logger) CtxNoticef(ctx context.Context, format string, v ...interface{}) {
	lg.entry(ctx).Warnf(format, v...)
}

func (lg *Logger) CtxWarnf(ctx context.Context, format string, v ...interface{}) {
	lg.entry(ctx).Warnf(format, v...)
}

func (lg *Logger) CtxErrorf(ctx context.Context, format string, v ...interface{}) {
	lg.entry(ctx).Errorf(format, v...)
}

func (lg *Logger) CtxFatalf(ctx context.Context, format string, v ...interface{}) {
	lg.entry(ctx).Fatalf(format, v...)
}

func (lg *Logger) SetLevel(level hlog.Level) {
	switch level {
	case hlog.LevelTrace:
		lg.l.SetLevel(logrus.TraceLevel)
	case hlog.LevelDebug:
		lg.l.SetLevel(logrus.DebugLevel)
	case hlog.LevelInfo:
		lg.l.SetLevel(logrus.InfoLevel)
	case hlog.LevelNotice, hlog.LevelWarn:
		lg.l.SetLevel(logrus.WarnLevel)
	case hlog.LevelError:
		lg.l.SetLevel(logrus.ErrorLevel)
	case hlog.LevelFatal:
		lg.l.SetLevel(logrus.FatalLevel)
	default:
		lg.l.SetLevel(logrus.TraceLevel)
	}
}

func (lg *Logger) SetOutput(w io.Writer) {
	lg.l.SetOutput(w)
}
