package logger

import (
	"bytes"
	"context"
	"testing"

	"placehub/be/biz/util/random"
	"placehub/be/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLoggerCarriesLogId(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{l: logrus.New()}
	l.SetOutput(&buf)
	l.SetLevel(hlog.LevelInfo)
	hlog.SetLogger(l)

	logID := random.RandStr(32)
	ctx := trace_info.WithLogId(context.Background(), logID)

	hlog.CtxInfof(ctx, "test info data: %d, %s", 123, "ttt")
	assert.Contains(t, buf.String(), logID)

	buf.Reset()
	hlog.Infof("test info data: %d, %s", 123, "ttt")
	assert.Contains(t, buf.String(), "test info data")
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{l: logrus.New()}
	l.SetOutput(&buf)
	l.SetLevel(hlog.LevelError)

	l.Infof("should be filtered")
	assert.Empty(t, buf.String())

	l.Errorf("should pass")
	assert.Contains(t, buf.String(), "should pass")
}
