package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func observedGormLogger(level gormlogger.LogLevel) (*GormLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewGormLogger(zap.New(core), level), logs
}

func selectMovements() (string, int64) {
	return "SELECT * FROM product_movements WHERE product_id = $1", 3
}

func TestGormLogger_TraceLogsQueryAtInfo(t *testing.T) {
	gl, logs := observedGormLogger(gormlogger.Info)

	gl.Trace(context.Background(), time.Now(), selectMovements, nil)

	entries := logs.FilterMessage("SQL query").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(3), fields["rows"])
	assert.Contains(t, fields["sql"], "product_movements")
}

func TestGormLogger_TraceWarnsOnSlowQuery(t *testing.T) {
	gl, logs := observedGormLogger(gormlogger.Warn)

	begin := time.Now().Add(-time.Second)
	gl.Trace(context.Background(), begin, selectMovements, nil)

	require.Len(t, logs.FilterMessage("Slow SQL").All(), 1)
}

func TestGormLogger_TraceSuppressesRecordNotFound(t *testing.T) {
	gl, logs := observedGormLogger(gormlogger.Error)

	gl.Trace(context.Background(), time.Now(), selectMovements, gormlogger.ErrRecordNotFound)

	assert.Zero(t, logs.Len())
}

func TestGormLogger_TraceLogsOtherErrors(t *testing.T) {
	gl, logs := observedGormLogger(gormlogger.Error)

	gl.Trace(context.Background(), time.Now(), selectMovements, errors.New("connection reset"))

	entries := logs.FilterMessage("SQL error").All()
	require.Len(t, entries, 1)
}

func TestGormLogger_SilentLogsNothing(t *testing.T) {
	gl, logs := observedGormLogger(gormlogger.Silent)

	gl.Trace(context.Background(), time.Now().Add(-time.Second), selectMovements, errors.New("boom"))
	gl.Info(context.Background(), "migrating")

	assert.Zero(t, logs.Len())
}

func TestGormLogger_TraceTagsRequestID(t *testing.T) {
	gl, logs := observedGormLogger(gormlogger.Info)

	ctx, _ := WithRequestID(context.Background(), zap.NewNop(), "req-789")
	gl.Trace(ctx, time.Now(), selectMovements, nil)

	entries := logs.FilterMessage("SQL query").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-789", entries[0].ContextMap()["request_id"])
}

func TestGormLogger_LogModeReturnsIndependentCopy(t *testing.T) {
	gl, logs := observedGormLogger(gormlogger.Silent)

	verbose := gl.LogMode(gormlogger.Info)
	verbose.Info(context.Background(), "schema ready")

	require.Len(t, logs.All(), 1)

	gl.Info(context.Background(), "still silent")
	assert.Len(t, logs.All(), 1)
}

func TestMapGormLogLevel(t *testing.T) {
	cases := []struct {
		input string
		want  gormlogger.LogLevel
	}{
		{"silent", gormlogger.Silent},
		{"error", gormlogger.Error},
		{"warn", gormlogger.Warn},
		{"info", gormlogger.Info},
		{"debug", gormlogger.Info},
		{"anything", gormlogger.Warn},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, MapGormLogLevel(tc.input), "level %q", tc.input)
	}
}
