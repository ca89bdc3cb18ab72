package logger

import (
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/prettylog/core"
)

// zapCore implements zapcore.Core on top of a Logger. The target of an
// entry is the zap logger name when set, otherwise the Logger's Named
// target, otherwise the calling package (requires zap.AddCaller).
type zapCore struct {
	logger *Logger
	fields []core.Field
}

// NewZapCore returns a zapcore.Core that writes through l.
//
//	zl := zap.New(logger.NewZapCore(l), zap.AddCaller())
func NewZapCore(l *Logger) zapcore.Core {
	return &zapCore{logger: l}
}

func (z *zapCore) Enabled(level zapcore.Level) bool {
	return z.logger.levelEnabled(zapLevelToCore(level))
}

func (z *zapCore) With(fields []zapcore.Field) zapcore.Core {
	c := &zapCore{
		logger: z.logger,
		fields: make([]core.Field, len(z.fields), len(z.fields)+len(fields)),
	}
	copy(c.fields, z.fields)
	c.fields = appendZapFields(c.fields, fields)
	return c
}

func (z *zapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	level := zapLevelToCore(ent.Level)
	if !z.logger.levelEnabled(level) {
		return ce
	}
	// The caller is not resolved yet; targets from the call site are
	// filtered in Write.
	if target := z.target(ent); target != "" && !z.logger.filter.Enabled(target, level) {
		return ce
	}
	return ce.AddCore(ent, z)
}

func (z *zapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	var caller core.CallerInfo
	if ent.Caller.Defined {
		caller = core.CallerInfo{
			File:      ent.Caller.File,
			ShortFile: filepath.Base(ent.Caller.File),
			Line:      ent.Caller.Line,
			Function:  ent.Caller.Function,
			Defined:   true,
		}
	}
	target := z.target(ent)
	if target == "" {
		target = caller.Package()
	}

	all := make([]core.Field, 0, len(z.fields)+len(fields))
	all = append(all, z.fields...)
	all = appendZapFields(all, fields)

	z.logger.write(ent.Time, zapLevelToCore(ent.Level), target, ent.Message, all, caller)
	return nil
}

func (z *zapCore) Sync() error {
	return z.logger.Sync()
}

func (z *zapCore) target(ent zapcore.Entry) string {
	if ent.LoggerName != "" {
		return ent.LoggerName
	}
	return z.logger.target
}

// zapLevelToCore converts a zapcore.Level to a core.Level. DPanic is
// logged as an error.
func zapLevelToCore(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.FatalLevel:
		return core.FatalLevel
	case level >= zapcore.PanicLevel:
		return core.PanicLevel
	case level >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case level >= zapcore.WarnLevel:
		return core.WarnLevel
	case level >= zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

func appendZapFields(dst []core.Field, fields []zapcore.Field) []core.Field {
	for _, f := range fields {
		dst = appendZapField(dst, f)
	}
	return dst
}

func appendZapField(dst []core.Field, f zapcore.Field) []core.Field {
	switch f.Type {
	case zapcore.SkipType:
		return dst
	case zapcore.StringType:
		return append(dst, String(f.Key, f.String))
	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type:
		return append(dst, Int64(f.Key, f.Integer))
	case zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type, zapcore.UintptrType:
		return append(dst, Any(f.Key, uint64(f.Integer)))
	case zapcore.BoolType:
		return append(dst, Bool(f.Key, f.Integer == 1))
	case zapcore.Float64Type:
		return append(dst, Float64(f.Key, math.Float64frombits(uint64(f.Integer))))
	case zapcore.Float32Type:
		return append(dst, Float64(f.Key, float64(math.Float32frombits(uint32(f.Integer)))))
	case zapcore.DurationType:
		return append(dst, Duration(f.Key, time.Duration(f.Integer)))
	case zapcore.TimeType:
		t := time.Unix(0, f.Integer)
		if loc, ok := f.Interface.(*time.Location); ok {
			t = t.In(loc)
		}
		return append(dst, Time(f.Key, t))
	case zapcore.ErrorType:
		if err, ok := f.Interface.(error); ok {
			return append(dst, NamedErr(f.Key, err))
		}
	case zapcore.StringerType:
		if s, ok := f.Interface.(fmt.Stringer); ok {
			return append(dst, Stringer(f.Key, s))
		}
	}

	// Objects, arrays, reflected values and anything else zap knows how to
	// encode are flattened through a map encoder.
	enc := zapcore.NewMapObjectEncoder()
	f.AddTo(enc)
	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		dst = append(dst, Any(k, enc.Fields[k]))
	}
	return dst
}
