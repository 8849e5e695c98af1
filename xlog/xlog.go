package xlog

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	timeKey         = "time"
	EncodingJson    = "json"
	EncodingConsole = "console"
	FileMode        = "file"
)

var levels = map[string]zapcore.Level{
	"debug": zap.DebugLevel,
	"info":  zap.InfoLevel,
	"error": zap.ErrorLevel,
	"warn":  zap.WarnLevel,
	"panic": zap.PanicLevel,
	"fatal": zap.FatalLevel,
}

// Conf configures a logger built with New.
type Conf struct {
	ServiceName string
	// log path
	Path string
	// log file name
	Filename string
	//	file or stdout
	Mode string
	//	json or console
	Encoding   string
	TimeFormat string
	//	debug, info, error, warn, panic, fatal
	Level    string
	Compress bool
	KeepDays int
	MaxSize  int
}

// New builds a zap logger from conf, filling unset fields with
// defaults (console encoding to stdout at debug level).
func New(conf Conf) *zap.Logger {
	defaultConf(&conf)

	opts := []zap.Option{
		zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel),
	}
	if len(conf.ServiceName) > 0 {
		opts = append(opts, zap.Fields(zap.String("service", conf.ServiceName)))
	}

	var write zapcore.WriteSyncer
	switch conf.Mode {
	case FileMode:
		write = fileSync(conf)
	default:
		write = zapcore.Lock(os.Stdout)
	}

	level, ok := levels[conf.Level]
	if !ok {
		level = zap.DebugLevel
	}
	return zap.New(zapcore.NewCore(encoder(conf), write, level), opts...)
}

func fileSync(conf Conf) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename: fmt.Sprintf("%s/%s", conf.Path, conf.Filename),
		Compress: conf.Compress,
		MaxAge:   conf.KeepDays,
		MaxSize:  conf.MaxSize,
	})
}

func encoder(conf Conf) zapcore.Encoder {
	econf := zap.NewProductionEncoderConfig()
	econf.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format(conf.TimeFormat))
	}
	if conf.Level == "debug" {
		econf.EncodeLevel = zapcore.LowercaseColorLevelEncoder
	} else {
		econf.EncodeLevel = zapcore.LowercaseLevelEncoder
	}
	econf.TimeKey = timeKey
	switch conf.Encoding {
	case EncodingJson:
		return zapcore.NewJSONEncoder(econf)
	default:
		return zapcore.NewConsoleEncoder(econf)
	}
}

func defaultConf(conf *Conf) {
	if len(conf.Path) == 0 {
		path, _ := os.Getwd()
		conf.Path = fmt.Sprintf("%s/logs", path)
	}
	if len(conf.Level) == 0 {
		conf.Level = "debug"
	}
	if len(conf.Filename) == 0 {
		conf.Filename = "app.log"
	}
	if len(conf.Encoding) == 0 {
		conf.Encoding = "console"
	}
	if len(conf.TimeFormat) == 0 {
		conf.TimeFormat = "2006-01-02 15:04:05"
	}
}
