package log

import (
	"os"

	tmlog "github.com/tendermint/tendermint/libs/log"
)

var logger tmlog.Logger

func init() {
	logger = NewConsoleLogger()
}

func InitLogger(l tmlog.Logger) {
	logger = l
}

func NewConsoleLogger() tmlog.Logger {
	return tmlog.NewTMLogger(tmlog.NewSyncWriter(os.Stdout))
}

func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

func Info(msg string, keyvals ...interface{}) {
	logger.Info(msg, keyvals...)
}

func Error(msg string, keyvals ...interface{}) {
	logger.Error(msg, keyvals...)
}

func With(keyvals ...interface{}) tmlog.Logger {
	return logger.With(keyvals...)
}
