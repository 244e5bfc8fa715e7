package logger

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var Log *zap.Logger

// New builds the process logger. Gin's debug mode gets the console encoder,
// everything else the production JSON one.
func New(ginMode string) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if ginMode == gin.DebugMode {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	Log = l
	return l
}

// L returns the process logger, or a no-op logger before New has run.
func L() *zap.Logger {
	if Log == nil {
		return zap.NewNop()
	}
	return Log
}
