package common

import (
	"io"
	"os"
	"path/filepath"

	"github.com/inconshreveable/log15"
	"gopkg.in/natefinch/lumberjack.v2"
)

func makeDefaultLogger(absFilePath string) io.Writer {
	return &lumberjack.Logger{
		Filename:   absFilePath,
		MaxSize:    100,
		MaxBackups: 14,
		MaxAge:     14,
		Compress:   true,
		LocalTime:  true,
	}
}

// LogHandler writes logfmt records at or above lvl to a rotated file under
// path/subDir. An unknown lvl falls back to info.
func LogHandler(path, subDir, filename, lvl string) log15.Handler {
	absFilename := filepath.Join(path, subDir, filename)
	out := makeDefaultLogger(absFilename)
	return log15.LvlFilterHandler(ParseLogLevel(lvl), log15.StreamHandler(out, log15.LogfmtFormat()))
}

// TerminalHandler writes records at or above lvl to stdout.
func TerminalHandler(lvl string) log15.Handler {
	return log15.LvlFilterHandler(ParseLogLevel(lvl), log15.StreamHandler(os.Stdout, log15.TerminalFormat()))
}

func ParseLogLevel(lvl string) log15.Lvl {
	logLevel, err := log15.LvlFromString(lvl)
	if err != nil {
		return log15.LvlInfo
	}
	return logLevel
}
