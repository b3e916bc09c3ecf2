package app

import "github.com/wb-go/wbf/zlog"

const defaultLogLevel = "info"

// SetLogLevel applies the configured level to the global logger. Unknown
// levels fall back to info.
func SetLogLevel(level string) {
	if level == "" {
		level = defaultLogLevel
	}

	if err := zlog.SetLevel(level); err != nil {
		zlog.Logger.Warn().Err(err).Str("level", level).Msg("Unknown log level, using info")
		_ = zlog.SetLevel(defaultLogLevel)
	}
}
