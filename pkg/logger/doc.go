// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers that keep key names consistent.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithJSONFormatter(),
//	    logger.WithAttr(logger.Component("formvalidate")),
//	)
//	log.Debug("field failed", logger.Field("email"), logger.Kind("ismail"))
//
// Helpers such as Error, Kind and Selector return an empty slog.Attr for
// nil or empty input, which slog drops, so they can be passed unconditionally.
//
// Noop returns a logger that discards everything; libraries use it when the
// caller does not supply one.
package logger
