// Package logger builds *slog.Logger instances with functional options and
// provides attribute helpers that keep key names consistent across the
// browscap packages and binaries.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which appends attributes extracted from the
// context on each record (the HTTP service uses this for request IDs).
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "browscap"),
//	    logger.WithContextExtractors(lookupapi.RequestIDExtractor()),
//	)
//	log.Warn("schema variant not declared", logger.Error(err))
//
// Error and RequestID return an empty attribute for nil or empty input, so
// they can be passed unconditionally.
package logger
