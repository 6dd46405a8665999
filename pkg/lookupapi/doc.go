// Package lookupapi exposes a loaded Browscap database over HTTP.
//
// The Handler is a chi router serving single and batch lookups, the schema
// of the loaded file, liveness and readiness checks and Prometheus metrics.
// Every response body is a JSON envelope:
//
//	{"data": ..., "meta": {...}, "error": {"code": "...", "message": "..."}}
//
// # Usage
//
//	db, _ := browscap.Load("browscap.ini")
//	h, err := lookupapi.New(db, lookupapi.WithLogger(log), lookupapi.WithConfig(cfg.Lookup))
//	if err != nil {
//	    return err
//	}
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	return srv.Run(ctx, h)
//
// GET /lookup takes the user agent from the ua query parameter and falls back
// to the request's own User-Agent header. POST /lookup accepts
// {"user_agents": [...]} up to Config.MaxBatch entries; the batch fails as a
// whole on the first lookup error.
//
// # Errors
//
// An empty query yields 400, an oversized batch or body 413, a closed
// database 503 and a cyclic inheritance chain in the data file 500.
//
// # Request IDs
//
// RequestIDMiddleware propagates or generates X-Request-ID. Register
// RequestIDExtractor with logger.WithContextExtractors to stamp it on logs.
package lookupapi
