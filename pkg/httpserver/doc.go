// Package httpserver runs the lookup service's net/http server with
// graceful shutdown, env-driven timeouts and health check handlers.
//
// Run binds the listener before returning control to start hooks, so Addr
// reports the real port even for ":0". The server stops when the context
// passed to Run is done or Shutdown is called; signal handling belongs to
// the caller (see cmd/browscap).
//
// # Usage
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.LivenessHandler())
//	r.Get("/readyz", httpserver.ReadinessHandler(log, db.Ready))
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx, r); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// # Errors
//
// Listen and serve failures are joined with ErrStart; shutdown failures with
// ErrShutdown. Use errors.Is to distinguish them.
package httpserver
