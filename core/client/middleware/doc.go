// Package middleware provides built-in middlewares for the client. Each one
// is constructed via a New* function that returns a [client.MiddlewareConfig]
// ready to be passed to [client.WithMiddleware].
//
//   - [NewTimeoutMiddleware] bounds each provider call with context.WithTimeout.
//   - [NewLoggingMiddleware] emits slog records before and after each call,
//     at three verbosity levels.
//
// Middlewares execute outermost-first:
//
//	c, err := client.New(provider,
//	    client.WithMiddleware(
//	        middleware.NewTimeoutMiddleware(30*time.Second),
//	        middleware.NewLoggingMiddleware(slog.Default(), middleware.LogLevelStandard),
//	    ),
//	)
//
// A request travels Timeout → Logging → Provider, and the response travels
// back in reverse.
package middleware
