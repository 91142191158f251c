// Package middleware provides observability middleware for the Wayfind
// router: Prometheus metrics and OpenTelemetry tracing over navigation
// operations.
//
// Both constructors return a router.Middleware and are wired with
// Router.Use:
//
//	r := router.New(router.WithHistory(h))
//	r.Use(
//	    middleware.Prometheus(middleware.WithNamespace("myapp")),
//	    middleware.OpenTelemetry(middleware.WithTracerName("myapp")),
//	)
package middleware
