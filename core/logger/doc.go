// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and integrates with the Fiber web framework.
//
// # Context Awareness
//
// Two helpers attach request-scoped fields to log entries:
//   - WithRayID extracts the RayID from a Fiber context so all logs of a
//     single request can be correlated.
//   - WithSeller attaches the seller scope of the request, which matters for
//     a multi-tenant back office where every order and deposit belongs to a
//     seller.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithSeller(logger.WithRayID(log, c), sellerID)
//	l.Error("Handler failed", zap.Error(err))
package logger
