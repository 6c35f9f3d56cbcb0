// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/today", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms),
correlated by a per-request id.

# Rate Limiting

In-memory fixed-window limiter keyed by client IP:

	limiter := middleware.NewRateLimiter(20, time.Minute)
	mux.HandleFunc("POST /api/vote", limiter.Limit(handler))

Over-limit requests get 429 with a Retry-After header.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.ParseJSONBody(r, &req)

# Client IP

GetClientIP resolves the caller's address behind proxies:
X-Forwarded-For (first hop), then X-Real-IP, then RemoteAddr.
This is the address the vote ledger hashes for deduplication.
*/
package middleware
