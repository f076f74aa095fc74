// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /results/today", middleware.WithLogging(handler))

Logs request start (method, path, client IP) and completion (status,
duration_ms). Each request gets an ID from the X-Request-ID header, or a
fresh UUID, which is echoed back and available through RequestID(ctx).

# Metrics

Time routes with a Prometheus histogram:

	metrics := middleware.NewMetrics(registry)
	mux.HandleFunc("GET /results/today",
		middleware.WithLogging(metrics.Instrument("GET /results/today", h.Today)))

NewMetrics(nil) returns nil, and a nil *Metrics instruments nothing.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, OPTIONS with headers Content-Type and
X-Request-ID.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.SubmitResultRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Checks X-Forwarded-For, then X-Real-IP, then RemoteAddr. Used in request
logs.
*/
package middleware
