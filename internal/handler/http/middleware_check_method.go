// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the router's MethodNotAllowed handler. A request
// whose method is not registered for the matched route gets 404 Not Found
// instead of chi's 405, hiding the route from callers. Registered methods
// are forwarded to the router.
//
// Only exact route patterns are compared; requests to parameterised routes
// such as "/classes/{id}" with an unknown method always get 404.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
