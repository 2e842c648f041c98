// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A known path requested with a method it does not serve gets 404 instead
// of chi's 405, so callers cannot probe which routes exist.
//
// Route patterns are compared to the raw path literally; a parameterised
// pattern such as /users/{id} never matches, so those paths always fall
// through to 404.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !servesMethod(router.Routes(), r.URL.Path, r.Method) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		router.ServeHTTP(w, r)
	}
}

func servesMethod(routes []chi.Route, path, method string) bool {
	for _, route := range routes {
		if route.Pattern != path {
			continue
		}
		_, ok := route.Handlers[method]
		return ok
	}
	return false
}
