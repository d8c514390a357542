package http

import (
	"net/http"

	"github.com/cleitonmarx/symbiont/depend"
)

// IntrospectHandler serves the application's dependency graph in Mermaid
// notation for debugging.
func IntrospectHandler(w http.ResponseWriter, r *http.Request) {
	mermaidGraph, err := depend.ResolveNamed[string]("introspection-graph-mermaid")
	if err != nil {
		http.Error(w, "Failed to resolve dependency graph", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(mermaidGraph))
}
