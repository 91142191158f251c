package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/wayfind-dev/wayfind/pkg/devtools"
	"github.com/wayfind-dev/wayfind/pkg/history"
	"github.com/wayfind-dev/wayfind/pkg/middleware"
	"github.com/wayfind-dev/wayfind/pkg/router"
)

func devCmd() *cobra.Command {
	var (
		manifestPath string
		addr         string
		origin       string
	)

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Run a development server with a live navigation inspector",
		Long: `Serve a manifest-backed router over HTTP for interactive exploration.

Endpoints:

  GET  /routes      route table as JSON
  GET  /location    current location as JSON
  POST /navigate    drive a navigation ({"path": "...", "replace": bool})
  POST /back        history back
  POST /forward     history forward
  GET  /inspect     WebSocket stream of location broadcasts
  GET  /metrics     Prometheus metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := history.NewMemory(origin, "/")
			if err != nil {
				return err
			}

			r, err := buildRouter(manifestPath, router.WithHistory(h))
			if err != nil {
				return err
			}
			defer r.Close()
			r.Use(middleware.Prometheus())

			inspect := devtools.NewInspectServer()
			if err := inspect.Attach(r); err != nil {
				return err
			}
			defer inspect.Detach()

			mux := chi.NewRouter()
			mux.Use(chimw.Logger)
			mux.Use(chimw.Recoverer)

			mux.Get("/routes", handleRoutes(r))
			mux.Get("/location", handleLocation(r))
			mux.Post("/navigate", handleNavigate(r))
			mux.Post("/back", handleHistory(h.Back))
			mux.Post("/forward", handleHistory(h.Forward))
			mux.Get("/inspect", inspect.HandleWebSocket)
			mux.Get("/metrics", promhttp.Handler().ServeHTTP)

			printBanner()
			success("dev server listening on http://%s", addr)
			info("manifest: %s", manifestPath)
			info("origin:   %s", origin)
			info("inspector: ws://%s/inspect", addr)

			srv := &http.Server{
				Addr:         addr,
				Handler:      mux,
				ReadTimeout:  10 * time.Second,
				WriteTimeout: 0, // websocket connections stay open
			}
			return srv.ListenAndServe()
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "routes.yaml", "Route manifest file (JSON or YAML)")
	cmd.Flags().StringVarP(&addr, "addr", "a", "localhost:8420", "Listen address")
	cmd.Flags().StringVar(&origin, "origin", "https://localhost", "Origin for the in-memory history")

	return cmd
}

type routeJSON struct {
	Name     string `json:"name,omitempty"`
	Path     string `json:"path,omitempty"`
	Regexp   string `json:"regexp,omitempty"`
	External bool   `json:"external,omitempty"`
}

func handleRoutes(r *router.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		routes := r.Routes()
		out := make([]routeJSON, 0, len(routes))
		for _, rt := range routes {
			rj := routeJSON{Name: rt.Name, Path: rt.Path}
			if rt.Pattern != nil {
				rj.Regexp = rt.Pattern.String()
			}
			rj.External = rt.External.IsExternal(nil)
			out = append(out, rj)
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func handleLocation(r *router.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		loc := r.GetLocation("")
		if loc == nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "no matching route"})
			return
		}
		writeJSON(w, http.StatusOK, loc)
	}
}

type navigateRequest struct {
	Path    string `json:"path"`
	Replace bool   `json:"replace"`
}

func handleNavigate(r *router.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		var body navigateRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		var opts []router.NavigateOption
		if body.Replace {
			opts = append(opts, router.WithReplace())
		}
		if err := r.Navigate(body.Path, opts...); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func handleHistory(move func()) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		move()
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Printf("write response: %v\n", err)
	}
}
