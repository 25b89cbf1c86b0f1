package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/sugarray/go-whitted-raytracer/pkg/scene"
)

// Server renders scenes over HTTP
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// SceneInfo describes one selectable scene
type SceneInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// availableScenes lists the scenes the render endpoint accepts
var availableScenes = []SceneInfo{
	{Name: "spheres", Description: "Three shaded spheres above a plane floor"},
	{Name: "default", Description: "The two-sphere test world, rendered head-on"},
}

// renderLimit caps requested canvas dimensions to keep a single request
// from monopolizing the process.
const renderLimit = 2000

// Handler returns the HTTP handler serving the API endpoints
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the renderable scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(availableScenes)
}

// handleRender renders the requested scene and responds with a PNG.
// Query parameters: scene (name), width, height.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "spheres"
	}

	width, err := parseDimension(r.URL.Query().Get("width"), 400)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	height, err := parseDimension(r.URL.Query().Get("height"), 200)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var sc *scene.Scene
	switch sceneName {
	case "spheres":
		sc = scene.NewThreeSphereScene(width, height)
	case "default":
		sc = scene.NewDefaultScene(width, height)
	default:
		http.Error(w, fmt.Sprintf("unknown scene: %s", sceneName), http.StatusBadRequest)
		return
	}

	start := time.Now()
	canvas := sc.Render()
	log.Printf("Rendered %s at %dx%d in %v", sceneName, width, height, time.Since(start))

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, canvas.ToImage()); err != nil {
		log.Printf("Error encoding PNG: %v", err)
	}
}

// parseDimension parses a canvas dimension query parameter with bounds checks
func parseDimension(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 || n > renderLimit {
		return 0, fmt.Errorf("dimension must be an integer between 1 and %d", renderLimit)
	}
	return n, nil
}
