// Serves the generated icon over HTTP so you can eyeball it in a browser
// while tweaking the geometry. Not meant to run anywhere but localhost.

package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/handlers"
	"github.com/trackapp/iconkit"
)

// Large enough for any icon slot, small enough that a stray query can't make
// us allocate a gigapixel canvas.
const maxPreviewSize = 4096

func sizeParam(r *http.Request) (int, error) {
	q := r.URL.Query().Get("size")
	if q == "" {
		return 1024, nil
	}
	size, err := strconv.Atoi(q)
	if err != nil {
		return 0, fmt.Errorf("size must be an integer, got %q", q)
	}
	if size <= 0 || size > maxPreviewSize {
		return 0, fmt.Errorf("size must be in 1..%d, got %d", maxPreviewSize, size)
	}
	return size, nil
}

type previewServer struct {
	enc *iconkit.Encoder
}

func (s *previewServer) servePNG(w http.ResponseWriter, r *http.Request) {
	size, err := sizeParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	img, err := iconkit.Render(size)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := s.enc.EncodePNG(w, img); err != nil {
		log.Printf("encoding preview PNG: %s", err)
	}
}

func (s *previewServer) serveSVG(w http.ResponseWriter, r *http.Request) {
	size, err := sizeParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	if err := iconkit.RenderSVG(w, size); err != nil {
		log.Printf("rendering preview SVG: %s", err)
	}
}

const indexPage = `<!DOCTYPE html>
<html>
<head><title>icon preview</title></head>
<body style="background:#eee">
<p>
  <img src="/icon.png?size=180" width="180" height="180">
  <img src="/icon.png?size=120" width="120" height="120">
  <img src="/icon.png?size=76" width="76" height="76">
  <img src="/icon.png?size=40" width="40" height="40">
</p>
<p><a href="/icon.png?size=1024">1024px PNG</a> | <a href="/icon.svg">SVG</a></p>
</body>
</html>
`

func (s *previewServer) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexPage)
}

func safeHeaderMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy", "default-src 'self'; frame-ancestors 'none'")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		h.ServeHTTP(w, r)
	})
}

func main() {
	addr := flag.String("addr", "localhost:7878", "Address to listen on")
	flag.Parse()

	s := &previewServer{enc: iconkit.NewEncoder()}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.index)
	mux.HandleFunc("GET /icon.png", s.servePNG)
	mux.HandleFunc("GET /icon.svg", s.serveSVG)

	server := handlers.CombinedLoggingHandler(os.Stdout, safeHeaderMiddleware(mux))
	fmt.Printf("Preview at http://%s/\n", *addr)
	log.Fatal(http.ListenAndServe(*addr, server))
}
