package api

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
)

// Status is a snapshot of the running show.
type Status struct {
	Running bool   `json:"running"`
	Act     int    `json:"act"`
	Ticks   uint64 `json:"ticks"`
}

// Api serves show status over HTTP.
type Api struct {
	mu     sync.Mutex
	status Status
}

// NewApi creates an instance of an Api.
func NewApi() *Api {
	a := new(Api)
	return a
}

// Update records the current show state. Safe to call from the
// animation thread while Serve runs elsewhere.
func (a *Api) Update(running bool, act int, ticks uint64) {
	a.mu.Lock()
	a.status = Status{Running: running, Act: act, Ticks: ticks}
	a.mu.Unlock()
}

// Serve exposes the status endpoint.
func (a *Api) Serve() {
	http.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		a.mu.Lock()
		status := a.status
		a.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	})

	log.Println("Listening...")
	http.ListenAndServe(":3000", nil)
}
