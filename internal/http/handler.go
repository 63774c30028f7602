package http

import (
	"encoding/json"
	"net/http"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}
