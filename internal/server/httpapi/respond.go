// Package httpapi exposes the REST surface of the server: authentication,
// task CRUD, health, and metrics. Handlers translate service results into
// the JSON envelopes the API promises.
package httpapi

import (
	"encoding/json"
	"net/http"
)

type successEnvelope struct {
	Message []string `json:"message"`
	Data    any      `json:"data"`
	Token   string   `json:"token,omitempty"`
}

type errorEnvelope struct {
	Status int      `json:"status"`
	Data   any      `json:"data"`
	Error  []string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, successEnvelope{Message: []string{message}, Data: data})
}

func writeSuccessWithToken(w http.ResponseWriter, status int, message string, data any, token string) {
	writeJSON(w, status, successEnvelope{Message: []string{message}, Data: data, Token: token})
}

func writeError(w http.ResponseWriter, status int, messages ...string) {
	writeJSON(w, status, errorEnvelope{Status: status, Data: nil, Error: messages})
}
