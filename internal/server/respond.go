package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/identops/sysid/internal/sysid"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeLookupError maps the accessor's error taxonomy onto HTTP: a
// directory-service failure is an upstream error (502) carrying the
// call name and errno for diagnostics, a decode failure is a 500.
func writeLookupError(w http.ResponseWriter, err error) {
	var le *sysid.LookupError
	if errors.As(err, &le) {
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"error": "lookup failure",
			"call":  le.Call,
			"errno": le.Errno,
		})
		return
	}
	var de *sysid.DecodeError
	if errors.As(err, &de) {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error": "decode failure",
			"call":  de.Call,
			"field": de.Field,
		})
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

func writeNotFound(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, "not found")
}
