package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"quake-bknd/internal/utils"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeParamError answers 400 for validation failures and 500 for anything else.
func writeParamError(w http.ResponseWriter, logr *zap.Logger, err error) {
	var pe *utils.ParamError
	if errors.As(err, &pe) {
		writeError(w, http.StatusBadRequest, pe.Error())
		return
	}

	logr.Error("unexpected parameter error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}
