// Package shared centralizes JSON response envelopes so every handler
// renders errors the same way.
package shared

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "complyd/pkg/domain-errors"
)

// ErrorBody is the JSON error envelope. Fields names the missing or
// offending items for checklist and validation rejections.
type ErrorBody struct {
	Error            string   `json:"error"`
	ErrorDescription string   `json:"error_description,omitempty"`
	Fields           []string `json:"fields,omitempty"`
}

var statusByCode = map[dErrors.Code]int{
	dErrors.CodeBadRequest:          http.StatusBadRequest,
	dErrors.CodeInvalidInput:        http.StatusBadRequest,
	dErrors.CodeValidation:          http.StatusBadRequest,
	dErrors.CodeNoSuggestion:        http.StatusBadRequest,
	dErrors.CodeNotFound:            http.StatusNotFound,
	dErrors.CodeUnauthorized:        http.StatusUnauthorized,
	dErrors.CodeIncompleteChecklist: http.StatusConflict,
	dErrors.CodeInvalidTransition:   http.StatusConflict,
	dErrors.CodeStaleWrite:          http.StatusConflict,
	dErrors.CodeLookupFailure:       http.StatusBadGateway,
	dErrors.CodeInternal:            http.StatusInternalServerError,
}

// WriteError renders a coded error as the standard envelope. Unknown errors
// degrade to a 500 with the internal code and no detail leakage.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}

	body := ErrorBody{
		Error:  string(code),
		Fields: dErrors.FieldsOf(err),
	}
	var de *dErrors.Error
	if errors.As(err, &de) && de.Code != dErrors.CodeInternal {
		body.ErrorDescription = de.Message
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteJSON renders a success payload with the given status.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
