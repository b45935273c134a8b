package httputil

import (
	"errors"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
)

// Bodies above this size are rejected before decoding.
const maxBodyBytes = 1 << 16

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	// Hint tells the client what it can do about the error, e.g. reload the page.
	Hint string `json:"hint,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	WriteError(w, ErrorResponse{Code: statusCode, Message: message}, details)
}

func WriteError(w http.ResponseWriter, resp ErrorResponse, details error) {
	if details != nil {
		resp.Details = details.Error()
	}
	writeJSON(w, resp.Code, resp, sonic.ConfigFastest)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	writeJSON(w, statusCode, body, sonic.ConfigDefault)
}

func writeJSON(w http.ResponseWriter, statusCode int, body any, api sonic.API) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		api.NewEncoder(w).Encode(body)
	}
}

// DecodeJSONBody reads a single JSON document from the request body into dst.
func DecodeJSONBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	defer r.Body.Close()
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return errors.New("reading body error: " + err.Error())
	}
	if len(data) > maxBodyBytes {
		return errors.New("body too large")
	}
	if len(data) == 0 {
		return errors.New("empty body")
	}
	if err = sonic.ConfigDefault.Unmarshal(data, dst); err != nil {
		return errors.New("decoding body error: " + err.Error())
	}
	return nil
}
