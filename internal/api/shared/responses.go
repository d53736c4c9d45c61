package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
)

// RsData is the uniform response envelope for endpoint responses.
// ResultCode has the form "{httpStatus}-{subcode}", where the subcode is a
// small integer scoped per endpoint, not a global enum. Msg is human-readable
// and may span multiple lines when validation errors are aggregated. Data is
// the optional payload and is omitted from the JSON when absent.
type RsData struct {
	ResultCode string `json:"resultCode"`
	Msg        string `json:"msg"`
	Data       any    `json:"data,omitempty"`
}

// NewRsData creates a response envelope with the given result code, message
// and optional data. It performs no validation of the message content.
func NewRsData(resultCode, msg string, data any) RsData {
	return RsData{
		ResultCode: resultCode,
		Msg:        msg,
		Data:       data,
	}
}

// StatusCode derives the HTTP status from the leading segment of the result
// code, e.g. "201-1" → 201. Malformed result codes fall back to 200.
func (rd RsData) StatusCode() int {
	prefix, _, _ := strings.Cut(rd.ResultCode, "-")
	status, err := strconv.Atoi(prefix)
	if err != nil {
		return http.StatusOK
	}
	return status
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithRsData writes the envelope as JSON, deriving the HTTP status
// from its result code.
func RespondWithRsData(w http.ResponseWriter, r *http.Request, rd RsData) {
	// Get trace ID from context if available
	traceID := GetTraceID(r.Context())

	if rd.StatusCode() >= http.StatusBadRequest {
		slog.Debug("sending error envelope",
			"result_code", rd.ResultCode,
			"msg", rd.Msg,
			"trace_id", traceID,
			"path", r.URL.Path,
			"method", r.Method)
	}

	RespondWithJSON(w, r, rd.StatusCode(), rd)
}
