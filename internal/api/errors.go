package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/yundol-dev/board-api/internal/api/shared"
	"github.com/yundol-dev/board-api/internal/store"
)

// Fixed client-facing messages shared by the error mapping.
const (
	// MsgNotFound is the fixed 404 message for missing resources.
	MsgNotFound = "해당 데이터가 존재하지 않습니다."

	// MsgUsernameTaken is the fixed 409 message for duplicate usernames on join.
	MsgUsernameTaken = "해당 username은 이미 사용중입니다."

	// MsgBadRequest is the fixed 400 message for undecodable request bodies.
	MsgBadRequest = "요청 본문이 올바르지 않습니다."
)

// HandleError converts any error raised by validation or the stores into the
// matching response envelope. No raw internal error ever reaches the client;
// unclassified store failures are surfaced as a bare 500 without a custom
// envelope.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *ValidationError

	switch {
	case errors.As(err, &ve):
		shared.RespondWithRsData(w, r, shared.NewRsData("400-1", ve.Error(), nil))

	case store.IsDuplicateError(err):
		shared.RespondWithRsData(w, r, shared.NewRsData("409-1", MsgUsernameTaken, nil))

	case store.IsNotFoundError(err):
		shared.RespondWithRsData(w, r, shared.NewRsData("404-1", MsgNotFound, nil))

	default:
		slog.Error("unhandled error at request boundary",
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()),
			"path", r.URL.Path,
			"method", r.Method)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
