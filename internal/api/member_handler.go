package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/yundol-dev/board-api/internal/api/shared"
	"github.com/yundol-dev/board-api/internal/domain"
	"github.com/yundol-dev/board-api/internal/service/auth"
	"github.com/yundol-dev/board-api/internal/store"
)

// Fixed client-facing messages for the member endpoints.
const (
	// MsgLoginUnknownUsername is the 401 message for login with an unknown username.
	MsgLoginUnknownUsername = "존재하지 않는 사용자입니다."

	// MsgLoginWrongPassword is the 401 message for login with a wrong password.
	MsgLoginWrongPassword = "비밀번호가 일치하지 않습니다."
)

// MemberHandler handles member-related API requests: join and login.
type MemberHandler struct {
	members  store.MemberStore
	hasher   auth.PasswordHasher
	verifier auth.PasswordVerifier
	logger   *slog.Logger
}

// NewMemberHandler creates a new MemberHandler with the given dependencies.
func NewMemberHandler(
	members store.MemberStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	log *slog.Logger,
) *MemberHandler {
	if log == nil {
		log = slog.Default()
	}
	return &MemberHandler{
		members:  members,
		hasher:   hasher,
		verifier: verifier,
		logger:   log.With(slog.String("component", "member_handler")),
	}
}

// Join handles POST /api/v1/members/join.
// On success it responds 201 "201-1" with the created member view; the view
// excludes the password and the API key.
func (h *MemberHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req JoinRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithRsData(w, r, shared.NewRsData("400-1", MsgBadRequest, nil))
		return
	}

	if err := Validate(req.constraints()...); err != nil {
		HandleError(w, r, err)
		return
	}

	hashed, err := h.hasher.Hash(req.Password)
	if err != nil {
		h.logger.Error("failed to hash password", "error", err)
		HandleError(w, r, err)
		return
	}

	member, err := domain.NewMember(req.Username, hashed, req.Nickname)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	// Username uniqueness is the store's concern; a duplicate surfaces as
	// store.ErrUsernameExists and maps to "409-1".
	if err := h.members.Create(r.Context(), member); err != nil {
		HandleError(w, r, err)
		return
	}

	shared.RespondWithRsData(w, r, shared.NewRsData(
		"201-1",
		fmt.Sprintf("%s님 환영합니다. 회원가입이 완료되었습니다.", member.Nickname),
		NewMemberView(member),
	))
}

// Login handles POST /api/v1/members/login.
// On success it responds 200 "200-1" with {item: member view, apiKey}; this
// is the only place the API key is ever exposed.
func (h *MemberHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithRsData(w, r, shared.NewRsData("400-1", MsgBadRequest, nil))
		return
	}

	if err := Validate(req.constraints()...); err != nil {
		HandleError(w, r, err)
		return
	}

	member, err := h.members.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrMemberNotFound) {
			shared.RespondWithRsData(w, r, shared.NewRsData("401-1", MsgLoginUnknownUsername, nil))
			return
		}
		HandleError(w, r, err)
		return
	}

	if err := h.verifier.Compare(member.Password, req.Password); err != nil {
		shared.RespondWithRsData(w, r, shared.NewRsData("401-2", MsgLoginWrongPassword, nil))
		return
	}

	shared.RespondWithRsData(w, r, shared.NewRsData(
		"200-1",
		fmt.Sprintf("%s님 환영합니다.", member.Nickname),
		LoginData{
			Item:   NewMemberView(member),
			APIKey: member.APIKey,
		},
	))
}
