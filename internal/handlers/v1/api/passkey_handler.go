package api

import (
	"encoding/base64"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/madome/auth-core/internal/handlers"
	"github.com/madome/auth-core/internal/middlewares"
	"github.com/madome/auth-core/internal/passkey"
	"github.com/madome/auth-core/internal/token"
	"github.com/madome/auth-core/internal/utils"
	"github.com/madome/auth-core/pkg"
)

// PasskeyHandler exposes the WebAuthn registration and authentication
// ceremonies, plus passkey listing and deletion.
//
// Route prefixes:
//   - `/auth/passkeys`
//   - `/auth/passkey/registration`
//   - `/auth/passkey/authentication`
type PasskeyHandler struct {
	svc          *passkey.Service
	cookieDomain string
	logger       *pkg.Logger
}

var _ handlers.Handler = (*PasskeyHandler)(nil)

func NewPasskeyHandler(svc *passkey.Service, cookieDomain string, logger *pkg.Logger) *PasskeyHandler {
	return &PasskeyHandler{svc: svc, cookieDomain: cookieDomain, logger: logger}
}

func (h *PasskeyHandler) RegisterRoutes(router *mux.Router) {
	authed := router.PathPrefix("/auth/passkeys").Subrouter()
	authed.Use(middlewares.RequireIdentity(h.logger))
	authed.HandleFunc("", h.list).Methods(http.MethodGet)
	authed.HandleFunc("/{cred}", h.delete).Methods(http.MethodDelete)

	registration := router.PathPrefix("/auth/passkey/registration").Subrouter()
	registration.Use(middlewares.RequireIdentity(h.logger))
	registration.HandleFunc("", h.startRegistration).Methods(http.MethodPost)
	registration.HandleFunc("", h.finishRegistration).Methods(http.MethodPatch)

	router.HandleFunc("/auth/passkey/authentication", h.startAuthentication).Methods(http.MethodPost)
	router.HandleFunc("/auth/passkey/authentication", h.finishAuthentication).Methods(http.MethodPatch)
}

// list returns the caller's registered passkeys, omitting the raw credential blob.
//
// GET /auth/passkeys -> 200 + list
func (h *PasskeyHandler) list(w http.ResponseWriter, r *http.Request) {
	wr := utils.NewHttpWriter(w, r)

	userID, _, ok := middlewares.IdentityFromContext(r.Context())
	if !ok {
		wr.KindError(http.StatusInternalServerError, "INTERNAL", "missing identity context")
		return
	}

	summaries, err := h.svc.List(r.Context(), userID)
	if err != nil {
		handlers.RespondError(wr, h.logger, err)
		return
	}

	out := make([]utils.M, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, utils.M{
			"credential_id": s.CredentialID,
			"aaguid":        s.AAGUID.String(),
			"created_at":    s.CreatedAt,
		})
	}
	wr.Status(http.StatusOK).Json(utils.M{"passkeys": out})
}

// delete removes one of the caller's passkeys.
//
// DELETE /auth/passkeys/{cred_b64} -> 204
func (h *PasskeyHandler) delete(w http.ResponseWriter, r *http.Request) {
	wr := utils.NewHttpWriter(w, r)

	userID, _, ok := middlewares.IdentityFromContext(r.Context())
	if !ok {
		wr.KindError(http.StatusInternalServerError, "INTERNAL", "missing identity context")
		return
	}

	credID, err := base64.RawURLEncoding.DecodeString(mux.Vars(r)["cred"])
	if err != nil {
		wr.KindError(http.StatusBadRequest, "INVALID_CREDENTIAL", "malformed credential id")
		return
	}

	if err := h.svc.Delete(r.Context(), userID, credID); err != nil {
		handlers.RespondError(wr, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// startRegistration begins the registration ceremony for an already
// authenticated user.
//
// POST /auth/passkey/registration -> 200 + challenge + reg-id header
func (h *PasskeyHandler) startRegistration(w http.ResponseWriter, r *http.Request) {
	wr := utils.NewHttpWriter(w, r)

	userID, _, ok := middlewares.IdentityFromContext(r.Context())
	if !ok {
		wr.KindError(http.StatusInternalServerError, "INTERNAL", "missing identity context")
		return
	}

	creation, registrationID, err := h.svc.StartRegistration(r.Context(), userID)
	if err != nil {
		handlers.RespondError(wr, h.logger, err)
		return
	}

	w.Header().Set("x-madome-passkey-registration-id", registrationID)
	wr.Status(http.StatusOK).Json(utils.M{"publicKey": creation.Response})
}

// finishRegistration completes the ceremony Start began.
//
// PATCH /auth/passkey/registration?registration-id= -> 201
func (h *PasskeyHandler) finishRegistration(w http.ResponseWriter, r *http.Request) {
	wr := utils.NewHttpWriter(w, r)

	userID, _, ok := middlewares.IdentityFromContext(r.Context())
	if !ok {
		wr.KindError(http.StatusInternalServerError, "INTERNAL", "missing identity context")
		return
	}

	registrationID := r.URL.Query().Get("registration-id")
	if registrationID == "" {
		wr.KindError(http.StatusBadRequest, "INVALID_CREDENTIAL", "missing registration-id")
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		wr.KindError(http.StatusBadRequest, "INVALID_CREDENTIAL", "failed to read request body")
		return
	}
	defer r.Body.Close()

	if err := h.svc.FinishRegistration(r.Context(), userID, registrationID, raw); err != nil {
		handlers.RespondError(wr, h.logger, err)
		return
	}

	wr.Status(http.StatusCreated).Json(utils.M{"status": "success"})
}

// startAuthentication begins the login ceremony for an as-yet-unauthenticated caller.
//
// POST /auth/passkey/authentication?email= -> 200 + challenge + auth-id header
func (h *PasskeyHandler) startAuthentication(w http.ResponseWriter, r *http.Request) {
	wr := utils.NewHttpWriter(w, r)

	email := r.URL.Query().Get("email")
	if email == "" {
		wr.KindError(http.StatusBadRequest, "INVALID_CREDENTIAL", "missing email")
		return
	}

	assertion, authenticationID, err := h.svc.StartAuthentication(r.Context(), email)
	if err != nil {
		handlers.RespondError(wr, h.logger, err)
		return
	}

	w.Header().Set("x-madome-passkey-authentication-id", authenticationID)
	wr.Status(http.StatusOK).Json(utils.M{"publicKey": assertion.Response})
}

// finishAuthentication completes the login ceremony and, on success, sets cookies.
//
// PATCH /auth/passkey/authentication?authentication-id=&email= -> 201 + cookies
func (h *PasskeyHandler) finishAuthentication(w http.ResponseWriter, r *http.Request) {
	wr := utils.NewHttpWriter(w, r)

	email := r.URL.Query().Get("email")
	authenticationID := r.URL.Query().Get("authentication-id")
	if email == "" || authenticationID == "" {
		wr.KindError(http.StatusBadRequest, "INVALID_CREDENTIAL", "missing email or authentication-id")
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		wr.KindError(http.StatusBadRequest, "INVALID_CREDENTIAL", "failed to read request body")
		return
	}
	defer r.Body.Close()

	result, err := h.svc.FinishAuthentication(r.Context(), email, authenticationID, raw)
	if err != nil {
		handlers.RespondError(wr, h.logger, err)
		return
	}

	wr.SetCookie(token.AccessCookie(result.AccessToken, h.cookieDomain))
	wr.SetCookie(token.RefreshCookie(result.RefreshToken, h.cookieDomain))
	w.Header().Set("x-madome-access-token-expires", strconv.FormatInt(result.AccessExpiresAt, 10))
	wr.Status(http.StatusCreated).Json(utils.M{"status": "success"})
}
