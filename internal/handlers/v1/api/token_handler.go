// Package api provides handlers for the REST API endpoints of the auth core.
package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/go-playground/validator/v10"

	"github.com/madome/auth-core/internal/handlers"
	"github.com/madome/auth-core/internal/middlewares"
	"github.com/madome/auth-core/internal/token"
	"github.com/madome/auth-core/internal/tokenservice"
	"github.com/madome/auth-core/internal/utils"
	"github.com/madome/auth-core/pkg"
)

// TokenHandler exposes the four token flows: issue, check, refresh, revoke.
//
// Route prefix:
//   - `/auth/token`
type TokenHandler struct {
	BasePath     string
	svc          *tokenservice.Service
	cookieDomain string
	logger       *pkg.Logger
	validate     *validator.Validate
}

var _ handlers.Handler = (*TokenHandler)(nil)

func NewTokenHandler(svc *tokenservice.Service, cookieDomain string, logger *pkg.Logger) *TokenHandler {
	return &TokenHandler{
		BasePath:     "/auth/token",
		svc:          svc,
		cookieDomain: cookieDomain,
		logger:       logger,
		validate:     validator.New(),
	}
}

func (h *TokenHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc(h.BasePath, h.create).Methods(http.MethodPost)
	router.HandleFunc(h.BasePath, h.check).Methods(http.MethodGet)
	router.HandleFunc(h.BasePath, h.refresh).Methods(http.MethodPatch)

	revoke := router.PathPrefix(h.BasePath).Subrouter()
	revoke.Use(middlewares.RequireIdentity(h.logger))
	revoke.HandleFunc("", h.revoke).Methods(http.MethodDelete)
}

type createTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required"`
}

// create exchanges a one-time auth code for a token pair.
//
// POST /auth/token {email, code} -> 201 + cookies
func (h *TokenHandler) create(w http.ResponseWriter, r *http.Request) {
	wr := utils.NewHttpWriter(w, r)

	var body createTokenRequest
	if err := wr.ParseBody(&body); err != nil {
		wr.KindError(http.StatusBadRequest, "INVALID_CREDENTIAL", err.Error())
		return
	}
	if err := h.validate.Struct(body); err != nil {
		wr.KindError(http.StatusBadRequest, "INVALID_CREDENTIAL", err.Error())
		return
	}

	pair, err := h.svc.CreateToken(r.Context(), body.Email, body.Code)
	if err != nil {
		handlers.RespondError(wr, h.logger, err)
		return
	}

	h.setCookiesAndExpires(wr, pair.AccessToken, pair.RefreshToken, pair.AccessExpiresAt)
	wr.Status(http.StatusCreated).Json(utils.M{"status": "success"})
}

// check validates the access cookie, optionally enforcing a minimum role.
//
// GET /auth/token ?role={u8} -> 200 + JSON
func (h *TokenHandler) check(w http.ResponseWriter, r *http.Request) {
	wr := utils.NewHttpWriter(w, r)

	cookie, err := r.Cookie(token.AccessCookieName)
	if err != nil {
		wr.KindError(http.StatusUnauthorized, "INVALID_TOKEN", "missing access token")
		return
	}

	var minRole *uint8
	if raw := r.URL.Query().Get("role"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 8)
		if err != nil {
			wr.KindError(http.StatusBadRequest, "INVALID_CREDENTIAL", "role must be a small unsigned integer")
			return
		}
		v := uint8(n)
		minRole = &v
	}

	result, err := h.svc.CheckToken(cookie.Value, minRole)
	if err != nil {
		handlers.RespondError(wr, h.logger, err)
		return
	}

	w.Header().Set("x-madome-access-token-expires", strconv.FormatInt(result.AccessExpiresAt, 10))
	wr.Status(http.StatusOK).Json(utils.M{
		"user_id":   result.UserID.String(),
		"user_role": result.UserRole,
	})
}

// refresh rotates a refresh cookie into a fresh token pair.
//
// PATCH /auth/token -> 201 + new cookies
func (h *TokenHandler) refresh(w http.ResponseWriter, r *http.Request) {
	wr := utils.NewHttpWriter(w, r)

	cookie, err := r.Cookie(token.RefreshCookieName)
	if err != nil {
		wr.KindError(http.StatusUnauthorized, "INVALID_REFRESH_TOKEN", "missing refresh token")
		return
	}

	pair, err := h.svc.RefreshToken(r.Context(), cookie.Value)
	if err != nil {
		handlers.RespondError(wr, h.logger, err)
		return
	}

	h.setCookiesAndExpires(wr, pair.AccessToken, pair.RefreshToken, pair.AccessExpiresAt)
	wr.Status(http.StatusCreated).Json(utils.M{"status": "success"})
}

// revoke clears both cookies. JWTs are stateless, so this is best-effort.
//
// DELETE /auth/token -> 204 + cleared cookies
func (h *TokenHandler) revoke(w http.ResponseWriter, r *http.Request) {
	wr := utils.NewHttpWriter(w, r)

	access, refresh := h.svc.RevokeToken(h.cookieDomain)
	wr.SetCookie(access)
	wr.SetCookie(refresh)
	w.WriteHeader(http.StatusNoContent)
}

func (h *TokenHandler) setCookiesAndExpires(wr *utils.HttpWriter, access, refresh string, exp int64) {
	wr.SetCookie(token.AccessCookie(access, h.cookieDomain))
	wr.SetCookie(token.RefreshCookie(refresh, h.cookieDomain))
	wr.W.Header().Set("x-madome-access-token-expires", strconv.FormatInt(exp, 10))
}
