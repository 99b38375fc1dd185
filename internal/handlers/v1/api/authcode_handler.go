package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/madome/auth-core/internal/authcode"
	"github.com/madome/auth-core/internal/handlers"
	"github.com/madome/auth-core/internal/utils"
	"github.com/madome/auth-core/pkg"
)

// AuthCodeHandler issues one-time login codes.
//
// Route prefix:
//   - `/auth/code`
type AuthCodeHandler struct {
	BasePath string
	svc      *authcode.Service
	logger   *pkg.Logger
	validate *validator.Validate
}

var _ handlers.Handler = (*AuthCodeHandler)(nil)

func NewAuthCodeHandler(svc *authcode.Service, logger *pkg.Logger) *AuthCodeHandler {
	return &AuthCodeHandler{
		BasePath: "/auth/code",
		svc:      svc,
		logger:   logger,
		validate: validator.New(),
	}
}

func (h *AuthCodeHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc(h.BasePath, h.create).Methods(http.MethodPost)
}

type createAuthCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// create issues a new throttled auth code for the given email.
//
// POST /auth/code {email} -> 201
func (h *AuthCodeHandler) create(w http.ResponseWriter, r *http.Request) {
	wr := utils.NewHttpWriter(w, r)

	var body createAuthCodeRequest
	if err := wr.ParseBody(&body); err != nil {
		wr.KindError(http.StatusBadRequest, "INVALID_CREDENTIAL", err.Error())
		return
	}
	if err := h.validate.Struct(body); err != nil {
		wr.KindError(http.StatusBadRequest, "INVALID_CREDENTIAL", err.Error())
		return
	}

	if _, err := h.svc.Create(r.Context(), body.Email); err != nil {
		handlers.RespondError(wr, h.logger, err)
		return
	}

	wr.Status(http.StatusCreated).Json(utils.M{"status": "success"})
}
