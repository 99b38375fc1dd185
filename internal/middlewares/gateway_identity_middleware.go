package middlewares

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/madome/auth-core/internal/apperr"
	"github.com/madome/auth-core/internal/handlers"
	"github.com/madome/auth-core/internal/token"
	"github.com/madome/auth-core/internal/utils"
	"github.com/madome/auth-core/pkg"
)

// Header names a gateway injects once it has validated a caller's access
// cookie. Downstream services trust these headers unconditionally — the
// gateway must strip any client-supplied copies before proxying.
const (
	HeaderUserID   = "x-madome-user-id"
	HeaderUserRole = "x-madome-user-role"
)

type identityContextKey struct{}

type requestIdentity struct {
	UserID uuid.UUID
	Role   uint8
}

// InjectIdentityHeaders runs at the gateway position: it validates the
// access-token cookie and, on success, sets the trusted identity headers on
// the outgoing (proxied) request. On failure it does nothing — whether an
// unauthenticated request is allowed past is a routing decision, not this
// middleware's.
func InjectIdentityHeaders(codec *token.Codec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Header.Del(HeaderUserID)
			r.Header.Del(HeaderUserRole)

			cookie, err := r.Cookie(token.AccessCookieName)
			if err == nil {
				if claims, failure := codec.Validate(cookie.Value); failure == token.FailureNone {
					r.Header.Set(HeaderUserID, claims.UserID.String())
					r.Header.Set(HeaderUserRole, strconv.Itoa(int(claims.Role)))
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireIdentity runs at a downstream service: the gateway is the only
// thing that may set HeaderUserID/HeaderUserRole, so their absence or
// malformedness here means the gateway is broken or bypassed — an
// infrastructure failure (500), never a client-fault 401.
func RequireIdentity(logger *pkg.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, role, err := parseIdentityHeaders(r)
			if err != nil {
				logger.Error("gateway misconfigured", "err", err.Error(), "path", r.URL.Path)
				handlers.RespondError(utils.NewHttpWriter(w, r), logger, apperr.Wrap(apperr.Internal, "gateway misconfigured", err))
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey{}, requestIdentity{UserID: userID, Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseIdentityHeaders(r *http.Request) (uuid.UUID, uint8, error) {
	rawID := r.Header.Get(HeaderUserID)
	rawRole := r.Header.Get(HeaderUserRole)

	userID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, 0, err
	}

	role, err := strconv.ParseUint(rawRole, 10, 8)
	if err != nil {
		return uuid.Nil, 0, err
	}

	return userID, uint8(role), nil
}

// IdentityFromContext retrieves the identity RequireIdentity injected.
func IdentityFromContext(ctx context.Context) (userID uuid.UUID, role uint8, ok bool) {
	id, ok := ctx.Value(identityContextKey{}).(requestIdentity)
	if !ok {
		return uuid.Nil, 0, false
	}
	return id.UserID, id.Role, true
}
