package token

import (
	"net/http"

	"github.com/madome/auth-core/internal/utils"
)

// Cookie names, fixed by contract fixtures.
const (
	AccessCookieName  = "madome_access_token"
	RefreshCookieName = "madome_refresh_token"
)

// cookieMaxAge is deliberately the refresh-token lifetime, not the access
// token's 4h expiry: the cookie outlives the JWT so a client holding an
// expired access token can still silently refresh instead of being forced
// to re-authenticate.
var cookieMaxAge = int(RefreshTokenTTL.Seconds())

// AccessCookie builds the madome_access_token cookie. Path is "/" so it is
// sent on every request.
func AccessCookie(value, domain string) utils.CookieParams {
	return utils.CookieParams{
		Name:     AccessCookieName,
		Value:    value,
		MaxAge:   cookieMaxAge,
		Path:     "/",
		Domain:   domain,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// RefreshCookie builds the madome_refresh_token cookie, scoped to the
// refresh endpoint only so the credential is never sent to any other route.
func RefreshCookie(value, domain string) utils.CookieParams {
	return utils.CookieParams{
		Name:     RefreshCookieName,
		Value:    value,
		MaxAge:   cookieMaxAge,
		Path:     "/auth/token",
		Domain:   domain,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearCookies returns the access and refresh cookies set to empty value and
// max-age 0. Both path values must match AccessCookie/RefreshCookie exactly,
// or the browser will only clear one of the two.
func ClearCookies(domain string) (access, refresh utils.CookieParams) {
	access = AccessCookie("", domain)
	access.MaxAge = 0
	refresh = RefreshCookie("", domain)
	refresh.MaxAge = 0
	return access, refresh
}
