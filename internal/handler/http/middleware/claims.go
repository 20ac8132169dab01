package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

// CurrentUserID pulls the authenticated user id from the verified token.
func CurrentUserID(r *http.Request) (int64, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, false
	}
	return claimInt64(claims, "user_id")
}

// CurrentCompanyID pulls the tenant company id, absent for platform admins.
func CurrentCompanyID(r *http.Request) (int64, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, false
	}
	return claimInt64(claims, "company_id")
}

// Encoded claims come back as json numbers.
func claimInt64(claims map[string]interface{}, key string) (int64, bool) {
	switch v := claims[key].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	default:
		return 0, false
	}
}
