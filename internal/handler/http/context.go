package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

// employeeIDFromRequest pulls the authenticated employee out of the JWT
// claims. Routes behind the auth middleware always carry the claim.
func employeeIDFromRequest(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", false
	}
	return employeeID, true
}
