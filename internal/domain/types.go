package domain

// ID is used across domain entities.
type ID int64

// RequestContext carries the authenticated identity of one request. It is
// decoded from the session cookie and passed explicitly into services.
type RequestContext struct {
	UserID   ID     `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Authenticated reports whether the request carried a valid session.
func (rc RequestContext) Authenticated() bool {
	return rc.UserID > 0 && rc.Role != ""
}
