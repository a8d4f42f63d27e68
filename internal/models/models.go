package models

// User is a registered account. PasswordHash is a bcrypt hash; the
// plaintext password never leaves the userstore boundary.
type User struct {
	ID           string
	Email        string
	PasswordHash []byte
}

// URLRecord maps a short code to its target URL and remembers who
// created it. Only the owner may view, edit or delete the record.
type URLRecord struct {
	ShortCode string
	LongURL   string
	OwnerID   string
}

// Session is the identity decoded from the signed session cookie.
// The zero value means the request carried no usable session.
type Session struct {
	UserID string
}

// Present reports whether the request carried a session identity.
// A present session is not necessarily valid: the user id still has
// to resolve against the user store.
func (s Session) Present() bool {
	return s.UserID != ""
}
