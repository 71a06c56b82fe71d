package models

// User is an account record holding its own collection. The password is
// stored as supplied; hardening credential storage is explicitly out of scope
// for this application.
type User struct {
	Username   string            `json:"username"`
	Password   string            `json:"password"`
	Collection []CollectionEntry `json:"collection"`
}

// AuthResult is the outcome of a signup or login attempt. Failures are
// reported through Message rather than an error so transient user mistakes
// never bubble up as exceptions.
type AuthResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	User    *User  `json:"user,omitempty"`
}

// Session is the persisted pointer to the currently signed-in user.
type Session struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}
