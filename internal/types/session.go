package types

// Credential is a transient username/password pair. It is never stored or
// logged.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// User is the minimal profile attached to a session
type User struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Session is handed to the client on successful login; nothing is kept
// server side.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
	// Demo is set when the session was issued by the offline demo check
	Demo bool `json:"-"`
}

// AuthResponse is the body returned by the login and logout endpoints
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
	User    *User  `json:"user,omitempty"`
}
