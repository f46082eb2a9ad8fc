package model

// Credentials are the operator's backend login details.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Session is what the rest of the program needs to know about the
// current login: whether a token is on file. The token itself never
// leaves the session store.
type Session struct {
	Authenticated bool `json:"authenticated"`
}
