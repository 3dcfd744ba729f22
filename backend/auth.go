package backend

// AuthClient talks to the auth service.
type AuthClient struct {
	c *Client
}

func NewAuthClient(baseURL string) *AuthClient {
	// Login and registration never carry a bearer token.
	return &AuthClient{c: New(baseURL, nil)}
}

// LoginResponse is the auth service's answer to POST /auth/login.
type LoginResponse struct {
	Token  string `json:"token"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
}

// Login exchanges credentials for a token and user snapshot.
func (a *AuthClient) Login(email, password string) (*LoginResponse, error) {
	var out LoginResponse
	err := a.c.post("/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account. The caller is expected to follow up
// with Login using the same credentials.
func (a *AuthClient) Register(nombre, email, password, rol string) error {
	return a.c.post("/auth/register", map[string]string{
		"nombre":   nombre,
		"email":    email,
		"password": password,
		"rol":      rol,
	}, nil)
}
