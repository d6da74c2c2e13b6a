package api

import "context"

// Profile is the backend's view of the logged-in business.
type Profile struct {
	Email       string `json:"email"`
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry"`
}

// Credentials is the login/registration result: a bearer token plus the
// profile it belongs to.
type Credentials struct {
	AccessToken string  `json:"access_token"`
	User        Profile `json:"user"`
}

// Login exchanges email/password for a bearer credential.
func (c *Client) Login(ctx context.Context, email, password string) (Credentials, error) {
	req := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}
	var creds Credentials
	if err := c.post(ctx, "/api/auth/login", req, &creds); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}

// Register creates an account and logs it in.
func (c *Client) Register(ctx context.Context, email, password, companyName, industry string) (Credentials, error) {
	req := struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		CompanyName string `json:"company_name"`
		Industry    string `json:"industry"`
	}{email, password, companyName, industry}
	var creds Credentials
	if err := c.post(ctx, "/api/auth/register", req, &creds); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}
