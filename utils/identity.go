package utils

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// UserInfo is the OIDC userinfo payload returned by the identity
// provider.
type UserInfo struct {
	Sub        string `json:"sub"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

// IdentityClient fetches account profiles from the external identity
// provider. The portal never manages credentials itself; it only mirrors
// what the provider reports.
type IdentityClient struct {
	client *resty.Client
}

func NewIdentityClient(baseURL string) *IdentityClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(2)
	return &IdentityClient{client: client}
}

// FetchUserInfo calls the provider's userinfo endpoint with the caller's
// access token.
func (ic *IdentityClient) FetchUserInfo(accessToken string) (*UserInfo, error) {
	var info UserInfo
	resp, err := ic.client.R().
		SetAuthToken(accessToken).
		SetResult(&info).
		Get("/oidc/userinfo")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("userinfo request failed with status %d", resp.StatusCode())
	}
	if info.Sub == "" {
		return nil, fmt.Errorf("userinfo response missing subject")
	}
	return &info, nil
}
