package command

import (
	"errors"
	"net/url"
)

// BuildLink encodes and signs the command and assembles a shareable URL
// with cmd and sig query parameters. Pure; no network or state.
func BuildLink(signer *Signer, baseURL string, cmd Command) (string, error) {
	if signer == nil {
		return "", errors.New("signer required")
	}
	if baseURL == "" {
		return "", errors.New("base url required")
	}
	token, err := Encode(cmd)
	if err != nil {
		return "", err
	}
	params := url.Values{}
	params.Set("cmd", token)
	params.Set("sig", signer.Sign(token))
	return baseURL + "?" + params.Encode(), nil
}
