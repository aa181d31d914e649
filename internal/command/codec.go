package command

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// Encode serializes the command to compact JSON and applies the URL-safe
// base64 transform with padding stripped. The byte sequence produced
// here is exactly what gets signed.
func Encode(cmd Command) (string, error) {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return "", fmt.Errorf("encode command: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(payload), nil
}

// Decode reverses Encode. Any stripped padding is tolerated, the token
// must use the URL-safe alphabet, and the payload must parse as a
// command object. All failures wrap ErrDecode; Decode never panics.
func Decode(token string) (Command, error) {
	payload, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(token, "="))
	if err != nil {
		return Command{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	var cmd Command
	if err := json.Unmarshal(payload, &cmd); err != nil {
		return Command{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return cmd, nil
}

// Parse reads a raw pasted JSON command, the unsigned input path.
func Parse(text string) (Command, error) {
	var cmd Command
	if err := json.Unmarshal([]byte(text), &cmd); err != nil {
		return Command{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return cmd, nil
}
