package command_test

import (
	"strings"
	"testing"

	"zamek/internal/command"
)

func TestNewSignerRequiresSecret(t *testing.T) {
	if _, err := command.NewSigner(""); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestSignIsLowercaseHex(t *testing.T) {
	signer, err := command.NewSigner("tajny-klucz")
	if err != nil {
		t.Fatalf("NewSigner returned error: %v", err)
	}
	sig := signer.Sign("token")
	if len(sig) != 64 {
		t.Fatalf("signature length = %d, want 64", len(sig))
	}
	if sig != strings.ToLower(sig) {
		t.Fatalf("signature not lowercase: %q", sig)
	}
	if sig != signer.Sign("token") {
		t.Fatal("signature not deterministic")
	}
}

func TestVerifyRejectsOtherKey(t *testing.T) {
	first, err := command.NewSigner("klucz-1")
	if err != nil {
		t.Fatalf("NewSigner returned error: %v", err)
	}
	second, err := command.NewSigner("klucz-2")
	if err != nil {
		t.Fatalf("NewSigner returned error: %v", err)
	}
	token := "eyJvcCI6InVwZGF0ZV9wcm9wZXJ0aWVzIn0"
	if second.Verify(token, first.Sign(token)) {
		t.Fatal("signature from a different key must not verify")
	}
	if !first.Verify(token, first.Sign(token)) {
		t.Fatal("signature from own key must verify")
	}
}

func TestVerifyDetectsTamperedToken(t *testing.T) {
	signer, err := command.NewSigner("tajny-klucz")
	if err != nil {
		t.Fatalf("NewSigner returned error: %v", err)
	}
	token, err := command.Encode(command.Command{
		Op:    command.OpUpdateProperties,
		Page:  "#8 Opera",
		Props: map[string]string{"Status": "Nagrany"},
	})
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	sig := signer.Sign(token)

	// Flip every position one at a time; none may still verify.
	for i := 0; i < len(token); i++ {
		flipped := []byte(token)
		if flipped[i] == 'A' {
			flipped[i] = 'B'
		} else {
			flipped[i] = 'A'
		}
		if string(flipped) == token {
			continue
		}
		if signer.Verify(string(flipped), sig) {
			t.Fatalf("tampered token at position %d still verifies", i)
		}
	}
}
