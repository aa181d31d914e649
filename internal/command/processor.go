package command

import (
	"context"
	"errors"
)

// Processor runs the receiving side of the protocol: verify the
// signature, decode the token, dispatch the command. Verification comes
// first; a token with a bad signature is never decoded into an executed
// command.
type Processor struct {
	signer     *Signer
	dispatcher *Dispatcher
}

// NewProcessor combines a signer and dispatcher.
func NewProcessor(signer *Signer, dispatcher *Dispatcher) (*Processor, error) {
	if signer == nil || dispatcher == nil {
		return nil, errors.New("processor requires a signer and a dispatcher")
	}
	return &Processor{signer: signer, dispatcher: dispatcher}, nil
}

// Process handles one signed token. Signature and decode failures are
// terminal: the result explains the failure and nothing is executed.
func (p *Processor) Process(ctx context.Context, token, signature string) (Result, error) {
	if !p.signer.Verify(token, signature) {
		return Result{Message: "Invalid command signature. Do not trust this link."}, ErrSignatureMismatch
	}
	cmd, err := Decode(token)
	if err != nil {
		return Result{Message: "Cannot decode command."}, err
	}
	return p.dispatcher.Apply(ctx, cmd)
}

// Dispatch executes an already-decoded command, the unsigned input
// path.
func (p *Processor) Dispatch(ctx context.Context, cmd Command) (Result, error) {
	return p.dispatcher.Apply(ctx, cmd)
}

// Preview verifies and decodes a signed token without executing it.
func (p *Processor) Preview(token, signature string) (Command, error) {
	if !p.signer.Verify(token, signature) {
		return Command{}, ErrSignatureMismatch
	}
	return Decode(token)
}
