package chain

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"
	"syscall"
)

// Kind classifies a failed chain read into the closed set the HTTP layer
// switches on. Classification is structural wherever possible; substring
// matching on the error text is only a safety net for provider errors that
// slip past the early bytecode probe.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotDeployed
	KindTimeout
	KindUnreachable
)

func (k Kind) String() string {
	switch k {
	case KindNotDeployed:
		return "not_deployed"
	case KindTimeout:
		return "timeout"
	case KindUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// Error is the only error type that crosses the chain package boundary.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the classification from an error returned by a Client
// operation. Errors of any other shape report KindUnknown.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}

func classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}

	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return KindUnreachable
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return KindUnreachable
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return KindUnreachable
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return KindUnreachable
	}

	// Safety net for errors surfaced as plain strings by the provider or the
	// deeper invocation path.
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "no contract code"),
		strings.Contains(msg, "execution reverted"):
		return KindNotDeployed
	case strings.Contains(msg, "timeout"),
		strings.Contains(msg, "deadline exceeded"):
		return KindTimeout
	case strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "no such host"),
		strings.Contains(msg, "503"):
		return KindUnreachable
	}

	return KindUnknown
}

func isTransient(k Kind) bool {
	return k == KindTimeout || k == KindUnreachable
}
