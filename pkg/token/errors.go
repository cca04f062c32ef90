package token

import "fmt"

type ErrConfig struct{ Msg string }

func (e ErrConfig) Error() string { return "token config: " + e.Msg }

type ErrSign struct{ Err error }

func (e ErrSign) Error() string { return fmt.Sprintf("token signing failed: %v", e.Err) }
func (e ErrSign) Unwrap() error { return e.Err }

type ErrInvalidToken struct{ Reason string }

func (e ErrInvalidToken) Error() string { return "invalid token: " + e.Reason }
