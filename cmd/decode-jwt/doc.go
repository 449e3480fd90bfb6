// Command decode-jwt decodes the payload segment of a JSON Web Token
// without verifying its signature.
//
// It is a diagnostic convenience for developers inspecting tokens during
// testing or debugging. The token is taken from the first argument, or from
// standard input when no argument is given:
//
//	decode-jwt eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxMjM0NTY3ODkwIn0.dummy
//	echo "$TOKEN" | decode-jwt
//
// On success the decoded payload is pretty-printed as JSON. On failure a
// one-line diagnostic is printed instead and the process still exits 0; the
// tool declines to print a payload rather than failing the process.
//
// decode-jwt performs no signature verification, no claim validation, and
// no network or file I/O. Do not use it to decide whether a token is
// trustworthy.
package main
