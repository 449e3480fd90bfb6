// Package token decodes JSON Web Tokens without verifying them.
//
// A JWT in compact serialization is three dot-separated base64url segments:
// header, payload, signature. This package splits a token, restores the
// padding the compact form omits, and parses the segments as JSON. It never
// verifies signatures and never validates claims; it exists for inspecting
// tokens, not trusting them.
//
// # Basic Usage
//
//	payload, err := token.DecodePayload(raw)
//	if err != nil {
//	    fmt.Println(err)
//	    return
//	}
//
//	pretty, _ := json.MarshalIndent(payload, "", "  ")
//	fmt.Println(string(pretty))
//
// For tokens whose payload is a JSON object, Parse gives access to the
// header and individual claims:
//
//	tok, err := token.Parse(raw)
//	if err != nil {
//	    fmt.Println(err)
//	    return
//	}
//
//	login := tok.Sub()
package token
