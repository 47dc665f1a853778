package api

import (
	"encoding/json"
)

// The backend wraps payloads inconsistently: {success, data: {...}},
// {data: {...}}, or a flat object. Each helper below is one ordered
// chain of extraction strategies tried in sequence.

type envelope map[string]json.RawMessage

func parseEnvelope(body []byte) envelope {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil
	}
	return env
}

func isJSONObject(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// unwrapData returns the payload object of a response: a nested "data"
// object wins over the flat body; otherwise the body itself is the
// payload.
func unwrapData(body []byte) []byte {
	env := parseEnvelope(body)
	if data, ok := env["data"]; ok && isJSONObject(data) {
		return data
	}
	return body
}

// extractField looks a field up directly, then under "data".
func extractField(body []byte, field string) (json.RawMessage, bool) {
	env := parseEnvelope(body)
	if raw, ok := env[field]; ok {
		return raw, true
	}
	if data, ok := env["data"]; ok && isJSONObject(data) {
		inner := parseEnvelope(data)
		if raw, ok := inner[field]; ok {
			return raw, true
		}
	}
	return nil, false
}

func extractString(body []byte, field string) string {
	raw, ok := extractField(body, field)
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// extractToken finds the session token in a login response: "token",
// then "accessToken", then "data.token".
func extractToken(body []byte) string {
	env := parseEnvelope(body)
	for _, field := range []string{"token", "accessToken"} {
		raw, ok := env[field]
		if !ok {
			continue
		}
		var tok string
		if err := json.Unmarshal(raw, &tok); err == nil && tok != "" {
			return tok
		}
	}
	if data, ok := env["data"]; ok && isJSONObject(data) {
		inner := parseEnvelope(data)
		if raw, ok := inner["token"]; ok {
			var tok string
			if err := json.Unmarshal(raw, &tok); err == nil {
				return tok
			}
		}
	}
	return ""
}

// extractUser returns the user object of a response: "user", then
// "data.user", then the flat body as a last resort.
func extractUser(body []byte) json.RawMessage {
	if raw, ok := extractField(body, "user"); ok && isJSONObject(raw) {
		return raw
	}
	return unwrapData(body)
}

// extractMessage pulls the backend's human-readable error message, if
// any.
func extractMessage(body []byte) string {
	return extractString(body, "message")
}
