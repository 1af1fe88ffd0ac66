package crmtext

import (
	"encoding/base64"
	"strings"
)

// AuthToken derives the API token for a CRMText account: the standard
// base64 encoding of "username:password:KEYWORD", keyword upper-cased.
//
// The token travels in an `Authorization: Basic` header but is not a
// regular basic-auth credential.
func AuthToken(username, password, keyword string) string {
	raw := username + ":" + password + ":" + strings.ToUpper(keyword)
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

func missingCredentials(username, password, keyword string) []string {
	var missing []string
	if username == "" {
		missing = append(missing, "username")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if keyword == "" {
		missing = append(missing, "keyword")
	}

	return missing
}
