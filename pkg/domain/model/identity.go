package model

import (
	"encoding/json"
	"strings"

	"github.com/bayesimpact/gitreview/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// IdentityMap maps hosting-platform logins to Slack logins.
type IdentityMap map[string]string

// Lookup returns the Slack login for a platform login. A missing entry is a
// setup error that the relay routes to the admin channel.
func (x IdentityMap) Lookup(login string) (string, error) {
	slackLogin, ok := x[login]
	if !ok {
		return "", goerr.Wrap(types.ErrSetup,
			"Need to add GitHub user "+login+" to the identity map")
	}
	return slackLogin, nil
}

// ParseIdentityMap reads an identity map either as a JSON object or as a
// comma-separated list of login=slack pairs.
func ParseIdentityMap(raw string) (IdentityMap, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return IdentityMap{}, nil
	}

	if strings.HasPrefix(raw, "{") {
		var m IdentityMap
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			return nil, goerr.Wrap(err, "parsing identity map as JSON")
		}
		return m, nil
	}

	m := IdentityMap{}
	for _, pair := range strings.Split(raw, ",") {
		login, slackLogin, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid identity pair", goerr.V("pair", pair))
		}
		m[login] = slackLogin
	}
	return m, nil
}
