// Package playback decodes the player payload attached to each link row.
package playback

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrNoSource = errors.New("payload has no src")

type payload struct {
	Src string `json:"src"`
}

// Decode turns an encoded payload into the player URL it points at.
func Decode(encoded string) (string, error) {
	encoded = strings.Join(strings.Fields(encoded), "")

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		raw, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(encoded, "="))
		if err != nil {
			return "", fmt.Errorf("decode payload: %w", err)
		}
	}

	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return "", fmt.Errorf("unmarshal payload: %w", err)
	}
	if p.Src == "" {
		return "", ErrNoSource
	}

	return fixURL(p.Src), nil
}

func fixURL(u string) string {
	if strings.HasPrefix(u, "httpss:") {
		u = "https:" + strings.TrimPrefix(u, "httpss:")
	}
	return strings.ReplaceAll(u, `\/`, "/")
}
