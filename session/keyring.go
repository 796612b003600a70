package session

import (
	"errors"
	"strings"

	"github.com/kinotv/kino/constant"
	"github.com/kinotv/kino/log"
	"github.com/zalando/go-keyring"
)

const (
	cookieUser    = "cookie"
	userAgentUser = "user-agent"
)

// Keyring stores credentials in the OS keyring under the app's service name.
type Keyring struct {
	service string
}

func NewKeyring() *Keyring {
	return &Keyring{service: constant.Kino}
}

func (k *Keyring) get(user string) (string, bool) {
	value, err := keyring.Get(k.service, user)
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			log.Warnf("keyring read %s: %s", user, err)
		}
		return "", false
	}

	value = strings.TrimSpace(value)
	return value, value != ""
}

func (k *Keyring) Cookie() (string, bool) {
	return k.get(cookieUser)
}

func (k *Keyring) UserAgent() (string, bool) {
	return k.get(userAgentUser)
}

func (k *Keyring) SetCookie(cookie string) error {
	return keyring.Set(k.service, cookieUser, strings.TrimSpace(cookie))
}

func (k *Keyring) SetUserAgent(ua string) error {
	return keyring.Set(k.service, userAgentUser, strings.TrimSpace(ua))
}

func (k *Keyring) Clear() {
	for _, user := range []string{cookieUser, userAgentUser} {
		if err := keyring.Delete(k.service, user); err != nil && !errors.Is(err, keyring.ErrNotFound) {
			log.Warnf("keyring delete %s: %s", user, err)
		}
	}
}
