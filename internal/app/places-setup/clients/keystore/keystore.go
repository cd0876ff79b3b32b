package keystore

import (
	"github.com/atotto/clipboard"
	"github.com/rotisserie/eris"
	"github.com/zalando/go-keyring"
)

var ErrClipboardUnavailable = eris.New("no clipboard utility available")

func (c *Client) CopyToClipboard(secret string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(secret); err != nil {
		return eris.Wrap(err, "failed to write to clipboard")
	}
	return nil
}

func (c *Client) Save(account, secret string) error {
	if err := keyring.Set(KeyringService, account, secret); err != nil {
		return eris.Wrapf(err, "failed to store key for %s in keyring", account)
	}
	return nil
}

func (c *Client) Load(account string) (string, error) {
	secret, err := keyring.Get(KeyringService, account)
	if err != nil {
		return "", eris.Wrapf(err, "failed to read key for %s from keyring", account)
	}
	return secret, nil
}
