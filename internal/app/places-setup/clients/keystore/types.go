package keystore

// ClientInterface hands a freshly issued key to the operator's local tools.
type ClientInterface interface {
	// CopyToClipboard places secret on the system clipboard.
	CopyToClipboard(secret string) error
	// Save stores secret in the OS keyring under the given account.
	Save(account, secret string) error
	// Load reads a secret previously stored with Save.
	Load(account string) (string, error)
}

// KeyringService is the keyring service name every key is stored under.
const KeyringService = "places-setup"

var _ ClientInterface = (*Client)(nil)

type Client struct{}

func NewClient() ClientInterface {
	return &Client{}
}
