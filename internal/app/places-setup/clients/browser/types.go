package browser

// ClientInterface defines the contract for browser operations.
type ClientInterface interface {
	OpenURL(url string) error
}

var _ ClientInterface = (*Client)(nil)

// Client implements browser operations.
type Client struct {
	// GOOS selects the launcher; empty means runtime.GOOS.
	GOOS string
}

// NewClient creates a new browser client.
func NewClient() ClientInterface {
	return &Client{}
}
