package models

// SetupOptions carries the flags for one provisioning run. Stages receive it by pointer
// and may flip the degraded-mode flags; later stages must observe those writes.
type SetupOptions struct {
	ProjectID   string
	ProjectName string
	SkipAuth    bool
	AutoConfirm bool
	NoBilling   bool
	MockBilling bool
	Debug       bool

	CopyKey bool
	SaveKey bool
}

// IsDegraded reports whether provider calls must be replaced by placeholders.
func (o *SetupOptions) IsDegraded() bool {
	return o.NoBilling || o.MockBilling
}

// CommandResult is the outcome of one gcloud invocation. Output holds stdout on
// success and the error text on failure.
type CommandResult struct {
	Success bool
	Output  string
}

type APIKeyRecord struct {
	APIKey string
	KeyID  string
	IsMock bool
}

// SetupResult is the terminal value of a pipeline run.
type SetupResult struct {
	Success   bool   `json:"success"`
	APIKey    string `json:"apiKey,omitempty"`
	ProjectID string `json:"projectId,omitempty"`
	IsMock    bool   `json:"isMock,omitempty"`
	Error     string `json:"error,omitempty"`
}

type PreflightResult struct {
	Installed    bool
	NeedsRestart bool
}
