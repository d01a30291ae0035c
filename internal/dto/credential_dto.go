package dto

// SaveCredentialRequest submits a provider API key for verification and
// storage.
type SaveCredentialRequest struct {
	Key string `json:"key" validate:"required"`
}

// CredentialResponse reports credential status. MaskedKey shows only the
// first and last few characters, for the settings surface.
type CredentialResponse struct {
	Configured bool   `json:"configured"`
	MaskedKey  string `json:"masked_key,omitempty"`
}
