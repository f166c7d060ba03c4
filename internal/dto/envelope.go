package dto

// DataEnvelope is the uniform success body for the public endpoints.
type DataEnvelope struct {
	Data any `json:"data"`
}
