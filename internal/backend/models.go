package backend

// RegistrationRequest is the identity payload for the registration endpoint.
type RegistrationRequest struct {
	Name  string `json:"name"`
	RegNo string `json:"regNo"`
	Email string `json:"email"`
}

// WebhookGrant is the webhook URL and access token issued by registration.
type WebhookGrant struct {
	Webhook     string `json:"webhook"`
	AccessToken string `json:"accessToken"`
}

// Complete reports whether both grant fields are present.
func (g WebhookGrant) Complete() bool {
	return g.Webhook != "" && g.AccessToken != ""
}

// SolutionSubmission carries the selected SQL text.
type SolutionSubmission struct {
	FinalQuery string `json:"finalQuery"`
}
