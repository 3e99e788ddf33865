package entity

// Principal is the verified identity derived from a bearer credential for
// the duration of one request. It is never persisted; the matching Account
// record is looked up separately when a route requires a role.
type Principal struct {
	UID      string         // Subject identifier assigned by the identity provider.
	Email    string         // Verified email address of the subject.
	Name     string         // Display name claim, if present.
	PhotoURL string         // Picture claim, if present.
	Claims   map[string]any // Raw claims as reported by the verifier.
}
