package banking

import "fmt"

// LinkOutcomeKind tags the three shapes the create-link-token endpoint can
// answer with. Switching on the kind keeps the fallback branches exhaustive
// instead of duck-typing field presence.
type LinkOutcomeKind int

const (
	// OutcomeRealSession carries a usable link token.
	OutcomeRealSession LinkOutcomeKind = iota
	// OutcomeDemoWithError means the integration is misconfigured
	// server-side; Reason carries the backend's explanation.
	OutcomeDemoWithError
	// OutcomeDemoClean is intentional demo mode, no error attached.
	OutcomeDemoClean
)

// LinkOutcome is the classified result of a link-session request.
type LinkOutcome struct {
	Kind      LinkOutcomeKind
	LinkToken string
	Reason    string
}

// ClassifyLinkResponse maps the wire fields onto a tagged outcome. A
// response with neither a token nor the demo marker is malformed and treated
// as an error so the caller can take its transport-failure fallback rather
// than silently doing nothing.
func ClassifyLinkResponse(linkToken string, isDemo bool, reason string) (LinkOutcome, error) {
	switch {
	case linkToken != "":
		return LinkOutcome{Kind: OutcomeRealSession, LinkToken: linkToken}, nil
	case isDemo && reason != "":
		return LinkOutcome{Kind: OutcomeDemoWithError, Reason: reason}, nil
	case isDemo:
		return LinkOutcome{Kind: OutcomeDemoClean}, nil
	default:
		return LinkOutcome{}, fmt.Errorf("link response carries neither token nor demo marker")
	}
}
