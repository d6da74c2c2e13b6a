package linkflow

import (
	"context"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
)

// Sandbox is the provider's test environment: a fixed institution catalog
// and fabricated tokens, mirroring how the aggregation provider's sandbox
// accepts any credentials.
type Sandbox struct {
	catalog []Institution
}

func NewSandbox() *Sandbox {
	return &Sandbox{catalog: []Institution{
		{ID: "ins_sb_001", Name: "State Bank of India"},
		{ID: "ins_sb_002", Name: "HDFC Bank"},
		{ID: "ins_sb_003", Name: "ICICI Bank"},
		{ID: "ins_sb_004", Name: "Axis Bank"},
		{ID: "ins_sb_005", Name: "Kotak Mahindra Bank"},
		{ID: "ins_sb_006", Name: "Punjab National Bank"},
		{ID: "ins_sb_007", Name: "Bank of Baroda"},
		{ID: "ins_sb_008", Name: "Chase"},
		{ID: "ins_sb_009", Name: "Wells Fargo"},
		{ID: "ins_sb_010", Name: "Bank of America"},
	}}
}

func (s *Sandbox) Ready() bool { return true }

// Institutions returns the catalog filtered and ranked against query.
// Substring hits rank above pure edit-distance similarity; weak matches are
// dropped entirely.
func (s *Sandbox) Institutions(query string) []Institution {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]Institution, len(s.catalog))
		copy(out, s.catalog)
		return out
	}

	type ranked struct {
		inst  Institution
		score float64
	}
	matches := make([]ranked, 0, len(s.catalog))
	for _, inst := range s.catalog {
		name := strings.ToLower(inst.Name)
		score := similarity(name, query)
		if strings.Contains(name, query) {
			score += 1
		}
		if score < 0.3 {
			continue
		}
		matches = append(matches, ranked{inst: inst, score: score})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].inst.Name < matches[j].inst.Name
	})
	out := make([]Institution, len(matches))
	for i, m := range matches {
		out[i] = m.inst
	}
	return out
}

// similarity is normalized edit distance over the longer string.
func similarity(a, b string) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

// Authorize fabricates a sandbox approval: a one-time public token and a
// pair of authorized accounts at the chosen institution.
func (s *Sandbox) Authorize(ctx context.Context, linkToken string, inst Institution) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if strings.TrimSpace(linkToken) == "" {
		return Result{}, ErrNotReady
	}
	return Result{
		PublicToken:     "public-sandbox-" + uuid.NewString(),
		InstitutionID:   inst.ID,
		InstitutionName: inst.Name,
		Accounts: []AuthorizedAccount{
			{ID: uuid.NewString(), Name: "Business Checking"},
			{ID: uuid.NewString(), Name: "Business Savings"},
		},
	}, nil
}
