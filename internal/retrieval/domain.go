// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package retrieval

import (
	"context"

	"github.com/pdiddy/ragcore/pkg/types"
)

// domainAdapter serves a fixed, hand-curated set of mission and tool
// context blurbs. It is a constant knowledge base, not a search index:
// the query is ignored and maxResults only truncates the list (R2.1).
type domainAdapter struct{}

func (a *domainAdapter) ProviderName() string { return ProviderDomain.DisplayName() }

// Available always reports true; the context set is compiled in.
func (a *domainAdapter) Available() bool { return true }

func (a *domainAdapter) Retrieve(_ context.Context, _ string, maxResults int) ([]types.RetrievalResult, error) {
	contexts := domainContexts()
	if maxResults > 0 && len(contexts) > maxResults {
		contexts = contexts[:maxResults]
	}

	results := make([]types.RetrievalResult, 0, len(contexts))
	for _, c := range contexts {
		c.Score = 1.0
		c.Provider = a.ProviderName()
		results = append(results, c)
	}
	return results, nil
}

// domainContexts returns the curated reference documents.
func domainContexts() []types.RetrievalResult {
	return []types.RetrievalResult{
		{
			Title: "Planck Mission Context",
			URL:   "https://www.cosmos.esa.int/web/planck",
			Content: `Planck 2018 results: cosmological parameters from CMB temperature and polarization
- Key datasets: Planck 2018 TT,TE,EE+lowE+lensing+BAO
- Relevant parameters: H0, Ωm, ΩΛ, ns, As, τ
- Recent constraints: H0 = 67.4 ± 0.5 km/s/Mpc (Planck 2018)
- Lensing potential: Planck lensing reconstruction
- Systematics: foreground contamination, beam uncertainties`,
			Metadata: map[string]any{"domain": "planck", "type": "mission_context"},
		},
		{
			Title: "CAMB (Code for Anisotropies in the Microwave Background)",
			URL:   "https://camb.readthedocs.io/",
			Content: `Boltzmann solver for CMB anisotropies and matter power spectra
- Key features: scalar, vector, tensor modes; dark energy models
- Recent updates: CAMB 1.3+ with improved precision
- Applications: parameter estimation, likelihood analysis
- Integration: CosmoMC, MontePython, Cobaya
- Outputs: Cl, P(k), transfer functions`,
			Metadata: map[string]any{"domain": "camb", "type": "tool_context"},
		},
		{
			Title: "CLASSY (Cosmic Linear Anisotropy Solving System)",
			URL:   "https://class-code.net/",
			Content: `Alternative to CAMB for CMB and LSS calculations
- Features: high precision, modular design, dark energy models
- Recent work: CLASSY-SZ for Sunyaev-Zel'dovich effects
- Applications: parameter estimation, model comparison
- Integration: MontePython, Cobaya
- Advantages: speed, flexibility, extended models`,
			Metadata: map[string]any{"domain": "classy", "type": "tool_context"},
		},
	}
}
