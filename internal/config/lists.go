// internal/config/lists.go
//
// List-field normalization.
//
// Context
// -------
// Two parsing flavors exist.  ALLOWED_FILE_EXTENSIONS and
// EXCLUDED_DIRECTORIES take the plain comma flavor.  CORS_ORIGINS takes the
// JSON-or-comma flavor: a bracketed JSON array of strings when it parses,
// comma splitting otherwise.
//
// Notes
// -----
//   • Order is preserved, tokens are trimmed, empties dropped, and there is
//     no de-duplication.
//   • Oxford commas, two spaces after periods.

package config

import (
	"encoding/json"
	"strings"
)

// parseCommaList splits s on commas into trimmed, non-empty tokens.  An
// empty or whitespace-only input yields an empty sequence.
func parseCommaList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, tok := range strings.Split(s, ",") {
		if t := strings.TrimSpace(tok); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// parseOriginList normalizes the cross-origin allow-list.  Surrounding
// whitespace and one layer of matching quotes are stripped first; a
// bracket-delimited remainder is tried as a JSON array of strings.
//
// A bracketed literal that fails to parse degrades to comma splitting of
// the same text, so `[not json` comes back as a single token.  Surprising,
// but existing deployments rely on it; do not tighten without a product
// decision.
func parseOriginList(s string) []string {
	v := strings.TrimSpace(s)
	if len(v) >= 2 {
		if q := v[0]; (q == '"' || q == '\'') && v[len(v)-1] == q {
			v = v[1 : len(v)-1]
		}
	}

	if strings.HasPrefix(v, "[") && strings.HasSuffix(v, "]") {
		var arr []string
		if err := json.Unmarshal([]byte(v), &arr); err == nil {
			var out []string
			for _, e := range arr {
				if t := strings.TrimSpace(e); t != "" {
					out = append(out, t)
				}
			}
			return out
		}
	}
	return parseCommaList(v)
}
