package types

// BuildResult holds the outcome of assembling one material's shader
// network.
type BuildResult struct {
	Material      string   `json:"material"`
	Built         bool     `json:"built"`
	TexturesWired int      `json:"textures_wired"`
	SkippedTokens []string `json:"skipped_tokens,omitempty"`
	Error         error    `json:"error,omitempty"`
}
