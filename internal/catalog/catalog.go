// Package catalog holds the fixed list of capabilities the builder advertises
// to callers. The descriptors have no executable behavior; the UI renders them.
package catalog

// Capability advertises one feature of the builder.
type Capability struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Free        bool   `json:"free"`
}

var capabilities = []Capability{
	{
		ID:          "prompt-to-landing",
		Name:        "Prompt → Landing Page",
		Description: "Generate a responsive landing page layout from a short idea.",
		Free:        true,
	},
	{
		ID:          "brand-colors",
		Name:        "Brand Colors",
		Description: "Apply a preset accent color across buttons, badges, and highlights.",
		Free:        true,
	},
	{
		ID:          "hero-3d",
		Name:        "3D Hero Animation",
		Description: "Drop in an interactive Spline animation for a futuristic hero.",
		Free:        true,
	},
	{
		ID:          "feature-grid",
		Name:        "Feature Grid",
		Description: "Auto-generate a clean features grid with icons and copy.",
		Free:        true,
	},
	{
		ID:          "export",
		Name:        "One-Click Export",
		Description: "Copy the generated HTML instantly.",
		Free:        true,
	},
}

// Capabilities returns a copy of the fixed capability list so callers cannot
// mutate the canonical slice.
func Capabilities() []Capability {
	out := make([]Capability, len(capabilities))
	copy(out, capabilities)

	return out
}
