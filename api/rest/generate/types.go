package generate

import "codeberg.org/flamesblue/server/internal/sitegen"

// Request is the body for site generation. Color and section count are
// optional; defaults are applied in the handler. Sections is a pointer so an
// absent field is distinguishable from an explicit zero, which the binding
// rejects.
type Request struct {
	Prompt   string `json:"prompt"`
	Color    string `json:"color"`
	Sections *int   `json:"sections" binding:"omitempty,min=1,max=6"`
}

// Response carries the rendered document and its generation metadata.
type Response struct {
	HTML string       `json:"html"`
	Meta sitegen.Meta `json:"meta"`
}
