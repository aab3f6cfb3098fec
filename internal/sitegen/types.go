package sitegen

// Meta records the normalized inputs a document was generated from.
type Meta struct {
	Prompt   string `json:"prompt"`
	Color    string `json:"color"`
	Sections int    `json:"sections"`
}

// Result is a rendered document together with its generation metadata.
type Result struct {
	HTML string `json:"html"`
	Meta Meta   `json:"meta"`
}
