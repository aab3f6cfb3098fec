package functions

import "codeberg.org/flamesblue/server/internal/catalog"

// Response wraps the capability list for the UI.
type Response struct {
	Functions []catalog.Capability `json:"functions"`
}
