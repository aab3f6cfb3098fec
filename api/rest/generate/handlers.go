package generate

import (
	"errors"
	"net/http"

	apierrors "codeberg.org/flamesblue/server/internal/errors"
	"codeberg.org/flamesblue/server/internal/metrics"
	"codeberg.org/flamesblue/server/internal/sitegen"
	"github.com/gin-gonic/gin"
)

// creates the site generation handler
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			metrics.IncGenerationError("validation")
			apierrors.ValidationError(c, err)

			return
		}

		color := req.Color
		if color == "" {
			color = sitegen.DefaultColor
		}

		sections := sitegen.DefaultSections
		if req.Sections != nil {
			sections = *req.Sections
		}

		result, err := sitegen.Generate(req.Prompt, color, sections)
		if err != nil {
			if errors.Is(err, sitegen.ErrEmptyPrompt) {
				metrics.IncGenerationError("empty_prompt")
				apierrors.BadRequest(c, "Prompt cannot be empty", nil)

				return
			}

			metrics.IncGenerationError("internal")
			apierrors.InternalError(c, "failed to generate site", err)

			return
		}

		metrics.IncGeneration()

		c.JSON(http.StatusOK, Response{
			HTML: result.HTML,
			Meta: result.Meta,
		})
	}
}
