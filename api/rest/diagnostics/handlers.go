package diagnostics

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

// CollectionLister is the optional database capability the probe inspects.
type CollectionLister interface {
	Name() string
	ListCollections(ctx context.Context) ([]string, error)
}

const (
	// at most this many collection names are reported
	maxCollections = 10

	// listing errors are truncated to this many bytes in the status string
	maxErrorChars = 50

	listTimeout = 5 * time.Second
)

// Handler builds the best-effort database probe. The store may be nil when no
// database is configured; every failure path degrades to a status string.
func Handler(store CollectionLister) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := Response{
			Backend:          "✅ Running",
			Database:         "❌ Not Available",
			ConnectionStatus: "Not Connected",
			Collections:      []string{},
		}

		if store != nil {
			resp.Database = "✅ Available"
			resp.ConnectionStatus = "Connected"

			ctx, cancel := context.WithTimeout(c.Request.Context(), listTimeout)
			names, err := store.ListCollections(ctx)
			cancel()

			if err != nil {
				resp.Database = "⚠️  Connected but Error: " + truncateError(err)
			} else {
				if len(names) > maxCollections {
					names = names[:maxCollections]
				}

				resp.Collections = names
				resp.Database = "✅ Connected & Working"
			}
		}

		resp.DatabaseURL = envStatus("DATABASE_URL")
		resp.DatabaseName = envStatus("DATABASE_NAME")

		c.JSON(http.StatusOK, resp)
	}
}

// reports presence of an environment variable without exposing its value
func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}

	return "❌ Not Set"
}

func truncateError(err error) string {
	msg := err.Error()
	if len(msg) > maxErrorChars {
		msg = msg[:maxErrorChars]
	}

	return msg
}
