// Package health provides the service health endpoint.
package health

import (
	"net/http"

	"github.com/crumbwork/ladle/internal/api/features/common"
)

// Health reports service liveness.
func Health(w http.ResponseWriter, _ *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
