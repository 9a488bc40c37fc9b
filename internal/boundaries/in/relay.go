package in

import (
	"net/http"

	"github.com/wyc-thg/broker/internal/domain"
)

// RelayService builds the handler for every request not served by the
// status endpoints.
type RelayService interface {
	Request(filters domain.FilterSet) http.Handler
}
