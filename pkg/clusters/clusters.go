// Package clusters provides shared infrastructure for cluster
// implementations.
//
// Clusters implement the datamodel.Cluster interface and use composition:
//
//	type MyCluster struct {
//	    *datamodel.ClusterBase
//	}
//
// Individual cluster implementations live in subpackages:
//   - clusters/networkcommissioning: Network Commissioning Cluster (0x0031)
package clusters

import (
	"errors"

	"github.com/provnet/matter/pkg/datamodel"
)

// ErrTimedRequired is returned when a command requires timed invocation
// but the request was not part of a timed interaction.
var ErrTimedRequired = errors.New("command requires timed invocation")

// RequireTimed checks if the invoke request is part of a timed interaction.
// Returns ErrTimedRequired if not.
//
// Usage in command handlers:
//
//	if entry.RequiresTimed() {
//	    if err := clusters.RequireTimed(req); err != nil {
//	        return nil, err
//	    }
//	}
func RequireTimed(req datamodel.InvokeRequest) error {
	if !req.IsTimed() {
		return ErrTimedRequired
	}
	return nil
}
