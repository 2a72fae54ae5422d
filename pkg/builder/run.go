package builder

import (
	"github.com/google/uuid"

	"github.com/fabricgen-network/fabricgen/pkg/lab"
)

// Run carries the state shared across all builder invocations of one
// conversion run: the run identifier, the deployment pattern, and the
// role → AS number map assembled from the topology's switch entries.
// It is built once by the caller and passed to every Build call, so no
// cross-switch state lives inside the builders themselves.
type Run struct {
	ID        string
	Site      string
	Pattern   string
	ASNByRole map[string]uint32
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// NewRun derives the run-scoped state from a parsed topology.
func NewRun(topo *lab.Topology) *Run {
	return &Run{
		ID:        uuid.NewString(),
		Site:      topo.Site(),
		Pattern:   topo.DeploymentPattern(),
		ASNByRole: topo.ASNByRole(),
	}
}
