package clusters

import (
	"errors"
	"testing"

	"github.com/provnet/matter/pkg/datamodel"
)

func TestRequireTimed(t *testing.T) {
	timed := datamodel.InvokeRequest{InvokeFlags: datamodel.InvokeFlagTimed}
	if err := RequireTimed(timed); err != nil {
		t.Errorf("expected timed request to pass, got %v", err)
	}

	untimed := datamodel.InvokeRequest{}
	if err := RequireTimed(untimed); !errors.Is(err, ErrTimedRequired) {
		t.Errorf("expected ErrTimedRequired, got %v", err)
	}
}
