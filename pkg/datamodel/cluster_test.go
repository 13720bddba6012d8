package datamodel

import "testing"

func TestClusterBaseIdentity(t *testing.T) {
	cb := NewClusterBase(0x0031, 0, 1)

	if cb.ID() != 0x0031 {
		t.Errorf("expected cluster ID 0x0031, got 0x%04x", cb.ID())
	}
	if cb.EndpointID() != 0 {
		t.Errorf("expected endpoint 0, got %d", cb.EndpointID())
	}
	if cb.ClusterRevision() != 1 {
		t.Errorf("expected revision 1, got %d", cb.ClusterRevision())
	}
}

func TestClusterBaseDataVersion(t *testing.T) {
	cb := NewClusterBase(0x0031, 0, 1)

	initial := cb.DataVersion()
	cb.IncrementDataVersion()
	if cb.DataVersion() != initial+1 {
		t.Errorf("expected data version %d, got %d", initial+1, cb.DataVersion())
	}
}

func TestClusterBaseCommandPath(t *testing.T) {
	cb := NewClusterBase(0x0031, 2, 1)

	path := cb.CommandPath(0x06)
	if path.Endpoint != 2 || path.Cluster != 0x0031 || path.Command != 0x06 {
		t.Errorf("unexpected command path: %+v", path)
	}
	if path.ClusterPath() != cb.Path() {
		t.Errorf("command path cluster portion does not match cluster path")
	}
}

func TestFindCommand(t *testing.T) {
	list := []CommandEntry{
		{ID: 0x02, InvokePrivilege: PrivilegeAdminister},
		{ID: 0x06, InvokePrivilege: PrivilegeAdminister, Quality: CmdQualityTimed},
	}

	if e := FindCommand(list, 0x06); e == nil {
		t.Fatal("expected to find command 0x06")
	} else if !e.RequiresTimed() {
		t.Error("expected command 0x06 to require timed interaction")
	}

	if e := FindCommand(list, 0x02); e == nil {
		t.Fatal("expected to find command 0x02")
	} else if e.RequiresTimed() {
		t.Error("command 0x02 should not require timed interaction")
	}

	if e := FindCommand(list, 0xff); e != nil {
		t.Errorf("expected nil for unknown command, got %+v", e)
	}
}

func TestInvokeRequestFlags(t *testing.T) {
	req := InvokeRequest{InvokeFlags: InvokeFlagTimed}
	if !req.IsTimed() {
		t.Error("expected timed invoke")
	}
	if req.IsInternal() {
		t.Error("unexpected internal flag")
	}

	internal := InvokeRequest{OperationFlags: OpFlagInternal}
	if !internal.IsInternal() {
		t.Error("expected internal invoke")
	}
}
