package shell

import (
	"testing"
)

func TestSuspend_NilSuspendReleaseIsNoOp(t *testing.T) {
	var s *Suspend
	s.Release() // must not panic
}

func TestSuspend_NilCookedStateSkipsRestore(t *testing.T) {
	s := NewSuspend(0, nil)
	if s.restoring {
		t.Fatal("expected restoring=false when cooked state is nil")
	}
	s.Release() // must not panic or attempt MakeRaw
}

func TestSuspend_DoubleReleaseOnlyRestoresOnce(t *testing.T) {
	s := &Suspend{fd: 0, restoring: false}
	s.Release()
	s.Release()
	if s.restoring {
		t.Fatal("restoring flag must stay false once cleared")
	}
}
