package telelaw

import (
	"strings"
	"testing"
)

func TestAvailableReturnsFullRoster(t *testing.T) {
	r := NewRoster()
	if got := r.Available(""); len(got) != 5 {
		t.Errorf("roster size = %d, want 5", len(got))
	}
}

func TestAvailableFiltersBySpecialization(t *testing.T) {
	r := NewRoster()
	got := r.Available("criminal")
	if len(got) != 1 || got[0].ID != "LAW002" {
		t.Errorf("filter criminal = %v", got)
	}
	got = r.Available("LAW")
	for _, l := range got {
		if !strings.Contains(strings.ToLower(l.Specialization), "law") {
			t.Errorf("unexpected match %v", l)
		}
	}
	if got := r.Available("maritime"); len(got) != 0 {
		t.Errorf("expected no match, got %v", got)
	}
}

func TestConnectAvailableLawyer(t *testing.T) {
	r := NewRoster()
	conn := r.Connect("LAW001")
	if !conn.Success {
		t.Fatalf("expected success: %+v", conn)
	}
	if !strings.HasPrefix(conn.SessionID, "TL-") {
		t.Errorf("session id = %q", conn.SessionID)
	}
	if !strings.Contains(conn.Message, "Priya Sharma") {
		t.Errorf("message = %q", conn.Message)
	}
}

func TestConnectBusyLawyerQueues(t *testing.T) {
	r := NewRoster()
	r.queuePos = func() int { return 3 }
	conn := r.Connect("LAW003")
	if conn.Success {
		t.Fatal("expected busy lawyer to refuse connection")
	}
	if conn.QueuePosition != 3 {
		t.Errorf("queue position = %d", conn.QueuePosition)
	}
	if !strings.Contains(conn.Message, "2:30 PM") {
		t.Errorf("message = %q", conn.Message)
	}
}

func TestConnectUnknownLawyer(t *testing.T) {
	r := NewRoster()
	conn := r.Connect("LAW999")
	if conn.Success || conn.Message != "Lawyer not found" {
		t.Errorf("unexpected connection %+v", conn)
	}
}
