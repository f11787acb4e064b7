package viewstate

import "testing"

func TestControllerStartsOnDashboard(t *testing.T) {
	c := NewController()
	state := c.Snapshot()
	if state.View != ViewDashboard || state.EditingID != nil {
		t.Fatalf("unexpected initial state: %+v", state)
	}
}

func TestSelectClearsEditUnlessForm(t *testing.T) {
	c := NewController()
	c.Edit("1001")

	state, err := c.Select(ViewForm)
	if err != nil {
		t.Fatalf("select form: %v", err)
	}
	if state.EditingID == nil || *state.EditingID != "1001" {
		t.Fatal("selecting the form view must keep the edit reference")
	}

	state, err = c.Select(ViewTickets)
	if err != nil {
		t.Fatalf("select tickets: %v", err)
	}
	if state.View != ViewTickets || state.EditingID != nil {
		t.Fatalf("selecting another view must clear the edit reference: %+v", state)
	}
}

func TestEditOpensForm(t *testing.T) {
	c := NewController()
	state := c.Edit("1001")
	if state.View != ViewForm {
		t.Fatalf("expected form view, got %s", state.View)
	}
	if state.EditingID == nil || *state.EditingID != "1001" {
		t.Fatalf("expected editing 1001, got %+v", state.EditingID)
	}
}

func TestSubmittedReturnsToTable(t *testing.T) {
	c := NewController()
	c.Edit("1001")

	state := c.Submitted()
	if state.View != ViewTickets || state.EditingID != nil {
		t.Fatalf("unexpected post-submit state: %+v", state)
	}
}

func TestSelectRejectsUnknownView(t *testing.T) {
	c := NewController()
	if _, err := c.Select(View("settings")); err == nil {
		t.Fatal("expected error for unknown view")
	}
	if state := c.Snapshot(); state.View != ViewDashboard {
		t.Fatalf("failed select must not change state: %+v", state)
	}
}
