package booking

import (
	"testing"

	"github.com/vincibarbearia/app-agendamento/internal/httperr"
)

func TestBeginSubmitRefusesReentry(t *testing.T) {
	sess := &session{state: StateScheduling}

	if err := sess.beginSubmit(StateScheduling); err != nil {
		t.Fatalf("first submit: unexpected error %v", err)
	}
	err := sess.beginSubmit(StateScheduling)
	if !httperr.IsBusiness(err, "submission_in_progress") {
		t.Fatalf("expected submission_in_progress, got %v", err)
	}
}

func TestBeginSubmitRejectsWrongState(t *testing.T) {
	sess := &session{state: StateSelection}

	err := sess.beginSubmit(StateScheduling)
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
	if sess.current() != StateSelection {
		t.Fatalf("state changed on rejected submit: %v", sess.current())
	}
}

func TestToSchedulingFromDone(t *testing.T) {
	sess := &session{state: StateDone}

	if err := sess.toScheduling(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if sess.current() != StateScheduling {
		t.Fatalf("expected scheduling, got %v", sess.current())
	}
}

func TestBackRefusedWhileSubmitting(t *testing.T) {
	sess := &session{state: StateSubmitting}

	err := sess.back()
	if !httperr.IsBusiness(err, "submission_in_progress") {
		t.Fatalf("expected submission_in_progress, got %v", err)
	}

	sess.set(StateScheduling)
	if err := sess.back(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if sess.current() != StateSelection {
		t.Fatalf("expected selection, got %v", sess.current())
	}
}
