package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"15/09/2026", "2026-09-15"},
		{"5/9/2026", "2026-09-05"},
		{"2026-09-15T14:30:00Z", "2026-09-15"},
		{"2026-09-15", "2026-09-15"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := normalizeDate(tc.in); got != tc.want {
			t.Fatalf("normalizeDate(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestToAppointmentBarberAsString(t *testing.T) {
	var raw rawAppointment
	blob := `{
		"id": 42,
		"data": "15/09/2026",
		"hora_inicio": "14:00",
		"status": "agendado",
		"barbeiro": "Carlos",
		"servicos": [{"id":"s1","nome":"Corte","valor":50}]
	}`
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	appt := raw.toAppointment()
	if appt.ID != "42" {
		t.Fatalf("numeric id not flattened, got %q", appt.ID)
	}
	if appt.Date != "2026-09-15" {
		t.Fatalf("date not normalized, got %q", appt.Date)
	}
	if appt.Professional == nil || appt.Professional.Name != "Carlos" {
		t.Fatalf("barber string not lifted, got %+v", appt.Professional)
	}
	if appt.TotalValue != 50 {
		t.Fatalf("total should fall back to service sum, got %v", appt.TotalValue)
	}
}

func TestToAppointmentNestedServices(t *testing.T) {
	var raw rawAppointment
	blob := `{
		"id": "a1",
		"data_agendamento": "2026-09-15T10:00:00",
		"status": "confirmado",
		"profissional": {"id":"b1","nome":"Rafael"},
		"agendamento_servicos": [
			{"servicos": {"id":"s1","nome":"Corte","preco":45}},
			{"id":"s2","nome":"Barba","valor":30}
		],
		"valor_total": 75
	}`
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	appt := raw.toAppointment()
	if appt.Date != "2026-09-15" {
		t.Fatalf("iso datetime not truncated, got %q", appt.Date)
	}
	if len(appt.Services) != 2 {
		t.Fatalf("expected 2 services, got %v", appt.Services)
	}
	if appt.Services[0].Name != "Corte" || appt.Services[0].Price != 45 {
		t.Fatalf("nested service not lifted, got %+v", appt.Services[0])
	}
	if appt.Services[1].Price != 30 {
		t.Fatalf("valor alias not read, got %+v", appt.Services[1])
	}
	if appt.TotalValue != 75 {
		t.Fatalf("expected total 75, got %v", appt.TotalValue)
	}
}

func TestUpcomingBookingsPrefersFutureKey(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"agendamentos_futuros": [{"id":"f1","data":"2026-09-20","status":"agendado"}],
			"agendamentos": [{"id":"old","data":"2026-01-01","status":"concluido"}]
		}`))
	})

	appts := client.UpcomingBookings(context.Background(), "11988887777")
	if len(appts) != 1 || appts[0].ID != "f1" {
		t.Fatalf("expected the future list, got %v", appts)
	}
}

func TestBookingHistoryDegradesOnFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	appts := client.BookingHistory(context.Background(), "11988887777")
	if len(appts) != 0 {
		t.Fatalf("expected empty history, got %v", appts)
	}
}
