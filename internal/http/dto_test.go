package http

import "testing"

// El campo Type queda fijo en "Bearer" sin importar lo que reciba el constructor.
func TestNewSessionInformation_TypeAlwaysBearer(t *testing.T) {
	for _, tokenType := range []string{"", "Bearer", "Basic", "whatever"} {
		info := NewSessionInformation("tok", tokenType, "id-1", "user@test.com", "Ada", "Lovelace", true)
		if info.Type != "Bearer" {
			t.Fatalf("expected type Bearer for input %q, got %q", tokenType, info.Type)
		}
	}
}

func TestNewSessionInformation_Fields(t *testing.T) {
	info := NewSessionInformation("tok", "Bearer", "id-1", "user@test.com", "Ada", "Lovelace", true)
	if info.Token != "tok" || info.ID != "id-1" || info.Username != "user@test.com" {
		t.Fatalf("unexpected session information: %+v", info)
	}
	if info.FirstName != "Ada" || info.LastName != "Lovelace" || !info.Admin {
		t.Fatalf("unexpected session information: %+v", info)
	}
}
