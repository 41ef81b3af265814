package gcp

import "testing"

func TestClientOptions(t *testing.T) {
	cases := []struct {
		name  string
		creds string
		count int
	}{
		{"empty means ADC", "", 0},
		{"whitespace means ADC", "   ", 0},
		{"inline json", `{"type": "service_account"}`, 1},
		{"file path", "/etc/gcp/key.json", 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ClientOptions(c.creds); len(got) != c.count {
				t.Fatalf("expected %d options, got %d", c.count, len(got))
			}
		})
	}
}
