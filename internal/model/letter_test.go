package model

import "testing"

func TestContactInfoIsEmpty(t *testing.T) {
	tests := []struct {
		name    string
		contact ContactInfo
		want    bool
	}{
		{"zero value", ContactInfo{}, true},
		{"email only", ContactInfo{Email: "jane@example.com"}, false},
		{"phone only", ContactInfo{Phone: "+1 555 0100"}, false},
		{"linkedin only", ContactInfo{LinkedIn: "linkedin.com/in/jane"}, false},
		{"website only", ContactInfo{Website: "jane.dev"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.contact.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}
