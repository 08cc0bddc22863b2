package typescript

import (
	"testing"
)

func TestEscapeReservedWord(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"interface", "interface_"},
		{"delete", "delete_"},
		{"string", "string_"},
		{"unknown", "unknown_"},
		{"Calc_add_params", "Calc_add_params"},
		{"_private", "_private"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := escapeReservedWord(tt.input)
			if got != tt.want {
				t.Errorf("escapeReservedWord(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNeedsQuoting(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"2fa", true},
		{"sec$User-Service", true},
		{"cuba.Service", true},
		{"with space", true},
		{"delete", true},
		{"getUser", false},
		{"_field", false},
		{"sec$UserService", false},
		{"cuba_ServerInfoService", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := needsQuoting(tt.input)
			if got != tt.want {
				t.Errorf("needsQuoting(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeIdentifier(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "_"},
		{"1st_run_params", "_1st_run_params"},
		{"my-service_do_params", "my_service_do_params"},
		{"cuba.Info_get_params", "cuba_Info_get_params"},
		{"sec$Users_find_params", "sec$Users_find_params"},
		{"type", "type_"},
		{"Café_add_params", "Café_add_params"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := sanitizeIdentifier(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeIdentifier(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPropertyKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"add", "add"},
		{"my-service", `"my-service"`},
		{"default", `"default"`},
		{`say"hi"`, `"say\"hi\""`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := propertyKey(tt.input); got != tt.want {
				t.Errorf("propertyKey(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "scr_FavoriteService", `"scr_FavoriteService"`},
		{"quote and backslash", `a"b\c`, `"a\"b\\c"`},
		{"printable non-ASCII", "Café€", `"Café€"`},
		{"printable astral", "\U0001D49C", "\"\U0001D49C\""},
		{"bell", "a\ab", `"a\u0007b"`},
		{"newline", "a\nb", `"a\u000ab"`},
		{"line separator", "a\u2028b", `"a\u2028b"`},
		{"non-printable astral", "a\U000E0001b", `"a\udb40\udc01b"`},
		{"invalid utf-8", "a\xffb", "\"a\ufffdb\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := quote(tt.input); got != tt.want {
				t.Errorf("quote(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestObjectKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"add", "add"},
		{"user-info", `"user-info"`},
		{"__proto__", `["__proto__"]`},
		{"__proto", "__proto"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := objectKey(tt.input); got != tt.want {
				t.Errorf("objectKey(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}
