package model

import (
	"strings"
	"testing"
)

func TestProjectModel_Validate(t *testing.T) {
	tests := []struct {
		name      string
		model     *ProjectModel
		wantCodes []string
		wantMsg   string
	}{
		{
			name: "valid model",
			model: &ProjectModel{
				RestServices: []ServiceDescriptor{
					{Name: "Calc", Methods: []MethodDescriptor{
						{Name: "add", Params: []ParameterDescriptor{{Name: "a", Type: "int"}, {Name: "b", Type: "int"}}},
						{Name: "add", Params: []ParameterDescriptor{{Name: "a", Type: "double"}}},
					}},
				},
			},
		},
		{
			name:  "empty model",
			model: &ProjectModel{},
		},
		{
			name: "duplicate service names",
			model: &ProjectModel{
				RestServices: []ServiceDescriptor{{Name: "Calc"}, {Name: "Calc"}},
			},
			wantCodes: []string{"invalid_unique"},
			wantMsg:   "RestServices: must have unique Name values",
		},
		{
			name: "missing method name",
			model: &ProjectModel{
				RestServices: []ServiceDescriptor{{Name: "Calc", Methods: []MethodDescriptor{{Name: ""}}}},
			},
			wantCodes: []string{"invalid_required"},
			wantMsg:   "RestServices[0].Methods[0].Name: required",
		},
		{
			name: "duplicate parameter names",
			model: &ProjectModel{
				RestServices: []ServiceDescriptor{{Name: "Calc", Methods: []MethodDescriptor{
					{Name: "add", Params: []ParameterDescriptor{{Name: "a", Type: "int"}, {Name: "a", Type: "int"}}},
				}}},
			},
			wantCodes: []string{"invalid_unique"},
			wantMsg:   "Params: must have unique Name values",
		},
		{
			name: "missing parameter type",
			model: &ProjectModel{
				RestServices: []ServiceDescriptor{{Name: "Calc", Methods: []MethodDescriptor{
					{Name: "add", Params: []ParameterDescriptor{{Name: "a"}}},
				}}},
			},
			wantCodes: []string{"invalid_required"},
			wantMsg:   "Params[0].Type: required",
		},
		{
			name: "entity without fqn",
			model: &ProjectModel{
				Entities: map[string]Entity{"scr$Car": {ClassName: "Car"}},
			},
			wantCodes: []string{"invalid_required"},
			wantMsg:   "FQN: required",
		},
		{
			name: "whitespace in names",
			model: &ProjectModel{
				RestServices: []ServiceDescriptor{{Name: "Calc ", Methods: []MethodDescriptor{{Name: " add"}}}},
			},
			wantCodes: []string{"invalid_name", "invalid_name"},
			wantMsg:   "surrounding whitespace",
		},
		{
			name: "invalid utf-8 in names",
			model: &ProjectModel{
				RestServices: []ServiceDescriptor{{Name: "Calc", Methods: []MethodDescriptor{
					{Name: "add\xff", Params: []ParameterDescriptor{{Name: "a\xfe", Type: "int"}}},
				}}},
			},
			wantCodes: []string{"invalid_name", "invalid_name"},
			wantMsg:   "not valid UTF-8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.model.Validate()
			if len(errs) != len(tt.wantCodes) {
				t.Fatalf("Validate() returned %d errors, want %d: %v", len(errs), len(tt.wantCodes), errs)
			}
			for i, err := range errs {
				ve, ok := err.(*ValidationError)
				if !ok {
					t.Fatalf("error %d is %T, want *ValidationError", i, err)
				}
				if ve.Code != tt.wantCodes[i] {
					t.Errorf("error %d code = %q, want %q", i, ve.Code, tt.wantCodes[i])
				}
			}
			if tt.wantMsg != "" && !strings.Contains(tt.model.ValidateErr().Error(), tt.wantMsg) {
				t.Errorf("ValidateErr() = %q, want it to contain %q", tt.model.ValidateErr(), tt.wantMsg)
			}
			if len(tt.wantCodes) == 0 && tt.model.ValidateErr() != nil {
				t.Errorf("ValidateErr() = %v, want nil", tt.model.ValidateErr())
			}
		})
	}
}

func TestTrimNamespace(t *testing.T) {
	if got := trimNamespace("ProjectModel.RestServices[0].Name"); got != "RestServices[0].Name" {
		t.Errorf("trimNamespace() = %q", got)
	}
	if got := trimNamespace("Name"); got != "Name" {
		t.Errorf("trimNamespace() = %q", got)
	}
}
