package fixation

import (
	"errors"
	"testing"
)

func TestParseTargetType(t *testing.T) {
	tests := []struct {
		in      string
		want    TargetType
		wantErr bool
	}{
		{"A", TypeA, false},
		{"abc", TypeABC, false},
		{"Bc", TypeBC, false},
		{"AB", TypeAB, false},
		{"", "", true},
		{"D", "", true},
		{"BA", "", true},
		{"AABC", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTargetType(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTargetType) {
					t.Errorf("ParseTargetType(%q) error = %v, want ErrInvalidTargetType", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTargetType(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseTargetType(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTargetTypeComponents(t *testing.T) {
	tests := []struct {
		typ                  TargetType
		center, outer, cross bool
	}{
		{TypeA, true, false, false},
		{TypeB, false, true, false},
		{TypeC, false, false, true},
		{TypeAB, true, true, false},
		{TypeAC, true, false, true},
		{TypeBC, false, true, true},
		{TypeABC, true, true, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			if got := tt.typ.HasCenter(); got != tt.center {
				t.Errorf("HasCenter() = %v, want %v", got, tt.center)
			}
			if got := tt.typ.HasOuter(); got != tt.outer {
				t.Errorf("HasOuter() = %v, want %v", got, tt.outer)
			}
			if got := tt.typ.HasCross(); got != tt.cross {
				t.Errorf("HasCross() = %v, want %v", got, tt.cross)
			}
		})
	}
}

func TestTargetSpecValidateNormalizesType(t *testing.T) {
	spec := DefaultTargetSpec()
	spec.Type = "abc"
	if err := spec.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if spec.Type != TypeABC {
		t.Errorf("Type after Validate = %q, want %q", spec.Type, TypeABC)
	}
}

func TestTargetSpecValidateSizes(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TargetSpec)
	}{
		{"zero center diameter", func(s *TargetSpec) { s.CenterDiameterDeg = 0 }},
		{"negative outer diameter", func(s *TargetSpec) { s.OuterDiameterDeg = -0.6 }},
		{"zero cross width", func(s *TargetSpec) { s.CrossWidthDeg = 0 }},
		{"negative background diameter", func(s *TargetSpec) { s.BackgroundDiameterDeg = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := DefaultTargetSpec()
			tt.mutate(&spec)
			if err := spec.Validate(); !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("Validate() error = %v, want ErrInvalidGeometry", err)
			}
		})
	}
}
