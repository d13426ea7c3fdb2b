package core

import (
	"errors"
	"testing"
)

func TestValidateCreate_Dates(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr error
	}{
		{"valid date", "2023-09-01", nil},
		{"month out of range", "2023-13-01", ErrInvalidDate},
		{"wrong separator", "09/01/2023", ErrInvalidDate},
		{"empty", "", ErrMissingField},
		{"day out of range", "2023-02-30", ErrInvalidDate},
		{"missing leading zeros", "2023-9-1", ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := CreateParams{
				FirstName:      "Ada",
				LastName:       "Lovelace",
				Email:          "ada@x.com",
				EnrollmentDate: tt.date,
			}
			err := ValidateCreate(p)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateCreate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateCreate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCreate_RequiredFields(t *testing.T) {
	tests := []struct {
		name string
		p    CreateParams
	}{
		{"missing first name", CreateParams{LastName: "Lovelace", Email: "ada@x.com", EnrollmentDate: "1843-12-10"}},
		{"missing last name", CreateParams{FirstName: "Ada", Email: "ada@x.com", EnrollmentDate: "1843-12-10"}},
		{"missing email", CreateParams{FirstName: "Ada", LastName: "Lovelace", EnrollmentDate: "1843-12-10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateCreate(tt.p); !errors.Is(err, ErrMissingField) {
				t.Errorf("ValidateCreate() error = %v, want ErrMissingField", err)
			}
		})
	}
}

func TestParseStudentID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int64
		wantErr bool
	}{
		{"plain number", "42", 42, false},
		{"surrounding whitespace", "  7 ", 7, false},
		{"letters", "abc", 0, true},
		{"decimal", "3.5", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStudentID(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidID) {
					t.Errorf("ParseStudentID(%q) error = %v, want ErrInvalidID", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStudentID(%q) error = %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseStudentID(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}
