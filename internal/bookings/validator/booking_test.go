package validator

import (
	"strings"
	"testing"

	"travelbook/pkg/logger"
	"travelbook/pkg/model"
)

func newTestValidator() *BookingValidator {
	log := logger.New(logger.Config{
		Level:   "error",
		Format:  logger.JSON,
		Service: "test",
	})
	return NewBookingValidator(log)
}

func TestValidateRequestRequiredFields(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name      string
		req       *model.BookingRequest
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid request",
			req: &model.BookingRequest{
				Name:        "Ana",
				Email:       "a@b.com",
				Destination: "Rome",
				Date:        "2099-01-01",
			},
			wantError: false,
		},
		{
			name: "missing name",
			req: &model.BookingRequest{
				Email:       "a@b.com",
				Destination: "Rome",
				Date:        "2099-01-01",
			},
			wantError: true,
			errorMsg:  "Name",
		},
		{
			name: "missing destination",
			req: &model.BookingRequest{
				Name:  "Ana",
				Email: "a@b.com",
				Date:  "2099-01-01",
			},
			wantError: true,
			errorMsg:  "Destination",
		},
		{
			name: "missing date",
			req: &model.BookingRequest{
				Name:        "Ana",
				Email:       "a@b.com",
				Destination: "Rome",
			},
			wantError: true,
			errorMsg:  "Date",
		},
		{
			name: "missing email",
			req: &model.BookingRequest{
				Name:        "Ana",
				Destination: "Rome",
				Date:        "2099-01-01",
			},
			wantError: true,
			errorMsg:  "Email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRequest(tt.req)
			if (err != nil) != tt.wantError {
				t.Fatalf("ValidateRequest() error = %v, wantError %v", err, tt.wantError)
			}
			if tt.wantError && !strings.Contains(err.Error(), tt.errorMsg) {
				t.Errorf("ValidateRequest() error = %v, want mention of %q", err, tt.errorMsg)
			}
		})
	}
}

func TestValidateRequestEmailShape(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		email     string
		wantError bool
	}{
		{"a@b.com", false},
		{"ana.martins@travel.example.org", false},
		{"name+tag@sub.domain.io", false},
		{"no-at-sign.com", true},
		{"missing@tld", true},
		{"spaces in@local.part", true},
		{"@no-local.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			req := &model.BookingRequest{
				Name:        "Ana",
				Email:       tt.email,
				Destination: "Rome",
				Date:        "2099-01-01",
			}
			err := v.ValidateRequest(req)
			if (err != nil) != tt.wantError {
				t.Errorf("ValidateRequest() with email %q error = %v, wantError %v", tt.email, err, tt.wantError)
			}
		})
	}
}
