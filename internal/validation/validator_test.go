// Cinequery - Natural-Language Video Content Discovery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinequery

package validation

import (
	"strings"
	"testing"
)

type searchRequest struct {
	Query    string `validate:"required,min=1,max=500"`
	Platform string `validate:"omitempty,max=50"`
	Limit    int    `validate:"omitempty,min=1,max=100"`
}

func TestValidateStructPasses(t *testing.T) {
	err := ValidateStruct(&searchRequest{Query: "comédia romântica", Limit: 10})
	if err != nil {
		t.Errorf("ValidateStruct() = %v, want nil", err)
	}
}

func TestValidateStructRequired(t *testing.T) {
	err := ValidateStruct(&searchRequest{})
	if err == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q", apiErr.Code)
	}
	if !strings.Contains(apiErr.Message, "Query is required") {
		t.Errorf("Message = %q, want mention of required Query", apiErr.Message)
	}
	if apiErr.Details["field"] != "Query" {
		t.Errorf("Details = %v", apiErr.Details)
	}
}

func TestValidateStructMultipleFailures(t *testing.T) {
	err := ValidateStruct(&searchRequest{
		Query: strings.Repeat("x", 501),
		Limit: 500,
	})
	if err == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}
	if len(err.Errors()) != 2 {
		t.Fatalf("Errors() = %d failures, want 2", len(err.Errors()))
	}

	apiErr := err.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok {
		t.Fatalf("Details[fields] = %T", apiErr.Details["fields"])
	}
	if len(fields) != 2 {
		t.Errorf("fields = %d entries, want 2", len(fields))
	}
}

func TestTranslateMessages(t *testing.T) {
	tests := []struct {
		name    string
		req     interface{}
		wantSub string
	}{
		{"max on string mentions characters", &searchRequest{Query: strings.Repeat("x", 501)}, "at most 500 characters"},
		{"min on int omits characters", &searchRequest{Query: "ok", Limit: -1}, "must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.req)
			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error = %q, want substring %q", err.Error(), tt.wantSub)
			}
		})
	}
}
