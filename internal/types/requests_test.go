package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveJobDescriptionRequest_Validate(t *testing.T) {
	valid := SaveJobDescriptionRequest{
		UserID:  "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		Title:   "SRE",
		Content: "keep things up",
	}

	tests := []struct {
		name    string
		mutate  func(*SaveJobDescriptionRequest)
		wantErr bool
	}{
		{name: "valid without id", mutate: func(*SaveJobDescriptionRequest) {}},
		{name: "valid with id", mutate: func(r *SaveJobDescriptionRequest) {
			r.ID = "9b2d7a54-3c1f-4e8a-b6d2-0f1e2d3c4b5a"
		}},
		{name: "malformed id", mutate: func(r *SaveJobDescriptionRequest) { r.ID = "not-a-uuid" }, wantErr: true},
		{name: "missing title", mutate: func(r *SaveJobDescriptionRequest) { r.Title = "" }, wantErr: true},
		{name: "missing content", mutate: func(r *SaveJobDescriptionRequest) { r.Content = "" }, wantErr: true},
		{name: "malformed user id", mutate: func(r *SaveJobDescriptionRequest) { r.UserID = "42" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
