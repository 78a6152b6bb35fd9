package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDoc = `{
	"Name": "Jane Doe",
	"About Me": "Engineer.",
	"Skills": ["Go"],
	"Work Experience": [{"Company":"Acme","Designation":"Engineer","Duration":"2019","Description":"x"}],
	"Projects": [],
	"Education": []
}`

func TestValidateStructuredProfile_Valid(t *testing.T) {
	assert.NoError(t, ValidateStructuredProfile([]byte(validDoc)))
}

func TestValidateStructuredProfile_ExtraKeysTolerated(t *testing.T) {
	doc := `{
		"About Me": "Engineer.",
		"Skills": [],
		"Work Experience": [],
		"Projects": [],
		"Education": [],
		"Commentary": "models add these sometimes"
	}`
	assert.NoError(t, ValidateStructuredProfile([]byte(doc)))
}

func TestValidateStructuredProfile_MissingSection(t *testing.T) {
	doc := `{"About Me": "Engineer.", "Skills": []}`
	err := ValidateStructuredProfile([]byte(doc))
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateStructuredProfile_WrongTypes(t *testing.T) {
	doc := `{
		"About Me": 42,
		"Skills": "Go",
		"Work Experience": [],
		"Projects": [],
		"Education": []
	}`
	err := ValidateStructuredProfile([]byte(doc))
	require.Error(t, err)

	ve, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Len(t, ve.Errors, 2)
}
