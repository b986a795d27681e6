package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleOption struct {
	Label string `json:"label" validate:"required"`
}

type sampleRequest struct {
	Name    string         `json:"name" validate:"required,min=3,max=40"`
	Email   string         `json:"email" validate:"required,email"`
	Format  string         `json:"format" validate:"oneof=markdown latex text"`
	Weight  float64        `json:"weight" validate:"gte=0,lte=100"`
	Options []sampleOption `json:"options" validate:"min=2,dive"`
}

func TestValidateStructReportsJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.ValidateStruct(sampleRequest{
		Name:    "ab",
		Email:   "not-an-email",
		Format:  "html",
		Weight:  120,
		Options: []sampleOption{{Label: "a"}, {}},
	})
	require.Error(t, err)

	fields := FormatValidationErrors(err)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "format")
	assert.Contains(t, fields, "weight")
	assert.Contains(t, fields, "options[1].label")
	assert.Equal(t, "Invalid email format", fields["email"])
}

func TestValidateStructAcceptsValidInput(t *testing.T) {
	v := NewValidator()

	err := v.ValidateStruct(sampleRequest{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Format:  "markdown",
		Weight:  30,
		Options: []sampleOption{{Label: "a"}, {Label: "b"}},
	})
	assert.NoError(t, err)
}
