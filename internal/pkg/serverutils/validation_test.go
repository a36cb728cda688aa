package serverutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name     string `validate:"required"`
	Category string `validate:"required,oneof=Admission Fees Exam Facilities Other"`
}

func TestValidateRequestPasses(t *testing.T) {
	err := ValidateRequest(sampleRequest{Name: "x", Category: "Fees"})
	assert.NoError(t, err)
}

func TestValidateRequestNamesFailedFields(t *testing.T) {
	err := ValidateRequest(sampleRequest{Name: "", Category: "Parking"})

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Fields, 2)
	assert.Contains(t, validationErr.Error(), "Name (required)")
	assert.Contains(t, validationErr.Error(), "Category (oneof)")
}
