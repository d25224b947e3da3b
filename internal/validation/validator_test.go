package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inner struct {
	ID *int `json:"id" validate:"required"`
}

type request struct {
	Name  *string `json:"name" validate:"required"`
	Inner *inner  `json:"inner" validate:"required"`
	IDs   []int   `json:"ids" validate:"required"`
}

func TestValidator(t *testing.T) {
	v := New()
	zero := 0
	name := ""

	require.NoError(t, v.Validate(&request{Name: &name, Inner: &inner{ID: &zero}, IDs: []int{}}))

	err := v.Validate(&request{Inner: &inner{}})
	require.Error(t, err)
	assert.ElementsMatch(t, []string{"request.Name", "request.Inner.ID", "request.IDs"}, MissingFields(err))
}

func TestMissingFields_OtherError(t *testing.T) {
	assert.Nil(t, MissingFields(errors.New("boom")))
}
