package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ratingPayload struct {
	Stars int `binding:"required,stars"`
}

type prefsPayload struct {
	SortOrder string `binding:"omitempty,sort_order"`
	ViewMode  string `binding:"omitempty,view_mode"`
}

type linkPayload struct {
	Shopee string `binding:"omitempty,affiliate_url"`
}

func TestValidateStarsRange(t *testing.T) {
	v := NewValidator()

	for stars := 1; stars <= 5; stars++ {
		assert.NoError(t, v.Validate(&ratingPayload{Stars: stars}), "stars=%d", stars)
	}
	assert.Error(t, v.Validate(&ratingPayload{Stars: 0}))
	assert.Error(t, v.Validate(&ratingPayload{Stars: 6}))
}

func TestValidateSortOrderAndViewMode(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&prefsPayload{SortOrder: "asc", ViewMode: "minimal"}))
	assert.NoError(t, v.Validate(&prefsPayload{}))
	assert.Error(t, v.Validate(&prefsPayload{SortOrder: "terbalik"}))
	assert.Error(t, v.Validate(&prefsPayload{ViewMode: "tabel"}))
}

func TestValidateAffiliateURL(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&linkPayload{}))
	assert.NoError(t, v.Validate(&linkPayload{Shopee: "https://s.shopee.co.id/6pp1cQGmWd"}))
	assert.Error(t, v.Validate(&linkPayload{Shopee: "bukan url"}))
	assert.Error(t, v.Validate(&linkPayload{Shopee: "ftp://example.com/file"}))
}

func TestValidationErrorMessagesAreLocalized(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&ratingPayload{})
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Stars wajib diisi", ve.Errors["Stars"])
}
