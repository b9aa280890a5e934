package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	assert.Nil(t, Required("name", "alice"))

	e := Required("name", "   ")
	require.NotNil(t, e)
	assert.Equal(t, "name", e.Field)
	assert.Equal(t, "required", e.Msg)
}

func TestMinInt(t *testing.T) {
	assert.Nil(t, MinInt("room_id", 1, 1))

	e := MinInt("room_id", 0, 1)
	require.NotNil(t, e)
	assert.Equal(t, "room_id", e.Field)
	assert.Equal(t, "must be >= 1", e.Msg)
}

func TestErrs_Error(t *testing.T) {
	errs := Errs{
		{Field: "a", Msg: "required"},
		{Field: "b", Msg: "required"},
	}
	assert.Equal(t, "a: required; b: required", errs.Error())
}
