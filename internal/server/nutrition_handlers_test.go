package server

import (
	"net/http"
	"testing"

	"fitpoint/internal/models"
	"fitpoint/internal/nutrition"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateCalories(t *testing.T) {
	srv, app, db := newTestServer(t)
	_, token := createUserWithToken(t, srv, db, "runner")

	t.Run("full payload", func(t *testing.T) {
		var plan nutrition.Plan
		resp := doJSON(t, app, http.MethodPost, "/api/calories/calculate", token, map[string]any{
			"age":            30,
			"gender":         "male",
			"height_cm":      180,
			"weight_kg":      80,
			"activity_level": "moderate",
			"goal":           "maintain",
		}, &plan)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 1780, plan.BMR)
		assert.Equal(t, 2759, plan.TDEE)
		assert.Equal(t, 2759, plan.TargetCalories)
		assert.Equal(t, 176, plan.Macros.Protein.Grams)
		assert.Equal(t, 77, plan.Macros.Fat.Grams)
	})

	t.Run("empty body falls back to stored profile", func(t *testing.T) {
		// The previous calculation persisted the resolved inputs.
		var plan nutrition.Plan
		resp := doJSON(t, app, http.MethodPost, "/api/calories/calculate", token, nil, &plan)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 2759, plan.TargetCalories)
	})

	t.Run("partial payload overrides goal only", func(t *testing.T) {
		var plan nutrition.Plan
		resp := doJSON(t, app, http.MethodPost, "/api/calories/calculate", token, map[string]any{
			"goal": "gain",
		}, &plan)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 3259, plan.TargetCalories)
		assert.Equal(t, "gain", plan.Goal)
	})
}

func TestCalculateCalories_MissingProfile(t *testing.T) {
	srv, app, db := newTestServer(t)
	_, token := createUserWithToken(t, srv, db, "newbie")

	resp := doJSON(t, app, http.MethodPost, "/api/calories/calculate", token, nil, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	er := decodeError(t, resp)
	assert.Equal(t, models.CodeValidation, er.Code)
	assert.Contains(t, er.Error, "age")
	assert.Contains(t, er.Error, "gender")
}

func TestCalculateCalories_UnknownGender(t *testing.T) {
	srv, app, db := newTestServer(t)
	_, token := createUserWithToken(t, srv, db, "runner")

	resp := doJSON(t, app, http.MethodPost, "/api/calories/calculate", token, map[string]any{
		"age":       30,
		"gender":    "nonbinary",
		"height_cm": 180,
		"weight_kg": 80,
	}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	er := decodeError(t, resp)
	assert.Equal(t, models.CodeValidation, er.Code)
}
