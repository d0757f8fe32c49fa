package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCategories(t *testing.T) {
	api := newTestAPI(t)

	status, body := api.do(t, http.MethodGet, "/categories", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])

	categories := body["categories"].(map[string]any)
	assert.Len(t, categories, 6)
	assert.Equal(t, "Science", categories["1"])
	assert.Equal(t, "Sports", categories["6"])
}

func TestGetCategoryQuestions(t *testing.T) {
	api := newTestAPI(t)

	status, body := api.do(t, http.MethodGet, "/categories/1/questions", "")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 3, body["totalQuestions"])
	assert.EqualValues(t, science, body["currentCategory"])

	for _, q := range body["questions"].([]any) {
		assert.EqualValues(t, science, q.(map[string]any)["category"])
	}
}

func TestGetCategoryQuestionsNotFound(t *testing.T) {
	api := newTestAPI(t)

	for _, target := range []string{"/categories/1000/questions", "/categories/abc/questions"} {
		status, body := api.do(t, http.MethodGet, target, "")
		requireError(t, http.StatusNotFound, "resource not found", status, body)
	}
}
