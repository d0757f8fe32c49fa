package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

func TestGetQuestionsPaginated(t *testing.T) {
	api := newTestAPI(t)

	status, body := api.do(t, http.MethodGet, "/questions", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["questions"], 10)
	assert.EqualValues(t, 19, body["total_questions"])
	assert.Len(t, body["categories"], 6)
	assert.Contains(t, body, "current_category")
	assert.Nil(t, body["current_category"])

	_, body = api.do(t, http.MethodGet, "/questions?page=2", "")
	questions := body["questions"].([]any)
	require.Len(t, questions, 9)
	assert.EqualValues(t, 11, questions[0].(map[string]any)["id"])
}

func TestGetQuestionsBeyondLastPage(t *testing.T) {
	api := newTestAPI(t)

	for _, target := range []string{"/questions?page=1000", "/questions?page=0"} {
		status, body := api.do(t, http.MethodGet, target, "")
		requireError(t, http.StatusNotFound, "resource not found", status, body)
	}
}

func TestGetQuestionsNonNumericPage(t *testing.T) {
	api := newTestAPI(t)
	status, body := api.do(t, http.MethodGet, "/questions?page=abc", "")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, body["questions"].([]any)[0].(map[string]any)["id"])
}

func TestDeleteQuestion(t *testing.T) {
	api := newTestAPI(t)

	status, body := api.do(t, http.MethodDelete, "/questions/5", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 5, body["deleted"])
	assert.EqualValues(t, 18, body["total_questions"])
	assert.Len(t, body["questions"], 10)

	_, err := api.questions.GetByID(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)

	status, body = api.do(t, http.MethodDelete, "/questions/5", "")
	requireError(t, http.StatusNotFound, "resource not found", status, body)
}

func TestDeleteQuestionNotFound(t *testing.T) {
	api := newTestAPI(t)
	status, body := api.do(t, http.MethodDelete, "/questions/1000", "")
	requireError(t, http.StatusNotFound, "resource not found", status, body)
}

func TestCreateQuestion(t *testing.T) {
	api := newTestAPI(t)

	status, body := api.do(t, http.MethodPost, "/questions",
		`{"question":"What is the capital of Peru?","answer":"Lima","category":"3","difficulty":2}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 20, body["created"])

	created, err := api.questions.GetByID(context.Background(), 20)
	require.NoError(t, err)
	assert.Equal(t, "Lima", created.Answer)
	assert.Equal(t, 3, created.Category)
}

func TestCreateQuestionUnprocessable(t *testing.T) {
	api := newTestAPI(t)

	bodies := []string{
		`{}`,
		`{"question":"","answer":"x","category":1,"difficulty":1}`,
		`{"question":"Q?","answer":"x","category":1000,"difficulty":1}`,
		`{"question":"Q?","answer":"x","category":1,"difficulty":9}`,
	}
	for _, payload := range bodies {
		status, body := api.do(t, http.MethodPost, "/questions", payload)
		requireError(t, http.StatusUnprocessableEntity, "unprocessable", status, body)
	}

	count, err := api.questions.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 19, count)
}

func TestCreateQuestionMalformed(t *testing.T) {
	api := newTestAPI(t)
	status, body := api.do(t, http.MethodPost, "/questions", `{"question":`)
	requireError(t, http.StatusBadRequest, "bad request", status, body)
}

func TestSearchQuestions(t *testing.T) {
	api := newTestAPI(t)

	status, body := api.do(t, http.MethodPost, "/questions/search", `{"searchTerm":"TITLE"}`)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 2, body["totalQuestions"])
	assert.Len(t, body["questions"], 2)
	assert.EqualValues(t, entertainment, body["currentCategory"])
}

func TestSearchQuestionsNoMatch(t *testing.T) {
	api := newTestAPI(t)

	status, body := api.do(t, http.MethodPost, "/questions/search", `{"searchTerm":"zzzqqq"}`)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 0, body["totalQuestions"])
	assert.Empty(t, body["questions"])
	assert.NotNil(t, body["questions"])
	assert.Nil(t, body["currentCategory"])
}

func TestSearchQuestionsMissingTerm(t *testing.T) {
	api := newTestAPI(t)
	status, body := api.do(t, http.MethodPost, "/questions/search", `{"term":"title"}`)
	requireError(t, http.StatusBadRequest, "bad request", status, body)
}

func TestTrailingSlash(t *testing.T) {
	api := newTestAPI(t)
	status, _ := api.do(t, http.MethodGet, "/categories/", "")
	assert.Equal(t, http.StatusOK, status)
}
