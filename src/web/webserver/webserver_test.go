package webserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scout-plus/scout-ai/src/ai/core"
	"github.com/scout-plus/scout-ai/src/qa"
)

type stubSearch struct {
	summary string
	calls   int
}

func (s *stubSearch) Lookup(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.summary, nil
}

type stubAI struct {
	answer string
}

func (s *stubAI) Complete(_ context.Context, _ string, _ core.Options) (string, error) {
	return s.answer, nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func getPage(t *testing.T, router *gin.Engine) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func postForm(t *testing.T, router *gin.Engine, question string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"question": {question}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestShow_DisclaimerAlwaysPresent(t *testing.T) {
	router := New(qa.New(&stubSearch{}, &stubAI{}))

	body := getPage(t, router)

	assert.Contains(t, body, Disclaimer)
}

func TestShow_WarningBannerOnlyWhenNotConfigured(t *testing.T) {
	unconfigured := New(qa.New(&stubSearch{}, nil))
	assert.Contains(t, getPage(t, unconfigured), Warning)

	configured := New(qa.New(&stubSearch{}, &stubAI{}))
	assert.NotContains(t, getPage(t, configured), Warning)
}

func TestSubmit_RendersAnswerSection(t *testing.T) {
	sp := &stubSearch{summary: "Merit badge counselors must be registered..."}
	ai := &stubAI{answer: "Yes, counselors must be registered."}
	router := New(qa.New(sp, ai))

	w := postForm(t, router, "Do I need a merit badge counselor?")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<h2>Answer</h2>")
	assert.Contains(t, body, "Yes, counselors must be registered.")
	assert.Contains(t, body, "Merit badge counselors must be registered...")
	assert.Contains(t, body, Disclaimer)
}

func TestSubmit_EmptyQuestion(t *testing.T) {
	sp := &stubSearch{}
	router := New(qa.New(sp, &stubAI{}))

	w := postForm(t, router, "   ")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), errEmptyQuestion)
	assert.Zero(t, sp.calls)
}

func TestSubmit_StripsMarkupFromProviderText(t *testing.T) {
	ai := &stubAI{answer: `<b>Yes.</b> Counselors must register.`}
	router := New(qa.New(&stubSearch{}, ai))

	w := postForm(t, router, "Do I need a counselor?")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Counselors must register.")
	assert.NotContains(t, body, "&lt;b&gt;")
}

func TestSubmit_EntitiesEscapedExactlyOnce(t *testing.T) {
	ai := &stubAI{answer: `Rock & roll badges aren't real`}
	router := New(qa.New(&stubSearch{summary: "Q&A for parents"}, ai))

	w := postForm(t, router, "Are there rock & roll badges?")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Rock &amp; roll badges")
	assert.Contains(t, body, "Q&amp;A for parents")
	assert.NotContains(t, body, "&amp;amp;")
	assert.NotContains(t, body, "&amp;#39;")
}
