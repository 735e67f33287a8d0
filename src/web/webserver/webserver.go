package webserver

import (
	"html"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"

	"github.com/scout-plus/scout-ai/src/qa"
)

const (
	// Disclaimer is shown on every page render.
	Disclaimer = "For educational use only. Always verify answers with official Scouts BSA sources."

	// Warning is shown while no AI provider credential is configured.
	Warning = "No AI provider key is configured. Answers are limited to web lookups."

	errEmptyQuestion = "Question cannot be empty."
)

type page struct {
	Configured bool
	Question   string
	Result     *qa.Result
	Error      string
	Warning    string
	Disclaimer string
}

// Form renders the single-question page and handles submissions. Provider
// text is stripped of any markup before it reaches the template.
type Form struct {
	svc      *qa.Service
	sanitize *bluemonday.Policy
}

// New builds the form UI router around an answer service.
func New(svc *qa.Service) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.SetHTMLTemplate(pageTemplate)

	h := &Form{svc: svc, sanitize: bluemonday.StrictPolicy()}
	r.GET("/", h.Show)
	r.POST("/", h.Submit)

	return r
}

func (h *Form) Show(c *gin.Context) {
	c.HTML(http.StatusOK, "index", h.page())
}

func (h *Form) Submit(c *gin.Context) {
	question := c.PostForm("question")

	p := h.page()
	p.Question = question

	if strings.TrimSpace(question) == "" {
		p.Error = errEmptyQuestion
		c.HTML(http.StatusBadRequest, "index", p)
		return
	}

	res := h.svc.Answer(c.Request.Context(), question)
	res.Answer = h.plainText(res.Answer)
	res.WebInfo = h.plainText(res.WebInfo)

	p.Result = &res
	c.HTML(http.StatusOK, "index", p)
}

// plainText strips markup from provider text. The sanitizer entity-encodes
// its output, so decode back to plain text; the template escapes on render.
func (h *Form) plainText(s string) string {
	return html.UnescapeString(h.sanitize.Sanitize(s))
}

func (h *Form) page() page {
	return page{
		Configured: h.svc.Configured(),
		Warning:    Warning,
		Disclaimer: Disclaimer,
	}
}
