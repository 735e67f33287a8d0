package webserver

import "html/template"

const pageHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Scout AI</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; }
.banner { background: #fff3cd; border: 1px solid #ffe69c; padding: .75rem; margin-bottom: 1rem; }
.error { color: #b02a37; }
.disclaimer { color: #6c757d; font-size: .85rem; margin-top: 2rem; }
textarea { width: 100%; }
section { margin-top: 1.5rem; }
</style>
</head>
<body>
<h1>Scout AI</h1>
{{if not .Configured}}<div class="banner">{{.Warning}}</div>{{end}}
<form method="post" action="/">
<textarea name="question" rows="3" placeholder="Ask a Scouting question...">{{.Question}}</textarea>
<p><button type="submit">Ask</button></p>
</form>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{with .Result}}
<section>
<h2>Answer</h2>
<p>{{.Answer}}</p>
{{if .WebInfo}}<h3>Web information</h3><p>{{.WebInfo}}</p>{{end}}
</section>
{{end}}
<p class="disclaimer">{{.Disclaimer}}</p>
</body>
</html>
`

var pageTemplate = template.Must(template.New("index").Parse(pageHTML))
