package dispatch

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/aliskhannn/overdue-reminder/internal/model"
)

type templateData struct {
	UserName     string
	BorrowerName string
	Amount       string
	Currency     string
	DueDate      string
	DaysOverdue  int
	Tier         string
	Greeting     string
	Grace        model.GraceResult
}

type messageTemplate struct {
	subject *template.Template
	body    *template.Template
	short   *template.Template
}

var funcs = template.FuncMap{
	"signed": func(n int) string {
		if n > 0 {
			return fmt.Sprintf("+%d", n)
		}
		return fmt.Sprintf("%d", n)
	},
}

const graceExplanation = `
Grace period: {{.Grace.Base}} day(s) by default, {{.Grace.Effective}} day(s) after adjustments.
{{- range .Grace.Adjustments}}
  {{signed .Days}} {{.Reason}}
{{- end}}
`

const shortText = `{{.BorrowerName}} is {{.DaysOverdue}} day(s) overdue on {{.Amount}} {{.Currency}} (due {{.DueDate}}).`

var bodies = map[string]struct{ subject, body string }{
	"friendly": {
		subject: `Friendly reminder: {{.BorrowerName}} owes you {{.Amount}} {{.Currency}}`,
		body: `{{.Greeting}}
{{.BorrowerName}} was expected to return {{.Amount}} {{.Currency}} on {{.DueDate}}.
It is now {{.DaysOverdue}} day(s) past the grace period. A quick, friendly nudge is usually enough.
`,
	},
	"firm": {
		subject: `Reminder: {{.Amount}} {{.Currency}} from {{.BorrowerName}} is overdue`,
		body: `{{.Greeting}}
The {{.Amount}} {{.Currency}} lent to {{.BorrowerName}} was due on {{.DueDate}} and is {{.DaysOverdue}} day(s) overdue.
We recommend agreeing on a concrete repayment date.
`,
	},
	"urgent": {
		subject: `Urgent: {{.BorrowerName}} is {{.DaysOverdue}} days overdue`,
		body: `{{.Greeting}}
{{.BorrowerName}} has not returned {{.Amount}} {{.Currency}}, due on {{.DueDate}}. The debt is {{.DaysOverdue}} day(s) overdue.
Consider contacting the borrower directly today.
`,
	},
	"legal": {
		subject: `Final notice: {{.Amount}} {{.Currency}} owed by {{.BorrowerName}}`,
		body: `{{.Greeting}}
The {{.Amount}} {{.Currency}} owed by {{.BorrowerName}} since {{.DueDate}} is {{.DaysOverdue}} day(s) overdue.
This is the final automatic reminder. Further steps may include a formal demand letter.
`,
	},
	"collection": {
		subject: `Collection: {{.Amount}} {{.Currency}} owed by {{.BorrowerName}}`,
		body: `{{.Greeting}}
The {{.Amount}} {{.Currency}} owed by {{.BorrowerName}} since {{.DueDate}} has been escalated to collection.
`,
	},
}

var greetings = map[string]*template.Template{
	model.ToneFriendly:     template.Must(template.New("greeting-friendly").Parse("Hi {{.UserName}}!")),
	model.ToneProfessional: template.Must(template.New("greeting-professional").Parse("Hello {{.UserName}},")),
	model.ToneDirect:       template.Must(template.New("greeting-direct").Parse("{{.UserName}}:")),
}

var templates = mustParseTemplates()

func mustParseTemplates() map[string]messageTemplate {
	out := make(map[string]messageTemplate, len(bodies))
	short := template.Must(template.New("short").Funcs(funcs).Parse(shortText))

	for name, b := range bodies {
		out[name] = messageTemplate{
			subject: template.Must(template.New(name + "-subject").Funcs(funcs).Parse(b.subject)),
			body:    template.Must(template.New(name + "-body").Funcs(funcs).Parse(b.body + graceExplanation)),
			short:   short,
		}
	}

	return out
}

// Render builds the reminder text for the request's tier and the user's tone.
func Render(req model.DispatchRequest) (model.Content, error) {
	name := req.Tier.Template()

	tmpl, ok := templates[name]
	if !ok {
		return model.Content{}, fmt.Errorf("no template for tier %s", req.Tier)
	}

	greeting, ok := greetings[req.Preferences.Tone]
	if !ok {
		greeting = greetings[model.ToneProfessional]
	}

	data := templateData{
		UserName:     req.User.Name,
		BorrowerName: req.Lending.BorrowerName,
		Amount:       req.Lending.Amount.StringFixed(2),
		Currency:     req.Lending.Currency,
		DueDate:      req.Lending.ExpectedReturnDate.Format("2006-01-02"),
		DaysOverdue:  req.DaysOverdue,
		Tier:         req.Tier.String(),
		Grace:        req.Grace,
	}

	var err error
	if data.Greeting, err = execute(greeting, data); err != nil {
		return model.Content{}, err
	}

	var c model.Content
	if c.Subject, err = execute(tmpl.subject, data); err != nil {
		return model.Content{}, err
	}
	if c.Body, err = execute(tmpl.body, data); err != nil {
		return model.Content{}, err
	}
	if c.Short, err = execute(tmpl.short, data); err != nil {
		return model.Content{}, err
	}

	return c, nil
}

func execute(t *template.Template, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}

	return strings.TrimSpace(buf.String()), nil
}
