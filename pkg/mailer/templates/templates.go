package templates

import (
	"bytes"
	"encoding/json"
	"fmt"
	htmpl "html/template"
	"reflect"
	"strings"
	texttpl "text/template"
	"time"
)

// EmailData defines standard fields for email templates.
type EmailData struct {
	Name           string `json:"Name"`
	Email          string `json:"Email"`
	RecipientEmail string `json:"RecipientEmail"`
	Type           string `json:"Type"`

	CompanyName string `json:"CompanyName"`
	AppName     string `json:"AppName"`

	SupportURL string `json:"SupportURL"`
	AppURL     string `json:"AppURL"`

	Time   string    `json:"Time"`
	TimeAt time.Time `json:"TimeAt"`
}

// ToMap converts EmailData to a map[string]any for EmailJob.Data
func ToMap(d EmailData) map[string]any {
	b, _ := json.Marshal(d)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	return m
}

// defaultFn supports pipe usage: {{ .Value | default "Fallback" }}
func defaultFn(fallback any, value any) any {
	switch x := value.(type) {
	case string:
		if strings.TrimSpace(x) == "" {
			return fallback
		}
		return x
	case nil:
		return fallback
	default:
		rv := reflect.ValueOf(value)
		if !rv.IsValid() {
			return fallback
		}
		zero := reflect.Zero(rv.Type()).Interface()
		if reflect.DeepEqual(value, zero) {
			return fallback
		}
		return value
	}
}

func baseFuncs() map[string]any {
	return map[string]any{
		"upper":   strings.ToUpper,
		"default": defaultFn,
	}
}

var (
	htmlFuncMap = htmpl.FuncMap(baseFuncs())
	textFuncMap = texttpl.FuncMap(baseFuncs())
)

// Template names
const (
	Welcome = "welcome"
)

type source struct {
	subject string
	text    string
	html    string
}

var sources = map[string]source{
	Welcome: {
		subject: `Welcome to {{ .AppName | default "PurityProp" }}`,
		text: `Hello {{ .Name | default "there" }},

Your account for {{ .Email }} is ready. You can now sign in and ask about property registration, documents, loans and more.
{{ with .AppURL }}
Open the app: {{ . }}
{{ end }}{{ with .SupportURL }}Need help? {{ . }}
{{ end }}
{{ .CompanyName | default "PurityProp" }}
`,
		html: `<!doctype html>
<html><body style="font-family:Arial,sans-serif;color:#222">
<p>Hello {{ .Name | default "there" }},</p>
<p>Your account for <strong>{{ .Email }}</strong> is ready. You can now sign in and ask about property registration, documents, loans and more.</p>
{{ with .AppURL }}<p><a href="{{ . }}">Open the app</a></p>{{ end }}
{{ with .SupportURL }}<p>Need help? <a href="{{ . }}">Contact support</a></p>{{ end }}
<p style="color:#888">{{ .CompanyName | default "PurityProp" }}{{ with .Time }} &middot; {{ . }} UTC{{ end }}</p>
</body></html>
`,
	},
}

func renderText(name, body string, data any) (string, error) {
	tpl, err := texttpl.New(name).Funcs(textFuncMap).Parse(body)
	if err != nil {
		return "", fmt.Errorf("parse text %q: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("exec %q: %w", name, err)
	}
	return buf.String(), nil
}

func renderHTML(name, body string, data any) (string, error) {
	tpl, err := htmpl.New(name).Funcs(htmlFuncMap).Parse(body)
	if err != nil {
		return "", fmt.Errorf("parse html %q: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("exec %q: %w", name, err)
	}
	return buf.String(), nil
}

// Render renders subject, text, and html for the named template.
func Render(name string, data any) (subject string, text string, html string, err error) {
	src, ok := sources[name]
	if !ok {
		return "", "", "", fmt.Errorf("unknown template %q", name)
	}
	subject, err = renderText(name+".subject", src.subject, data)
	if err != nil {
		return "", "", "", err
	}
	text, err = renderText(name+".text", src.text, data)
	if err != nil {
		return "", "", "", err
	}
	html, err = renderHTML(name+".html", src.html, data)
	if err != nil {
		return "", "", "", err
	}
	return strings.TrimSpace(subject), text, html, nil
}
