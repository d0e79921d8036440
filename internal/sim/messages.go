package sim

import (
	"bytes"
	"log/slog"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
)

const messageText = `
{{- define "ready" }}use skill [{{ .Name }}]{{ end }}
{{- define "blocked" }}[{{ .Name }}] is not available yet. might be ready in {{ printf "%.3f" .Wait }}. press again to wait until then and retry{{ end }}
{{- define "insufficient" }}[{{ .Name }}] is not ready (not enough {{ .Resource | default "resources" }}){{ end }}
{{- define "requirements" }}[{{ .Name }}] requirements are not met{{ with .Description }} (need: {{ . }}){{ end }}{{ end }}
{{- define "wait" }}wait for {{ printf "%.3f" .Wait }}s{{ end }}
{{- define "reset" }}{{ repeat 8 "=" }} RESET (GCD={{ printf "%.2f" .GCD }}) {{ repeat 8 "=" }}{{ end }}
{{- define "play" }}starting real-time control{{ end }}
{{- define "pause" }}paused{{ end }}
`

var messages = template.Must(template.New("messages").Funcs(sprig.TxtFuncMap()).Parse(messageText))

// messageData feeds the message templates. Durations are in seconds.
type messageData struct {
	Name        string
	Resource    string
	Description string
	Wait        float64
	GCD         float64
}

func seconds(d time.Duration) float64 {
	return d.Seconds()
}

func render(name string, data messageData) string {
	var buf bytes.Buffer
	if err := messages.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("rendering log message", "template", name, "error", err)
		return name
	}
	return buf.String()
}
