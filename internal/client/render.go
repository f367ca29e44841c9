package client

import (
	"strings"
	"text/template"
)

var textTmpl = template.Must(template.New("panel").Parse(
	`{{- if eq .Kind "error" -}}
Error: {{ .Error }}
{{- else if .Simulated -}}
Booking Confirmed!
Thank you {{ .Customer }}! Your {{ .Service }} appointment is scheduled for
{{ .Date }} at {{ .Time }}
{{- if .Email }}
A confirmation email will be sent to {{ .Email }}
{{- end }}
{{- if .Phone }}
We'll contact you at {{ .Phone }} if needed
{{- end }}
{{- else -}}
Booking Confirmed!
Booking ID: {{ .BookingID }}

Service:  {{ .Service }}
Date:     {{ .Date }}
Time:     {{ .Time }}
Customer: {{ .Customer }}
{{- if .Email }}
Confirmation details sent to: {{ .Email }}
{{- end }}
{{- if .Phone }}
We'll contact you at: {{ .Phone }}
{{- end }}
{{- if .Notes }}

Notes: {{ .Notes }}
{{- end }}

Thank you for choosing our services!
Booking saved locally on your device
{{- if .LocalOnly }}
The booking service could not be reached; it has not been sent yet.
{{- end }}
{{- if .ServerMessage }}

Server response: {{ .ServerMessage }}
{{- end }}
{{- end }}
`))

// RenderText renders the panel view for a terminal.
func RenderText(v View) string {
	var sb strings.Builder

	if err := textTmpl.Execute(&sb, v); err != nil {
		return "Error: " + err.Error() + "\n"
	}

	return sb.String()
}
