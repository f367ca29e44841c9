package webui

import "html/template"

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))

type pageData struct {
	Form     formValues
	Invalid  map[string]bool
	Panel    panelData
	Bookings int
}

type formValues struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Date    string
	Time    string
	Notes   string
	Today   string
}

type panelData struct {
	Visible bool
	Error   bool
	Text    string
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Book a Service</title>
  <style>
    body { font-family: system-ui, sans-serif; max-width: 640px; margin: 32px auto; padding: 0 16px; }
    label { display: block; margin-top: 12px; font-weight: 600; }
    input, select, textarea { width: 100%; padding: 6px; box-sizing: border-box; }
    .invalid { border: 2px solid #c0392b; }
    .valid { border: 2px solid #27ae60; }
    .panel { white-space: pre-line; padding: 16px; margin-bottom: 16px; border-radius: 6px; background: #eafaf1; }
    .panel.error { background: #fdedec; }
    .actions { margin-top: 16px; display: flex; gap: 8px; }
  </style>
</head>
<body>
  <h1>Book a Service</h1>
  {{- if .Panel.Visible }}
  <div class="panel{{ if .Panel.Error }} error{{ end }}" id="confirmation">{{ .Panel.Text }}
    <form method="post" action="/panel/close"><button type="submit">Close</button></form>
  </div>
  {{- end }}
  <form method="post" action="/book" id="booking-form">
    <label for="name">Name *</label>
    <input id="name" name="name" data-kind="text" data-required="true" value="{{ .Form.Name }}"{{ if index .Invalid "name" }} class="invalid"{{ end }}>
    <label for="email">Email *</label>
    <input id="email" name="email" type="email" data-kind="email" data-required="true" value="{{ .Form.Email }}"{{ if index .Invalid "email" }} class="invalid"{{ end }}>
    <label for="phone">Phone</label>
    <input id="phone" name="phone" type="tel" data-kind="text" value="{{ .Form.Phone }}">
    <label for="service">Service *</label>
    <select id="service" name="service" data-kind="text" data-required="true"{{ if index .Invalid "service" }} class="invalid"{{ end }}>
      <option value="">Select a service</option>
      <option value="consultation"{{ if eq .Form.Service "consultation" }} selected{{ end }}>Room Cleaning</option>
      <option value="appointment"{{ if eq .Form.Service "appointment" }} selected{{ end }}>Car/Motorcycle Rescue and Services</option>
      <option value="other"{{ if eq .Form.Service "other" }} selected{{ end }}>Other Service</option>
    </select>
    <label for="date">Date *</label>
    <input id="date" name="date" type="date" min="{{ .Form.Today }}" data-kind="date" data-required="true" value="{{ .Form.Date }}"{{ if index .Invalid "date" }} class="invalid"{{ end }}>
    <label for="time">Time *</label>
    <input id="time" name="time" type="time" data-kind="text" data-required="true" value="{{ .Form.Time }}"{{ if index .Invalid "time" }} class="invalid"{{ end }}>
    <label for="notes">Notes</label>
    <textarea id="notes" name="notes" data-kind="text">{{ .Form.Notes }}</textarea>
    <div class="actions">
      <button type="submit">Book Now</button>
    </div>
  </form>
  <p>{{ .Bookings }} booking(s) saved on this device. <a href="/bookings">View</a></p>
  <form method="post" action="/bookings/clear"><button type="submit">Clear saved bookings</button></form>
  <script>
    document.querySelectorAll("[data-kind]").forEach(function (el) {
      el.addEventListener("blur", function () {
        var q = new URLSearchParams({field: el.dataset.kind, value: el.value, required: el.dataset.required === "true"});
        fetch("/validate?" + q).then(function (r) { return r.json(); }).then(function (res) {
          el.classList.remove("valid", "invalid");
          if (res.state) { el.classList.add(res.state); }
        });
      });
    });
  </script>
</body>
</html>
`
