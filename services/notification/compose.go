package notification

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"

	"cerberus/models"
)

const fallbackProjectType = "New inquiry"

var contactHTML = template.Must(template.New("contact").Parse(`<p><strong>Name:</strong> {{.Name}}<br>
<strong>Email:</strong> {{.Email}}<br>
<strong>Project type:</strong> {{.ProjectType}}<br>
<strong>Preferred date(s):</strong> {{.PreferredDate}}<br>
<strong>Song link:</strong> {{if .SongLink}}<a href="{{.SongLink}}">{{.SongLink}}</a>{{end}}</p>
<p><strong>Notes:</strong></p>
<pre>{{.Notes}}</pre>
<hr>
<p><strong>Estimate:</strong></p>
<pre>{{.Estimate}}</pre>
`))

// htmlPolicy limits the HTML part to formatting tags and http(s) links with
// rel="nofollow". Submitted text is already escaped by the template.
var htmlPolicy = bluemonday.UGCPolicy().AllowURLSchemes("http", "https")

// ContactEmail builds the booking notification for sub, addressed to to.
func ContactEmail(sub models.ContactSubmission, to string) Email {
	projectType := sub.ProjectType
	if projectType == "" {
		projectType = fallbackProjectType
	}

	body := fmt.Sprintf(`Name: %s
Email: %s
Project type: %s
Preferred date(s): %s
Song link: %s

Notes:
%s

------------------
Estimate:
%s
`, sub.Name, sub.Email, sub.ProjectType, sub.PreferredDate, sub.SongLink, sub.Notes, sub.Estimate)

	return Email{
		To:       []string{to},
		ReplyTo:  sub.Email,
		Subject:  fmt.Sprintf("[Booking] %s — %s", projectType, sub.Name),
		Body:     body,
		HTMLBody: contactHTMLBody(sub),
	}
}

// contactHTMLBody renders the HTML alternative, or "" if rendering fails, in
// which case the message goes out as plain text only.
func contactHTMLBody(sub models.ContactSubmission) string {
	var buf bytes.Buffer
	if err := contactHTML.Execute(&buf, sub); err != nil {
		return ""
	}
	return htmlPolicy.Sanitize(buf.String())
}
