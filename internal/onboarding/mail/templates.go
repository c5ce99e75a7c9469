package mail

import (
	"bytes"
	"fmt"
	"html/template"
)

// InviteEmailData holds the values rendered into an invitation email.
type InviteEmailData struct {
	SiteName         string
	OrganizationName string
	InviteLink       string
}

// BuildInviteEmail renders the organization setup invitation. To and From
// are left for the caller.
func BuildInviteEmail(data InviteEmailData) (Message, error) {
	html, err := buildInviteHTML(data)
	if err != nil {
		return Message{}, err
	}
	return Message{
		Subject:  fmt.Sprintf("You're invited to set up %s on %s", data.OrganizationName, data.SiteName),
		TextBody: buildInviteText(data),
		HTMLBody: html,
	}, nil
}

func buildInviteText(data InviteEmailData) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "You have been invited to set up %s on %s.\n\n", data.OrganizationName, data.SiteName)
	buf.WriteString("Open this link to accept the invitation:\n")
	buf.WriteString(data.InviteLink + "\n\n")
	buf.WriteString("The link can only be used once. If you were not expecting this invitation, you can ignore this email.\n")
	return buf.String()
}

var inviteHTML = template.Must(template.New("invite").Parse(inviteHTMLTemplate))

func buildInviteHTML(data InviteEmailData) (string, error) {
	var buf bytes.Buffer
	if err := inviteHTML.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("mail: render invite: %w", err)
	}
	return buf.String(), nil
}

const inviteHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Invitation</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; background-color: #f3f4f6;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f3f4f6;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 480px; background-color: #ffffff; border-radius: 8px;">
          <tr>
            <td style="padding: 32px 32px 24px; text-align: center; border-bottom: 1px solid #e5e7eb;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #4f46e5;">{{.SiteName}}</h1>
            </td>
          </tr>
          <tr>
            <td style="padding: 32px;">
              <p style="margin: 0 0 24px; font-size: 16px; color: #374151; line-height: 1.5;">
                You have been invited to set up <strong>{{.OrganizationName}}</strong>.
              </p>
              <table role="presentation" width="100%" cellspacing="0" cellpadding="0">
                <tr>
                  <td align="center">
                    <a href="{{.InviteLink}}" style="display: inline-block; padding: 14px 32px; background-color: #4f46e5; color: #ffffff; text-decoration: none; font-size: 16px; font-weight: 500; border-radius: 6px;">
                      Accept invitation
                    </a>
                  </td>
                </tr>
              </table>
              <p style="margin: 24px 0 0; font-size: 13px; color: #9ca3af; text-align: center;">
                This link can only be used once.
              </p>
            </td>
          </tr>
          <tr>
            <td style="padding: 24px 32px; background-color: #f9fafb; border-top: 1px solid #e5e7eb; border-radius: 0 0 8px 8px;">
              <p style="margin: 0; font-size: 12px; color: #9ca3af; text-align: center;">
                If you were not expecting this invitation, you can ignore this email.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`
