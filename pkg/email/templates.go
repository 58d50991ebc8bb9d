package email

import (
	"fmt"
	"html"
)

// PasswordResetTemplate renders the password reset email body.
func PasswordResetTemplate(name, resetURL string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
	<h2>Password Reset</h2>
	<p>Hi %s,</p>
	<p>We received a request to reset your password. Click the button below to choose a new one. The link expires in 30 minutes.</p>
	<p style="margin: 24px 0;">
		<a href="%s" style="background: #4a7c59; color: #fff; padding: 12px 24px; text-decoration: none; border-radius: 4px;">Reset Password</a>
	</p>
	<p>If you did not request this, you can safely ignore this email.</p>
</div>`, html.EscapeString(name), resetURL)
}

// ContactNotificationTemplate renders the operator notification for a new
// contact form submission.
func ContactNotificationTemplate(fromName, fromEmail, message string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
	<h2>New Contact Form Submission</h2>
	<p><strong>From:</strong> %s (%s)</p>
	<p><strong>Message:</strong></p>
	<blockquote style="border-left: 3px solid #4a7c59; padding-left: 12px; color: #444;">%s</blockquote>
</div>`, html.EscapeString(fromName), html.EscapeString(fromEmail), html.EscapeString(message))
}
