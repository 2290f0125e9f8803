package notifier

const otpTextTemplate = `Hello {{.DisplayName}},

You asked to sign in. Your one-time code is:

    {{.Code}}

The code is valid for {{.ValidFor}} minutes.

- Never share this code with anyone.
- If you did not try to sign in, ignore this email.

{{.SenderName}}
This email was sent automatically, please do not reply.
`

const otpHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
  body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f4f4; margin: 0; padding: 0; }
  .container { max-width: 600px; margin: 40px auto; background-color: #ffffff; border-radius: 10px; overflow: hidden; }
  .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: #ffffff; padding: 30px; text-align: center; }
  .content { padding: 40px 30px; }
  .otp-box { background-color: #f8f9fa; border: 2px dashed #667eea; border-radius: 8px; padding: 20px; text-align: center; margin: 30px 0; }
  .otp-code { font-size: 36px; font-weight: bold; color: #667eea; letter-spacing: 8px; margin: 10px 0; }
  .warning { background-color: #fff3cd; border-left: 4px solid #ffc107; padding: 15px; margin: 20px 0; border-radius: 4px; }
  .footer { background-color: #f8f9fa; padding: 20px; text-align: center; color: #6c757d; font-size: 14px; }
</style>
</head>
<body>
<div class="container">
  <div class="header"><h1>Sign-in verification</h1></div>
  <div class="content">
    <p>Hello <strong>{{.DisplayName}}</strong>,</p>
    <p>You asked to sign in. Here is your one-time code:</p>
    <div class="otp-box">
      <div class="otp-code">{{.Code}}</div>
      <p>Valid for {{.ValidFor}} minutes</p>
    </div>
    <div class="warning">
      <strong>Security notice:</strong>
      <ul>
        <li>Never share this code with anyone</li>
        <li>The code expires after {{.ValidFor}} minutes</li>
        <li>If you did not try to sign in, ignore this email</li>
      </ul>
    </div>
    <p>Regards,<br><strong>{{.SenderName}}</strong></p>
  </div>
  <div class="footer">
    <p>This email was sent automatically, please do not reply.</p>
    <p>&copy; {{.Year}} {{.SenderName}}</p>
  </div>
</div>
</body>
</html>
`
