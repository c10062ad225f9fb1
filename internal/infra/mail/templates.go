package mail

import "html/template"

// Templates HTML dos emails transacionais. Ficam embutidos no binário
// para o deploy não depender de diretório de templates.

var welcomeTmpl = template.Must(template.New("welcome").Parse(`
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h1 style="color: #6366f1;">Hi {{.Name}}! 👋</h1>

    <p>Thanks for downloading <strong>{{.Title}}</strong>!</p>

    <p>{{.ValuePromise}}</p>

    <div style="background: #f3f4f6; padding: 20px; border-radius: 10px; margin: 20px 0;">
      <h2 style="color: #4f46e5; margin-top: 0;">What's Next?</h2>
      <ul>
        <li>Download your resource attached to this email</li>
        <li>Review the content and start implementing</li>
        <li>Watch for follow-up emails with additional tips</li>
      </ul>
    </div>

    <p>If you have any questions, just reply to this email. I'm here to help!</p>

    <p style="margin-top: 30px;">
      Best regards,<br>
      <strong>Your Team</strong>
    </p>

    <hr style="border: none; border-top: 1px solid #e5e7eb; margin: 30px 0;">

    <p style="font-size: 12px; color: #6b7280;">
      You're receiving this email because you downloaded {{.Title}} from our website.
    </p>
  </div>
</body>
</html>
`))

var nurtureTmpl = template.Must(template.New("nurture").Parse(`
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    {{.Body}}

    <p style="margin-top: 30px;">
      Best regards,<br>
      <strong>Your Team</strong>
    </p>

    <hr style="border: none; border-top: 1px solid #e5e7eb; margin: 30px 0;">

    <p style="font-size: 12px; color: #6b7280;">
      You're receiving this email as part of our nurture sequence.
      <a href="#" style="color: #6366f1;">Unsubscribe</a>
    </p>
  </div>
</body>
</html>
`))

var upgradeOfferTmpl = template.Must(template.New("upgrade").Parse(`
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h1 style="color: #6366f1;">Hi {{.Name}}! 🚀</h1>

    <p>I hope you've been enjoying the resource you downloaded!</p>

    <h2 style="color: #4f46e5;">{{.Title}}</h2>

    <p>{{.Description}}</p>

    <div style="text-align: center; margin: 30px 0;">
      <a href="{{.Link}}"
         style="display: inline-block; background: #6366f1; color: white;
                padding: 15px 30px; text-decoration: none; border-radius: 5px;
                font-weight: bold;">
        Learn More →
      </a>
    </div>

    <p>Have questions? Just reply to this email!</p>

    <p style="margin-top: 30px;">
      Best regards,<br>
      <strong>Your Team</strong>
    </p>
  </div>
</body>
</html>
`))
