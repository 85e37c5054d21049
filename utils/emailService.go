package utils

import (
	"aula/config"
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// SendEmail delivers an HTML email through SMTP. A missing EMAIL_SENDER turns
// every send into a no-op so local setups run without mail credentials.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password
	if from == "" {
		return nil
	}

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Aula Virtual <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email to %v: %v", to, err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1D3557; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1D3557; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>AULA VIRTUAL</h1></div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">&copy; 2026 Aula Virtual</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendWelcomeEmail greets a newly registered user
func SendWelcomeEmail(email, nombre string) {
	subject := "Bienvenido a Aula Virtual"
	body := fmt.Sprintf(`
		<p>Hola %s,</p>
		<p>Tu cuenta en <strong>Aula Virtual</strong> fue creada correctamente.</p>
		<p>Ya puedes explorar los cursos disponibles y la agenda de clases.</p>
	`, nombre)

	go SendEmail([]string{email}, subject, getEmailTemplate("¡Bienvenido!", body))
}

// SendEnrollmentEmail confirms a student's enrollment in a course
func SendEnrollmentEmail(email, nombre, cursoTitulo string) {
	subject := "Inscripción confirmada: " + cursoTitulo
	body := fmt.Sprintf(`
		<p>Hola %s,</p>
		<p>Te inscribiste correctamente en <strong>%s</strong>.</p>
		<p>Encontrarás los módulos del curso y tu progreso en tu panel.</p>
	`, nombre, cursoTitulo)

	go SendEmail([]string{email}, subject, getEmailTemplate("Inscripción exitosa", body))
}

// SendEventReminderEmail notifies an enrolled student about an upcoming class
func SendEventReminderEmail(email, nombre, eventoTitulo, fecha string) {
	subject := "Recordatorio de clase: " + eventoTitulo
	body := fmt.Sprintf(`
		<p>Hola %s,</p>
		<p>Tienes una clase próxima: <strong>%s</strong>.</p>
		<p>Comienza el <strong>%s</strong>. ¡No faltes!</p>
	`, nombre, eventoTitulo, fecha)

	go SendEmail([]string{email}, subject, getEmailTemplate("Clase próxima", body))
}
