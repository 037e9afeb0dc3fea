package mail

type WelcomeEmailData struct {
	Name           string
	Representative string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
