package main

type Config struct {
	Port           string   `env:"PORT" env-default:"3000"`
	DbPath         string   `env:"DBPATH" env-default:""`
	JwtSecret      string   `env:"JWT_SECRET" env-required:"true"`
	Endpoint       string   `env:"ENDPOINT" env-default:"http://localhost:3000"`
	SessionTimeout uint     `env:"SESSION_TIMEOUT" env-default:"24"`
	InvitationDays int      `env:"INVITATION_EXPIRATION_DAYS" env-default:"14"`
	VersionsPath   string   `env:"VERSIONS_PATH" env-default:"versions.yml"`
	WaitDeadline   uint     `env:"WAIT_DEADLINE" env-default:"300"`
	WaitInterval   uint     `env:"WAIT_INTERVAL" env-default:"10"`
	SmtpServer     string   `env:"SMTP_SERVER"`
	SmtpPort       int      `env:"SMTP_PORT" env-default:"587"`
	SmtpUser       string   `env:"SMTP_USER"`
	SmtpPassword   string   `env:"SMTP_PASSWORD"`
	AdminAddresses []string `env:"ADMIN_ADDRESSES" env-separator:","`
}
