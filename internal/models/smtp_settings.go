package models

// SMTPSettings is a singleton row (ID is always 1). The password is
// write-only: it never appears in JSON responses.
type SMTPSettings struct {
	ID             uint   `gorm:"column:id;primaryKey" json:"-"`
	SenderEmail    string `gorm:"column:sender_email;type:text" json:"sender_email"`
	RecipientEmail string `gorm:"column:recipient_email;type:text" json:"recipient_email"`
	Server         string `gorm:"column:server;type:text" json:"server"`
	Port           int    `gorm:"column:port;type:integer" json:"port"`
	Username       string `gorm:"column:username;type:text" json:"username"`
	Password       string `gorm:"column:password;type:text" json:"-"`
	UseSSL         bool   `gorm:"column:use_ssl" json:"use_ssl"`
}

func (SMTPSettings) TableName() string { return "smtp_settings" }

// Configured reports whether there is enough to attempt a send.
func (s *SMTPSettings) Configured() bool {
	return s != nil && s.Server != "" && s.Port > 0 && s.SenderEmail != "" && s.RecipientEmail != ""
}
