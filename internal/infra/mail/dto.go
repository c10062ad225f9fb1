package mail

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Attachment é o asset do lead magnet que vai junto no email de boas-vindas.
type Attachment struct {
	Filename string
	Data     []byte
}

// BulkResult agrega o resultado de um envio em massa. Falhas parciais
// são toleradas e só contabilizadas, nunca retentadas.
type BulkResult struct {
	Success int `json:"success"`
	Failed  int `json:"failed"`
}

type welcomeEmailData struct {
	Name         string
	Title        string
	ValuePromise string
}

type upgradeOfferEmailData struct {
	Name        string
	Title       string
	Description string
	Link        string
}
