package i18n

// Message keys shared by the services and handlers.
const (
	MsgEmailRequired       = "twofactor.email_required"
	MsgEmailCodeRequired   = "twofactor.email_code_required"
	MsgCodeSentDemo        = "twofactor.code_sent_demo"
	MsgCodeSent            = "twofactor.code_sent"
	MsgCodeIssueFailed     = "twofactor.issue_failed"
	MsgCodeNotFound        = "twofactor.not_found"
	MsgCodeExpired         = "twofactor.expired"
	MsgCodeMismatch        = "twofactor.mismatch"
	MsgCodeVerified        = "twofactor.verified"
	MsgCodeVerifyFailed    = "twofactor.verify_failed"
	MsgInvalidCredentials  = "auth.invalid_credentials"
	MsgSessionExpired      = "auth.session_expired"
	MsgSignedIn            = "auth.signed_in"
	MsgResetSent           = "auth.reset_sent"
	MsgResetUnknownAccount = "auth.reset_unknown"
	MsgQuoteReceived       = "quote.received"
)

// catalog maps a key to its {French, English} labels.
var catalog = map[string][2]string{
	MsgEmailRequired:       {"Email requis", "Email is required"},
	MsgEmailCodeRequired:   {"Email et code requis", "Email and code are required"},
	MsgCodeSentDemo:        {"Code de vérification généré (mode démonstration)", "Verification code generated (demo mode)"},
	MsgCodeSent:            {"Code de vérification envoyé par email", "Verification code sent by email"},
	MsgCodeIssueFailed:     {"Erreur lors de la génération du code", "Could not generate the verification code"},
	MsgCodeNotFound:        {"Aucun code trouvé. Veuillez demander un nouveau code.", "No code found. Please request a new code."},
	MsgCodeExpired:         {"Code expiré. Veuillez demander un nouveau code.", "Code expired. Please request a new code."},
	MsgCodeMismatch:        {"Code incorrect", "Incorrect code"},
	MsgCodeVerified:        {"Code vérifié avec succès", "Code verified successfully"},
	MsgCodeVerifyFailed:    {"Erreur lors de la vérification", "Verification failed"},
	MsgInvalidCredentials:  {"Identifiants incorrects", "Invalid credentials"},
	MsgSessionExpired:      {"Session expirée", "Session expired"},
	MsgSignedIn:            {"Connexion réussie", "Signed in"},
	MsgResetSent:           {"Un email de réinitialisation a été envoyé à votre adresse.", "A reset email has been sent to your address."},
	MsgResetUnknownAccount: {"Aucun compte trouvé avec cette adresse email.", "No account found with this email address."},
	MsgQuoteReceived:       {"Demande de devis reçue, nous revenons vers vous sous 24h.", "Quote request received, we will get back to you within 24 hours."},

	"event_type.wedding":   {"Mariage", "Wedding"},
	"event_type.corporate": {"Événement d'entreprise", "Corporate event"},
	"event_type.private":   {"Soirée privée", "Private party"},
	"event_type.festival":  {"Festival / Concert", "Festival / Concert"},
	"event_type.other":     {"Autre", "Other"},

	"service.dj":           {"Animation DJ", "DJ sets"},
	"service.production":   {"Production Musicale", "Music production"},
	"service.organization": {"Organisation d'Événements", "Event planning"},
	"service.technical":    {"Prestations Techniques", "Technical services"},
	"service.mapping":      {"Vidéo Mapping", "Video mapping"},
	"service.media":        {"Captations & Médias", "Recording & media"},

	"budget.1000-5000":   {"1 000€ - 5 000€", "€1,000 - €5,000"},
	"budget.5000-10000":  {"5 000€ - 10 000€", "€5,000 - €10,000"},
	"budget.10000-25000": {"10 000€ - 25 000€", "€10,000 - €25,000"},
	"budget.25000+":      {"25 000€+", "€25,000+"},
	"budget.discuss":     {"À discuter", "To be discussed"},
}
