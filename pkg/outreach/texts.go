package outreach

// Form names. The mailer picks the email subject by form name.
const (
	FormContact    = "contact"
	FormNewsletter = "newsletter"
	FormDonor      = "donor"
)

const invalidEmailText = "Veuillez entrer une adresse email valide"

const (
	contactSuccessText = "Message envoyé avec succès !"
	contactFailureText = "Erreur lors de l'envoi du message. Veuillez réessayer."

	newsletterSuccessText = "Inscription à la newsletter réussie !"
	newsletterFailureText = "Erreur lors de l'inscription. Veuillez réessayer."
	newsletterBody        = "Inscription à la newsletter"

	donorSuccessText = "Vos informations ont été enregistrées. Vous recevrez votre reçu fiscal par email."
	donorFailureText = "Erreur lors de l'envoi des informations. Veuillez réessayer."
	donorBody        = "Demande de reçu fiscal pour un don"
)
