package utils

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/wneessen/go-mail"

	"priceai_back_end/internal/models"
)

// SendOrderConfirmation envoie l'e-mail de confirmation de commande.
// Best-effort : sans SMTP configuré on logge et on sort, le checkout est
// déjà réglé et persisté.
func SendOrderConfirmation(to string, order models.Order) {
	host := os.Getenv("SMTP_HOST")
	if host == "" || to == "" {
		log.Printf("⚠️ SMTP non configuré — confirmation de la commande #%s non envoyée", order.ID)
		return
	}

	msg := mail.NewMsg()
	if err := msg.From("noreply@priceai.dev"); err != nil {
		log.Println("❌ Erreur expéditeur e-mail:", err)
		return
	}
	if err := msg.To(to); err != nil {
		log.Println("❌ Erreur destinataire e-mail:", err)
		return
	}
	msg.Subject(fmt.Sprintf("Votre commande PriceAI #%s", order.ID))
	msg.SetBodyString(mail.TypeTextHTML, orderConfirmationHTML(order))

	client, err := mail.NewClient(host,
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		log.Println("❌ Erreur client SMTP:", err)
		return
	}

	log.Println("📤 Envoi de la confirmation de commande à", to)
	if err := client.DialAndSend(msg); err != nil {
		log.Println("❌ Erreur envoi e-mail:", err)
	}
}

// orderConfirmationHTML génère le HTML de confirmation de commande
func orderConfirmationHTML(order models.Order) string {
	var items strings.Builder
	for _, item := range order.Items {
		displayed := item.DisplayPrice
		if displayed == "" {
			displayed = item.Price
		}
		items.WriteString(fmt.Sprintf(`
			<tr>
				<td style="padding: 10px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 10px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 10px; border: 1px solid #ddd;">%s</td>
			</tr>`, item.Name, item.Source, displayed))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<title>Confirmation de commande</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Confirmation de votre commande #%s</h2>
		<p>Bonjour,</p>
		<p>Votre commande a été confirmée avec succès (paiement : %s).</p>

		<h3>Détails de la commande</h3>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Article</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Marchand</th>
					<th style="padding: 10px; text-align: left; border: 1px solid #ddd;">Prix</th>
				</tr>
			</thead>
			<tbody>%s</tbody>
		</table>

		<p style="font-size: 18px;"><strong>Total : ₹%.2f</strong></p>
		<p style="color: #777; font-size: 12px;">Commande passée le %s — PriceAI</p>
	</div>
</body>
</html>`, order.ID, order.Method, items.String(), order.Total, order.Date)
}
