package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/gomail.v2"
)

type CashierSummaryRow struct {
	CashierName  string
	PaymentCount int
	TotalAmount  float64
}

type DailySummaryData struct {
	Date         string
	PaymentCount int
	TotalAmount  float64
	Cashiers     []CashierSummaryRow
}

var summaryTemplate = template.Must(template.New("daily_summary").Parse(`
<h2>Daily payment summary {{.Date}}</h2>
<p>{{.PaymentCount}} payments, {{printf "%.2f" .TotalAmount}} total.</p>
<table border="1" cellpadding="4">
  <tr><th>Cashier</th><th>Payments</th><th>Total</th></tr>
  {{range .Cashiers}}
  <tr><td>{{.CashierName}}</td><td>{{.PaymentCount}}</td><td>{{printf "%.2f" .TotalAmount}}</td></tr>
  {{end}}
</table>
`))

// SendDailySummaryEmail sends the end-of-day payment summary (async)
func SendDailySummaryEmail(to string, data DailySummaryData) {
	go func() {
		var body bytes.Buffer
		if err := summaryTemplate.Execute(&body, data); err != nil {
			log.Printf("failed to render summary email: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Payment summary "+data.Date)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send summary email: %v", err)
		}
	}()
}

func SummaryDate(t time.Time) string {
	return t.Format("02/01/2006")
}
