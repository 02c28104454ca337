package service

import (
	"bytes"
	"context"
	"fmt"
	htmltemplate "html/template"
	"net/smtp"
	texttemplate "text/template"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/jordan-wright/email"
)

type IMailService interface {
	// SendOrderConfirmation 寄送訂單確認信
	// 一封信帶純文字與HTML兩種版本  內容由已落地的訂單渲染
	// 寄送失敗由呼叫端決定如何處理  訂單流程不因寄信失敗而失敗
	SendOrderConfirmation(ctx context.Context, order *model.Order) error
}

type MailService struct {
	senderName string
	from       string
	smtpHost   string
	smtpPort   string
	auth       smtp.Auth
}

// NewMailService 初始化 mail service
// 參數:
//
//	senderName: 寄件者屬名
//	fromEmailAddress: 寄件者郵件地址
//	smtpHost, smtpPort: SMTP主機
//	authKey: SMTP授權密碼
func NewMailService(senderName, fromEmailAddress, smtpHost, smtpPort, authKey string) IMailService {
	return &MailService{
		senderName: senderName,
		from:       fromEmailAddress,
		smtpHost:   smtpHost,
		smtpPort:   smtpPort,
		auth:       smtp.PlainAuth("", fromEmailAddress, authKey, smtpHost),
	}
}

func (m *MailService) SendOrderConfirmation(ctx context.Context, order *model.Order) error {
	textBody, err := GenerateOrderEmailText(order)
	if err != nil {
		return err
	}
	htmlBody, err := GenerateOrderEmailHTML(order)
	if err != nil {
		return err
	}

	e := email.NewEmail()
	e.From = fmt.Sprintf("%s <%s>", m.senderName, m.from)
	e.To = []string{order.Email}
	e.Subject = constants.OrderConfirmationTitle
	e.Text = []byte(textBody)
	e.HTML = []byte(htmlBody)

	// email套件不吃context  自行以deadline收斂
	done := make(chan error, 1)
	go func() {
		done <- e.Send(fmt.Sprintf("%s:%s", m.smtpHost, m.smtpPort), m.auth)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// GenerateOrderEmailText 生成純文字版本的確認信
func GenerateOrderEmailText(order *model.Order) (string, error) {
	tmpl, err := texttemplate.New("orderEmailText").Parse(orderConfirmationTextTemplate)
	if err != nil {
		return "", fmt.Errorf("解析純文字模板失敗: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, order)
	if err != nil {
		return "", fmt.Errorf("執行純文字模板失敗: %w", err)
	}

	return buf.String(), nil
}

// GenerateOrderEmailHTML 生成 HTML 格式的確認信
func GenerateOrderEmailHTML(order *model.Order) (string, error) {
	tmpl, err := htmltemplate.New("orderEmailHTML").Parse(orderConfirmationHTMLTemplate)
	if err != nil {
		return "", fmt.Errorf("解析 HTML 模板失敗: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, order)
	if err != nil {
		return "", fmt.Errorf("執行 HTML 模板失敗: %w", err)
	}

	return buf.String(), nil
}

const orderConfirmationTextTemplate = `Dear {{.FirstName}} {{.LastName}},

Thank you for your order!

Order number: {{.OrderID}}
{{range .OrderItems}}  - product {{.ProductID}} x {{.Quantity}} @ {{.Price}}
{{end}}Total: {{.Amount}}

We will ship to:
{{.Address}}, {{.PostalCode}} {{.City}}

This email was sent automatically, please do not reply.
`

// HTML 模板
const orderConfirmationHTMLTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Order Confirmation</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #007bff; color: white; padding: 20px; text-align: center; }
        .content { padding: 30px; background-color: #f9f9f9; }
        .footer { padding: 20px; text-align: center; font-size: 12px; color: #666; }
        table { width: 100%; border-collapse: collapse; }
        th, td { padding: 8px; border-bottom: 1px solid #ddd; text-align: left; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Thank you for your order</h1>
        </div>

        <div class="content">
            <p>Dear {{.FirstName}} {{.LastName}},</p>

            <p>Your order <strong>#{{.OrderID}}</strong> has been received.</p>

            <table>
                <tr><th>Product</th><th>Quantity</th><th>Price</th></tr>
                {{range .OrderItems}}
                <tr><td>{{.ProductID}}</td><td>{{.Quantity}}</td><td>{{.Price}}</td></tr>
                {{end}}
            </table>

            <p><strong>Total: {{.Amount}}</strong></p>

            <p>Shipping address: {{.Address}}, {{.PostalCode}} {{.City}}</p>
        </div>

        <div class="footer">
            <p>This email was sent automatically, please do not reply.</p>
        </div>
    </div>
</body>
</html>
`
