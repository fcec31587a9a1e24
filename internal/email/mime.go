package email

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/textproto"
)

// buildMIMEMessage assembles an RFC 2822 message for the Gmail API raw send.
// With attachments the message is multipart/mixed; without, a single-part
// body. htmlBody and textBody are mutually exclusive.
func buildMIMEMessage(fromName, fromEmail, toEmail, subject, htmlBody, textBody string, attachments ...Attachment) ([]byte, error) {
	var buf bytes.Buffer

	writeHeader := func(key, value string) {
		fmt.Fprintf(&buf, "%s: %s\r\n", key, value)
	}

	writeHeader("From", fmt.Sprintf("%s <%s>", fromName, fromEmail))
	writeHeader("To", toEmail)
	writeHeader("Subject", subject)
	writeHeader("MIME-Version", "1.0")

	contentType := "text/html; charset=\"UTF-8\""
	body := htmlBody
	if body == "" {
		contentType = "text/plain; charset=\"UTF-8\""
		body = textBody
	}

	if len(attachments) == 0 {
		writeHeader("Content-Type", contentType)
		buf.WriteString("\r\n")
		buf.WriteString(body)
		return buf.Bytes(), nil
	}

	writer := multipart.NewWriter(&buf)
	writeHeader("Content-Type", "multipart/mixed; boundary="+writer.Boundary())
	buf.WriteString("\r\n")

	bodyHeader := make(textproto.MIMEHeader)
	bodyHeader.Set("Content-Type", contentType)
	bodyPart, err := writer.CreatePart(bodyHeader)
	if err != nil {
		return nil, fmt.Errorf("create body part: %w", err)
	}
	if _, err := bodyPart.Write([]byte(body)); err != nil {
		return nil, fmt.Errorf("write body part: %w", err)
	}

	for _, att := range attachments {
		mimeType := att.MIMEType
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}
		attHeader := make(textproto.MIMEHeader)
		attHeader.Set("Content-Type", mimeType)
		attHeader.Set("Content-Transfer-Encoding", "base64")
		attHeader.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, att.FileName))

		part, err := writer.CreatePart(attHeader)
		if err != nil {
			return nil, fmt.Errorf("create attachment part %s: %w", att.FileName, err)
		}
		encoded := base64.StdEncoding.EncodeToString(att.Content)
		// fold base64 content to 76-character lines per RFC 2045
		for len(encoded) > 0 {
			line := encoded
			if len(line) > 76 {
				line = line[:76]
			}
			if _, err := part.Write([]byte(line + "\r\n")); err != nil {
				return nil, fmt.Errorf("write attachment part %s: %w", att.FileName, err)
			}
			encoded = encoded[len(line):]
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	return buf.Bytes(), nil
}
