package mail

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
)

// buildMIME serializes a Message into the raw bytes handed to the SMTP relay.
// Messages without attachments stay a single text/html body; with attachments
// the body becomes multipart/mixed with base64-encoded file parts.
func buildMIME(msg *Message) ([]byte, error) {
	var buf bytes.Buffer

	writeHeader(&buf, "From", fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", msg.FromName), msg.FromAddress))
	writeHeader(&buf, "To", msg.To)
	if msg.CC != "" {
		writeHeader(&buf, "Cc", msg.CC)
	}
	writeHeader(&buf, "Subject", mime.QEncoding.Encode("utf-8", msg.Subject))
	writeHeader(&buf, "MIME-Version", "1.0")

	if len(msg.Attachments) == 0 {
		writeHeader(&buf, "Content-Type", `text/html; charset="utf-8"`)
		buf.WriteString("\r\n")
		buf.WriteString(msg.HTMLBody)
		return buf.Bytes(), nil
	}

	mw := multipart.NewWriter(&buf)
	writeHeader(&buf, "Content-Type", fmt.Sprintf(`multipart/mixed; boundary="%s"`, mw.Boundary()))
	buf.WriteString("\r\n")

	bodyHeader := textproto.MIMEHeader{}
	bodyHeader.Set("Content-Type", `text/html; charset="utf-8"`)
	body, err := mw.CreatePart(bodyHeader)
	if err != nil {
		return nil, err
	}
	if _, err := body.Write([]byte(msg.HTMLBody)); err != nil {
		return nil, err
	}

	for _, att := range msg.Attachments {
		if err := writeAttachment(mw, att); err != nil {
			return nil, err
		}
	}

	if err := mw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeAttachment(mw *multipart.Writer, att Attachment) error {
	data, err := os.ReadFile(att.Path)
	if err != nil {
		return fmt.Errorf("failed to read attachment %s: %w", att.Path, err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(att.Filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)
	header.Set("Content-Transfer-Encoding", "base64")
	header.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, att.Filename))

	part, err := mw.CreatePart(header)
	if err != nil {
		return err
	}
	return writeBase64(part, data)
}

// writeBase64 encodes data wrapped at 76 columns as RFC 2045 requires.
func writeBase64(w io.Writer, data []byte) error {
	encoded := base64.StdEncoding.EncodeToString(data)
	for len(encoded) > 0 {
		n := 76
		if n > len(encoded) {
			n = len(encoded)
		}
		if _, err := w.Write([]byte(encoded[:n])); err != nil {
			return err
		}
		if _, err := w.Write([]byte("\r\n")); err != nil {
			return err
		}
		encoded = encoded[n:]
	}
	return nil
}

func writeHeader(buf *bytes.Buffer, key, value string) {
	buf.WriteString(key)
	buf.WriteString(": ")
	buf.WriteString(value)
	buf.WriteString("\r\n")
}
