package whatsapp

type sessionResponse struct {
	State string `json:"state"`
	QR    string `json:"qr,omitempty"`
}

type sendRequest struct {
	Address string `json:"address"`
	Text    string `json:"text"`
}

type sendResponse struct {
	MessageID string `json:"messageId"`
}
