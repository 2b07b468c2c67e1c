package dto

type PresignUploadRequest struct {
	Filename string `json:"filename"`
	Filetype string `json:"filetype"`
}

type PresignUploadResponse struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// InboundSMSWebhook is the delivery-receipt payload posted by the SMS
// provider. Fields beyond these are ignored.
type InboundSMSWebhook struct {
	MessageID string `json:"message_id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Text      string `json:"text"`
	Status    string `json:"status"`
}
