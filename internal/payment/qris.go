package payment

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

// qrisPayload is the data embedded in a simulated QRIS code. A real
// integration would receive this blob from the acquirer API.
type qrisPayload struct {
	MerchantName string `json:"merchant_name"`
	MerchantID   string `json:"merchant_id"`
	Amount       int64  `json:"amount"`
	BookingID    string `json:"booking_id"`
	Timestamp    int64  `json:"timestamp"`
}

// EncodeQRIS builds the opaque QR payload for a booking: a base64
// encoding of the merchant identity, amount, booking ID and creation
// instant (unix milliseconds).
func EncodeQRIS(merchantName, merchantID, bookingID string, amount int64, createdAt time.Time) string {
	payload := qrisPayload{
		MerchantName: merchantName,
		MerchantID:   merchantID,
		Amount:       amount,
		BookingID:    bookingID,
		Timestamp:    createdAt.UnixMilli(),
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		// The payload is plain scalars; Marshal cannot fail here.
		panic(err)
	}
	return base64.StdEncoding.EncodeToString(raw)
}

// QRImageURL returns a URL that renders the payload as a scannable
// image through the public qrserver API, as the checkout page displays.
func QRImageURL(qrData string) string {
	return fmt.Sprintf("https://api.qrserver.com/v1/create-qr-code/?size=300x300&data=%s", url.QueryEscape(qrData))
}
