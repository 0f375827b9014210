package service

// QRCodeService renders claim codes as QR images so providers can print them
// onto the physical box.
type QRCodeService interface {
	// GenerateClaimQR renders the claim code as a PNG QR image.
	GenerateClaimQR(claimCode string) ([]byte, error)

	// ParseClaimQR extracts the claim code from scanned QR data.
	ParseClaimQR(qrData string) (string, error)
}
