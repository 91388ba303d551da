package utils

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
)

// GenerateCardNumber generates a random 16-digit card number with a
// valid Luhn check digit.
func GenerateCardNumber() (string, error) {
	bin := "400000"

	randomDigits := make([]byte, 9)
	if _, err := rand.Read(randomDigits); err != nil {
		return "", fmt.Errorf("failed to generate random digits: %w", err)
	}

	number := bin
	for _, b := range randomDigits {
		number += strconv.Itoa(int(b) % 10)
	}

	sum := 0
	alternate := true
	for i := len(number) - 1; i >= 0; i-- {
		digit := int(number[i] - '0')
		if alternate {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		alternate = !alternate
	}
	checkDigit := (10 - sum%10) % 10

	return number + strconv.Itoa(checkDigit), nil
}

// MaskCardNumber produces the display-safe form of a card number,
// keeping only the last four digits.
func MaskCardNumber(cardNumber string) string {
	if len(cardNumber) < 4 {
		return "****"
	}
	return fmt.Sprintf("**** **** **** %s", cardNumber[len(cardNumber)-4:])
}

// EncryptCardNumber encrypts a raw card number for storage using
// AES-CBC with a random IV, returning a hex string. The raw number is
// encrypted once at card creation and never decrypted by this service.
func EncryptCardNumber(cardNumber string, key []byte) (string, error) {
	if cardNumber == "" {
		return "", fmt.Errorf("card number is empty")
	}
	if len(key) != 16 && len(key) != 24 && len(key) != 32 {
		return "", fmt.Errorf("encryption key must be 16, 24, or 32 bytes, got %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("failed to generate IV: %w", err)
	}

	// PKCS#7 padding
	data := []byte(cardNumber)
	padding := aes.BlockSize - len(data)%aes.BlockSize
	for i := 0; i < padding; i++ {
		data = append(data, byte(padding))
	}

	ciphertext := make([]byte, len(data))
	mode := cipher.NewCBCEncrypter(block, iv)
	mode.CryptBlocks(ciphertext, data)

	return hex.EncodeToString(append(iv, ciphertext...)), nil
}
