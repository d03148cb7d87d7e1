package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"

	"shopfit/config"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// ImageHostResponse represents the response from the image-hosting upload API
type ImageHostResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Message   string `json:"message"`
}

// UploadImage pushes an uploaded file to the external image-hosting service
// and returns the hosted URL.
func UploadImage(file *multipart.FileHeader, folder string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %v", err)
	}
	defer src.Close()

	// Unique remote filename
	remoteName := uuid.NewString() + filepath.Ext(file.Filename)

	client := resty.New()
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.ImageHostApiKey).
		SetFileReader("file", remoteName, src).
		SetFormData(map[string]string{
			"folder": folder,
		}).
		Post(config.AppConfig.ImageHostURL)
	if err != nil {
		log.Printf("Error uploading image: %v", err)
		return "", err
	}

	if resp.StatusCode() != 200 && resp.StatusCode() != 201 {
		log.Printf("Image upload failed: %s", resp.String())
		return "", fmt.Errorf("image upload failed, code: %d", resp.StatusCode())
	}

	var uploadResp ImageHostResponse
	if err := json.Unmarshal(resp.Body(), &uploadResp); err != nil {
		return "", fmt.Errorf("failed to parse upload response: %v", err)
	}

	if uploadResp.SecureURL == "" {
		return "", fmt.Errorf("image host returned no URL")
	}

	return uploadResp.SecureURL, nil
}
