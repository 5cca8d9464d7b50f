// Package media provides image processing utilities
package media

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"github.com/raulbellosom/travel-sub004/pkg/config"
)

// ImageProcessor handles photo processing for listings.
type ImageProcessor struct {
	basePath string
}

// NewImageProcessor creates a new ImageProcessor rooted at basePath.
func NewImageProcessor(basePath string) *ImageProcessor {
	return &ImageProcessor{
		basePath: basePath,
	}
}

// ProcessBase64Photo decodes an uploaded base64 photo, writes the original
// under the listing's directory and generates resized WebP variants.
// Returns the relative URL path of the stored original.
func (p *ImageProcessor) ProcessBase64Photo(data, photoID, listingID string) (string, error) {
	if data == "" {
		return "", fmt.Errorf("empty base64 data")
	}

	ext := extractExtension(data)
	if ext == "" {
		return "", fmt.Errorf("unsupported image format")
	}

	targetDir := filepath.Join(p.basePath, "listings", listingID)
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	filename := fmt.Sprintf("%s.%s", photoID, ext)

	idx := strings.Index(data, "base64,")
	if idx == -1 {
		return "", fmt.Errorf("invalid base64 image format")
	}

	decoded, err := base64.StdEncoding.DecodeString(data[idx+len("base64,"):])
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}
	if int64(len(decoded)) > config.MaxUploadBytes {
		return "", fmt.Errorf("image exceeds maximum size of %d bytes", config.MaxUploadBytes)
	}

	fullPath := filepath.Join(targetDir, filename)
	if err := os.WriteFile(fullPath, decoded, 0644); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	if err := p.generateWebPVariants(fullPath, photoID, targetDir); err != nil {
		os.Remove(fullPath)
		return "", err
	}

	relativePath := filepath.Join("/media", "listings", listingID, filename)
	return strings.ReplaceAll(relativePath, "\\", "/"), nil
}

// DeletePhotoAndVariants removes a stored photo and its resized variants.
func (p *ImageProcessor) DeletePhotoAndVariants(imagePath string) error {
	if imagePath == "" {
		return fmt.Errorf("empty image path")
	}

	filename := filepath.Base(imagePath)
	basename := filename
	if dotIndex := strings.LastIndex(filename, "."); dotIndex != -1 {
		basename = filename[:dotIndex]
	}

	originalPath := filepath.Join(p.basePath, strings.TrimPrefix(imagePath, "/media/"))
	if err := os.Remove(originalPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove original image: %w", err)
	}

	targetDir := filepath.Dir(originalPath)
	for _, width := range config.MediaVariantWidths {
		variantPath := filepath.Join(targetDir, fmt.Sprintf("%s_%dpx.webp", basename, width))
		if err := os.Remove(variantPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove variant %s: %w", variantPath, err)
		}
	}

	return nil
}

// generateWebPVariants creates resized WebP copies for each configured width.
func (p *ImageProcessor) generateWebPVariants(originalPath, photoID, targetDir string) error {
	originalFile, err := os.Open(originalPath)
	if err != nil {
		return fmt.Errorf("failed to open original file: %w", err)
	}
	defer originalFile.Close()

	img, err := imaging.Decode(originalFile)
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	var written []string
	for _, width := range config.MediaVariantWidths {
		resized := imaging.Resize(img, width, 0, imaging.Lanczos)

		variantPath := filepath.Join(targetDir, fmt.Sprintf("%s_%dpx.webp", photoID, width))
		if err := webp.Save(variantPath, resized, &webp.Options{Quality: 85}); err != nil {
			for _, path := range written {
				os.Remove(path)
			}
			return fmt.Errorf("failed to save WebP variant: %w", err)
		}
		written = append(written, variantPath)
	}

	return nil
}

// extractExtension auto-detects the file extension from the data URI MIME type.
// Only the formats the wizard accepts are recognized.
func extractExtension(data string) string {
	switch {
	case strings.Contains(data, "data:image/png"):
		return "png"
	case strings.Contains(data, "data:image/jpeg"), strings.Contains(data, "data:image/jpg"):
		return "jpg"
	case strings.Contains(data, "data:image/webp"):
		return "webp"
	}
	return ""
}
