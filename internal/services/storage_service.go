// internal/services/storage_service.go
package services

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/shop-admin/internal/config"
)

var (
	ErrFileTooLarge   = errors.New("file too large")
	ErrFileType       = errors.New("file type not allowed")
	ErrInvalidImage   = errors.New("invalid image file")
	ErrUnknownKind    = errors.New("unknown upload kind")
	ErrStorageBackend = errors.New("storage backend failure")
)

// Upload kinds accepted by the uploads endpoint.
const (
	UploadKindLogos  = "logos"
	UploadKindImages = "images"
)

type StorageService struct {
	s3Client s3iface.S3API
	aws      config.AWSConfig
	storage  config.StorageConfig
}

type UploadResult struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType"`
}

type UploadOptions struct {
	Folder       string
	MaxSize      int64 // in bytes
	AllowedTypes []string
	IsPublic     bool
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	if cfg.AWS.AccessKeyID == "" {
		// Local disk storage when S3 is not configured
		return &StorageService{aws: cfg.AWS, storage: cfg.Storage}, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWS.AccessKeyID,
			cfg.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return NewStorageServiceWithClient(s3.New(sess), cfg), nil
}

// NewStorageServiceWithClient uses the given S3 client instead of building one.
func NewStorageServiceWithClient(client s3iface.S3API, cfg *config.Config) *StorageService {
	return &StorageService{
		s3Client: client,
		aws:      cfg.AWS,
		storage:  cfg.Storage,
	}
}

func (s *StorageService) UsesS3() bool {
	return s.s3Client != nil
}

func (s *StorageService) UploadFile(file multipart.File, header *multipart.FileHeader, options UploadOptions) (*UploadResult, error) {
	if options.MaxSize > 0 && header.Size > options.MaxSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d bytes", ErrFileTooLarge, header.Size, options.MaxSize)
	}

	if len(options.AllowedTypes) > 0 {
		fileExt := strings.ToLower(filepath.Ext(header.Filename))
		allowed := false
		for _, allowedType := range options.AllowedTypes {
			if fileExt == allowedType {
				allowed = true
				break
			}
		}
		if !allowed {
			return nil, fmt.Errorf("%w: %q", ErrFileType, fileExt)
		}
	}

	filename := s.generateFileName(header.Filename, options.Folder)

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	contentType := header.Header.Get("Content-Type")
	if s.s3Client != nil {
		return s.uploadToS3(fileBytes, filename, contentType, options.IsPublic)
	}

	return s.uploadToLocal(fileBytes, filename, contentType)
}

func (s *StorageService) uploadToS3(fileBytes []byte, key, contentType string, isPublic bool) (*UploadResult, error) {
	params := &s3.PutObjectInput{
		Bucket:        aws.String(s.aws.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(fileBytes),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(fileBytes))),
	}

	if isPublic {
		params.ACL = aws.String("public-read")
	}

	if _, err := s.s3Client.PutObject(params); err != nil {
		return nil, fmt.Errorf("%w: failed to upload to S3: %v", ErrStorageBackend, err)
	}

	return &UploadResult{
		URL:      s.getS3URL(key),
		Key:      key,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}, nil
}

func (s *StorageService) uploadToLocal(fileBytes []byte, key, contentType string) (*UploadResult, error) {
	path := filepath.Join(s.storage.UploadsDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: failed to create upload directory: %v", ErrStorageBackend, err)
	}
	if err := os.WriteFile(path, fileBytes, 0o644); err != nil {
		return nil, fmt.Errorf("%w: failed to write upload: %v", ErrStorageBackend, err)
	}

	return &UploadResult{
		URL:      fmt.Sprintf("%s/uploads/%s", strings.TrimRight(s.storage.PublicBaseURL, "/"), key),
		Key:      key,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}, nil
}

func (s *StorageService) DeleteFile(key string) error {
	if s.s3Client == nil {
		path := filepath.Join(s.storage.UploadsDir, filepath.FromSlash(key))
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete local file: %w", err)
		}
		logrus.WithField("key", key).Debug("Local upload deleted")
		return nil
	}

	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.aws.S3Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

// ReleaseURL deletes the upload behind a URL this service produced. Other
// URLs, such as seeded relative paths, are left alone.
func (s *StorageService) ReleaseURL(url string) error {
	key, ok := s.keyForURL(url)
	if !ok {
		return nil
	}
	return s.DeleteFile(key)
}

func (s *StorageService) keyForURL(url string) (string, bool) {
	prefix := strings.TrimRight(s.storage.PublicBaseURL, "/") + "/uploads/"
	if s.s3Client != nil {
		prefix = s.getS3URL("")
	}

	key := strings.TrimPrefix(url, prefix)
	if key == url || key == "" || strings.Contains(key, "..") {
		return "", false
	}
	return key, true
}

// releaseReplaced removes old once an update has replaced it with next.
// Failures are logged; the update itself already succeeded.
func releaseReplaced(uploads *StorageService, old string, next *string) {
	if uploads == nil || next == nil || *next == old || old == "" {
		return
	}
	if err := uploads.ReleaseURL(old); err != nil {
		logrus.WithError(err).WithField("url", old).Warn("Failed to remove replaced upload")
	}
}

func (s *StorageService) GetUploadOptions(kind string) (UploadOptions, error) {
	switch kind {
	case UploadKindLogos:
		return UploadOptions{
			Folder:       "logos",
			MaxSize:      2 * 1024 * 1024, // 2MB
			AllowedTypes: []string{".jpg", ".jpeg", ".png", ".gif"},
			IsPublic:     true,
		}, nil
	case UploadKindImages:
		return UploadOptions{
			Folder:       "products",
			MaxSize:      10 * 1024 * 1024, // 10MB
			AllowedTypes: []string{".jpg", ".jpeg", ".png", ".gif"},
			IsPublic:     true,
		}, nil
	default:
		return UploadOptions{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func (s *StorageService) generateFileName(originalName, folder string) string {
	id := uuid.New()
	ext := strings.ToLower(filepath.Ext(originalName))

	timestamp := time.Now().Format("20060102")
	filename := fmt.Sprintf("%s_%s%s", timestamp, id.String()[:8], ext)

	if folder != "" {
		return fmt.Sprintf("%s/%s", folder, filename)
	}

	return filename
}

func (s *StorageService) getS3URL(key string) string {
	if s.aws.CloudFrontURL != "" {
		return fmt.Sprintf("%s/%s", s.aws.CloudFrontURL, key)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		s.aws.S3Bucket, s.aws.Region, key)
}

// ValidateImage checks the file signature and rewinds the file.
func (s *StorageService) ValidateImage(file io.ReadSeeker) error {
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind file: %w", err)
	}

	if !isValidImageType(buffer[:n]) {
		return ErrInvalidImage
	}

	return nil
}

func isValidImageType(buffer []byte) bool {
	// JPEG
	if len(buffer) >= 3 && buffer[0] == 0xFF && buffer[1] == 0xD8 && buffer[2] == 0xFF {
		return true
	}

	// PNG
	if len(buffer) >= 8 && buffer[0] == 0x89 && buffer[1] == 0x50 && buffer[2] == 0x4E && buffer[3] == 0x47 {
		return true
	}

	// GIF
	if len(buffer) >= 6 && (string(buffer[0:6]) == "GIF87a" || string(buffer[0:6]) == "GIF89a") {
		return true
	}

	return false
}
