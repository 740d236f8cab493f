package service

import (
	"FileRelayAPI/internal/adapter"
	"FileRelayAPI/internal/config"
	"FileRelayAPI/internal/constant"
	"FileRelayAPI/internal/helper"
	"FileRelayAPI/internal/model"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type UploadService struct {
	cfg           *config.AppConfig
	validator     *validator.Validate
	catboxAdapter *adapter.CatboxAdapter
}

func NewUploadService(cfg *config.AppConfig, validator *validator.Validate, catboxAdapter *adapter.CatboxAdapter) *UploadService {
	return &UploadService{
		cfg:           cfg,
		validator:     validator,
		catboxAdapter: catboxAdapter,
	}
}

func (s *UploadService) Upload(ctx context.Context, req model.UploadFileRequest) (*model.UploadResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, validationError(err)
	}

	if err := s.checkSize(req.File.Size); err != nil {
		return nil, err
	}

	data, err := readMultipartFile(req.File)
	if err != nil {
		slog.Error("Failed to read uploaded file", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	relayID := uuid.New().String()
	slog.Info("Relaying file to permanent storage", "relay_id", relayID, "filename", req.File.Filename, "size", req.File.Size)

	hostedURL, err := s.catboxAdapter.Upload(ctx, req.File.Filename, data)
	if err != nil {
		slog.Error("Upload relay failed", "relay_id", relayID, "error", err)
		return nil, helper.NewInternalServerError(err.Error())
	}

	return &model.UploadResponse{
		Success:  true,
		URL:      hostedURL,
		Filename: req.File.Filename,
		SizeMB:   helper.SizeInMB(req.File.Size),
	}, nil
}

func (s *UploadService) UploadTemp(ctx context.Context, req model.TempUploadRequest) (*model.UploadResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, validationError(err)
	}

	expiration := req.Time
	if expiration == "" {
		expiration = string(constant.DefaultExpiration)
	}

	if err := s.checkSize(req.File.Size); err != nil {
		return nil, err
	}

	data, err := readMultipartFile(req.File)
	if err != nil {
		slog.Error("Failed to read uploaded file", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	relayID := uuid.New().String()
	slog.Info("Relaying file to temporary storage", "relay_id", relayID, "filename", req.File.Filename, "size", req.File.Size, "expiration", expiration)

	hostedURL, err := s.catboxAdapter.UploadTemp(ctx, req.File.Filename, data, expiration)
	if err != nil {
		slog.Error("Upload relay failed", "relay_id", relayID, "error", err)
		return nil, helper.NewInternalServerError(err.Error())
	}

	return &model.UploadResponse{
		Success:    true,
		URL:        hostedURL,
		Filename:   req.File.Filename,
		SizeMB:     helper.SizeInMB(req.File.Size),
		Expiration: expiration,
		Temporary:  true,
	}, nil
}

func (s *UploadService) UploadFromURL(ctx context.Context, req model.URLUploadRequest) (*model.UploadResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err)
		return nil, validationError(err)
	}

	expiration := req.Time
	if expiration == "" {
		expiration = string(constant.DefaultExpiration)
	}

	data, err := s.catboxAdapter.Fetch(ctx, req.URL)
	if err != nil {
		slog.Warn("Source fetch failed", "url", req.URL, "error", err)
		return nil, helper.NewBadRequestError(err.Error())
	}

	if err := s.checkSize(int64(len(data))); err != nil {
		return nil, err
	}

	filename := helper.FilenameFromURL(req.URL, constant.DefaultRemoteFilename)

	relayID := uuid.New().String()
	slog.Info("Relaying fetched file", "relay_id", relayID, "source_url", req.URL, "filename", filename, "size", len(data), "temporary", req.Temporary)

	var hostedURL string
	if req.Temporary {
		hostedURL, err = s.catboxAdapter.UploadTemp(ctx, filename, data, expiration)
	} else {
		hostedURL, err = s.catboxAdapter.Upload(ctx, filename, data)
	}
	if err != nil {
		slog.Error("Upload relay failed", "relay_id", relayID, "error", err)
		return nil, helper.NewInternalServerError(err.Error())
	}

	resp := &model.UploadResponse{
		Success:     true,
		URL:         hostedURL,
		Filename:    filename,
		SizeMB:      helper.SizeInMB(int64(len(data))),
		OriginalURL: req.URL,
	}
	if req.Temporary {
		resp.Expiration = expiration
		resp.Temporary = true
	}

	return resp, nil
}

// The ceiling is checked on the raw byte count before any upstream call; the
// rounded value is only used for reporting.
func (s *UploadService) checkSize(sizeBytes int64) error {
	if float64(sizeBytes)/(1024*1024) > float64(s.cfg.MaxUploadSizeMB) {
		return helper.NewPayloadTooLargeError(fmt.Sprintf("File too large: %.2f MB exceeds the %d MB limit", helper.SizeInMB(sizeBytes), s.cfg.MaxUploadSizeMB))
	}
	return nil
}

func readMultipartFile(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			switch fe.Tag() {
			case "expiration":
				options := make([]string, 0, len(constant.Expirations))
				for _, e := range constant.Expirations {
					options = append(options, string(e))
				}
				return helper.NewBadRequestError(fmt.Sprintf("Invalid time value, valid options: %s", strings.Join(options, ", ")))
			case "required":
				if fe.Field() == "File" {
					return helper.NewBadRequestError("No file provided")
				}
				return helper.NewBadRequestError(fmt.Sprintf("%s is required", fe.Field()))
			case "url":
				return helper.NewBadRequestError("Invalid URL")
			}
		}
	}
	return helper.NewBadRequestError("")
}
