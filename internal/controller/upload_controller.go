package controller

import (
	"FileRelayAPI/internal/helper"
	"FileRelayAPI/internal/model"
	"FileRelayAPI/internal/service"
	"encoding/json"
	"log/slog"
	"net/http"
)

type UploadController struct {
	uploadService *service.UploadService
}

func NewUploadController(uploadService *service.UploadService) *UploadController {
	return &UploadController{
		uploadService: uploadService,
	}
}

// Upload godoc
// @Summary      Upload File
// @Description  Relay a file to permanent storage.
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "File to upload"
// @Success      200  {object}  model.UploadResponse
// @Failure      400  {object}  helper.ResponseError
// @Failure      413  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Router       /upload [post]
func (c *UploadController) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		slog.Warn("Error retrieving file", "error", err)
		helper.WriteError(w, helper.NewBadRequestError("No file provided"))
		return
	}
	defer file.Close()

	req := model.UploadFileRequest{
		File: header,
	}

	resp, err := c.uploadService.Upload(r.Context(), req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

// UploadTemp godoc
// @Summary      Upload Temporary File
// @Description  Relay a file to temporary storage with an expiration window.
// @Tags         upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "File to upload"
// @Param        time formData string false "Expiration window (1h, 12h, 24h, 72h)"
// @Success      200  {object}  model.UploadResponse
// @Failure      400  {object}  helper.ResponseError
// @Failure      413  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Router       /upload/temp [post]
func (c *UploadController) UploadTemp(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		slog.Warn("Error retrieving file", "error", err)
		helper.WriteError(w, helper.NewBadRequestError("No file provided"))
		return
	}
	defer file.Close()

	req := model.TempUploadRequest{
		File: header,
		Time: r.FormValue("time"),
	}

	resp, err := c.uploadService.UploadTemp(r.Context(), req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

// UploadFromURL godoc
// @Summary      Upload From URL
// @Description  Fetch a remote URL and relay it to permanent or temporary storage.
// @Tags         upload
// @Accept       json
// @Produce      json
// @Param        request body model.URLUploadRequest true "Source URL and options"
// @Success      200  {object}  model.UploadResponse
// @Failure      400  {object}  helper.ResponseError
// @Failure      413  {object}  helper.ResponseError
// @Failure      500  {object}  helper.ResponseError
// @Router       /upload/url [post]
func (c *UploadController) UploadFromURL(w http.ResponseWriter, r *http.Request) {
	var req model.URLUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("Invalid request body", "error", err)
		helper.WriteError(w, helper.NewBadRequestError(""))
		return
	}

	resp, err := c.uploadService.UploadFromURL(r.Context(), req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}
