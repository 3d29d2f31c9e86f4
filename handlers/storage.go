package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"nutribook/config"
	"nutribook/services/storage"
	"nutribook/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles medical report uploads. Reports are encrypted before
// they leave the server and only ever served through short-lived signed URLs.
type ReportHandler struct {
	StorageSvc    storage.StorageService
	EncryptionKey string
}

// NewReportHandler creates a ReportHandler, fetching the encryption key from
// configuration.
func NewReportHandler(svc storage.StorageService) *ReportHandler {
	return &ReportHandler{
		StorageSvc:    svc,
		EncryptionKey: config.AppConfig.CloudinaryReportKey,
	}
}

// UploadReportHandler accepts a multipart report file for the authenticated
// patient and returns its permanent identifier plus a signed download URL.
func (h *ReportHandler) UploadReportHandler(c *gin.Context) {
	patientID := c.GetString("patientID")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file not provided", err.Error())
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save file", err.Error())
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadReportFile(c, tempFilePath, patientID, h.EncryptionKey)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to upload report", err.Error())
		return
	}

	downloadURL, err := h.StorageSvc.GetSecureDownloadURL(c, "raw", publicID, 15*time.Minute)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate download URL", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reportId":    publicID,
		"downloadURL": downloadURL,
	})
}
