package handler

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/PraharshPatni13/brokerage-filler/dto"
	"github.com/PraharshPatni13/brokerage-filler/service"
)

type BrokerageHandler struct {
	extractService *service.ExtractService
	fillService    *service.FillService
	outputFolder   string
}

func NewBrokerageHandler(extractService *service.ExtractService, fillService *service.FillService, outputFolder string) *BrokerageHandler {
	return &BrokerageHandler{
		extractService: extractService,
		fillService:    fillService,
		outputFolder:   outputFolder,
	}
}

// FillBrokerage handles the POST /brokerage/fill endpoint
func (h *BrokerageHandler) FillBrokerage(c *gin.Context) {
	log.Println("Received brokerage fill request")

	pdfHeader, err := c.FormFile("pdf")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, dto.ErrMissingFiles.Error(), nil)
		return
	}
	excelHeader, err := c.FormFile("excel")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, dto.ErrMissingFiles.Error(), nil)
		return
	}

	request := &dto.FillRequest{PDF: pdfHeader, Excel: excelHeader}
	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	pdfData, err := readUpload(pdfHeader)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to read PDF upload", err)
		return
	}
	excelData, err := readUpload(excelHeader)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to read Excel upload", err)
		return
	}

	registry := h.extractService.ExtractSchemeData(pdfData)
	log.Printf("Extracted trail rates for %d schemes", len(registry))

	output, err := h.fillService.Fill(excelData, excelHeader.Filename, registry)
	if err != nil {
		status := http.StatusInternalServerError
		if isInputError(err) {
			status = http.StatusBadRequest
		}
		h.sendError(c, status, "Failed to fill brokerage spreadsheet", err)
		return
	}

	outputPath := filepath.Join(h.outputFolder, uuid.NewString()+".xlsx")
	if err := os.WriteFile(outputPath, output, 0o644); err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to store output file", err)
		return
	}
	defer os.Remove(outputPath)

	log.Println("Brokerage fill completed successfully")
	c.FileAttachment(outputPath, "filled_brokerage.xlsx")
}

func isInputError(err error) bool {
	return errors.Is(err, dto.ErrEmptySpreadsheet) ||
		errors.Is(err, dto.ErrMissingColumns) ||
		errors.Is(err, dto.ErrUnreadableExcel)
}

func readUpload(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// sendError sends a structured error response
func (h *BrokerageHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "FILL_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
