package http

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/application"
	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/service"
)

// ReceiptHandler serves locally stored booking receipts.
type ReceiptHandler struct {
	receipts domain.ReceiptRepository
	archive  *service.ReceiptArchive
}

// NewReceiptHandler creates a new receipt handler. The archive may be nil
// when no bucket is configured.
func NewReceiptHandler(receipts domain.ReceiptRepository, archive *service.ReceiptArchive) *ReceiptHandler {
	return &ReceiptHandler{
		receipts: receipts,
		archive:  archive,
	}
}

// GetReceipt returns a receipt snapshot by ID.
func (h *ReceiptHandler) GetReceipt(c *fiber.Ctx) error {
	receipt, err := h.receipts.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "receipt not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "error retrieving receipt",
		})
	}

	return c.JSON(fiber.Map{
		"data": receipt,
	})
}

// GetBookingReceipt returns the receipt captured when the booking was
// committed.
func (h *ReceiptHandler) GetBookingReceipt(c *fiber.Ctx) error {
	receipt, err := h.receipts.GetByBookingID(c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "no receipt stored for this booking",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "error retrieving receipt",
		})
	}

	return c.JSON(fiber.Map{
		"data": receipt,
	})
}

// DownloadPDF renders a receipt as a PDF and returns it as an attachment.
func (h *ReceiptHandler) DownloadPDF(c *fiber.Ctx) error {
	receipt, err := h.receipts.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "receipt not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "error retrieving receipt",
		})
	}

	pdf, filename, err := application.BuildReceiptPDF(receipt)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "error generating receipt PDF",
		})
	}

	if h.archive != nil {
		if url, archiveErr := h.archive.ArchivePDF(c.Context(), receipt.ID, pdf); archiveErr != nil {
			log.Printf("warning: could not archive receipt %s: %v", receipt.ID, archiveErr)
		} else {
			c.Set("X-Receipt-Archive-URL", url)
		}
	}

	application.CountReceiptDownload()

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	return c.Send(pdf)
}
