package orders

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"mavrix/currency"
	"mavrix/errs"
	"mavrix/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

var hmacSecret = func() string {
	if s := os.Getenv("INVOICE_HMAC_SECRET"); s != "" {
		return s
	}
	return "invoice_secret"
}()

// DownloadInvoice renders the order as a PDF invoice with a signed QR
// payload so a scanned invoice can be verified against the order record.
func DownloadInvoice(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	order, err := loadOwned(ctx, r, ps.ByName("ordernumber"), userID)
	if err != nil {
		utils.RespondWithError(w, errs.Status(err), "Order not found")
		return
	}

	// Signed QR payload: orderNumber|userId|signature
	payload := fmt.Sprintf("%s|%s", order.OrderNumber, order.UserID)
	h := hmac.New(sha256.New, []byte(hmacSecret))
	h.Write([]byte(payload))
	signature := base64.StdEncoding.EncodeToString(h.Sum(nil))

	qrPNG, err := qrcode.Encode(payload+"|"+signature, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Mavrix Invoice")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Order: %s", order.OrderNumber))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Placed: %s", order.CreatedAt.Format("2006-01-02 15:04")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", order.Status))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Ship to: %s, %s", order.Shipping.FullName, TrackingLocation(order.Shipping)))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(90, 8, "Item")
	pdf.Cell(30, 8, "Qty")
	pdf.Cell(40, 8, "Price")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 11)
	for _, it := range order.Items {
		pdf.Cell(90, 7, fmt.Sprintf("%s - %s", it.Brand, it.Name))
		pdf.Cell(30, 7, fmt.Sprintf("%d", it.Quantity))
		pdf.Cell(40, 7, fmt.Sprintf("%s %.2f", currency.BaseCode, it.Price*float64(it.Quantity)))
		pdf.Ln(7)
	}
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Subtotal: %s %.2f", currency.BaseCode, order.Totals.Subtotal))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Shipping: %s %.2f", currency.BaseCode, order.Totals.Shipping))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Tax: %s %.2f", currency.BaseCode, order.Totals.Tax))
	pdf.Ln(7)
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %s %.2f", currency.BaseCode, order.Totals.Total))
	pdf.Ln(12)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("invoice-qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("invoice-qr", 10, pdf.GetY(), 40, 40, false, imageOpts, 0, "")

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", order.OrderNumber))
	if err := pdf.Output(w); err != nil {
		log.Println("DownloadInvoice PDF output error:", err)
	}
}
