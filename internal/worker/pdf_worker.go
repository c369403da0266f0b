package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Joecr98/sistema-precios-menus/internal/infra"
	"github.com/Joecr98/sistema-precios-menus/internal/repository"

	"github.com/rs/zerolog/log"
)

// FacturaPDFJobPayload is the job envelope sent to QueueFacturaPDF.
type FacturaPDFJobPayload struct {
	FacturaID uint `json:"factura_id"`
}

// FacturaPDFWorker renders the printable PDF for a stored factura and
// records its path. When the client has an email on file, it chains an
// email job with the PDF attached.
type FacturaPDFWorker struct {
	facturas       repository.FacturaRepository
	dispatcher     *Dispatcher
	pdfStoragePath string
}

func NewFacturaPDFWorker(facturas repository.FacturaRepository, dispatcher *Dispatcher, pdfStoragePath string) *FacturaPDFWorker {
	return &FacturaPDFWorker{
		facturas:       facturas,
		dispatcher:     dispatcher,
		pdfStoragePath: pdfStoragePath,
	}
}

func (w *FacturaPDFWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload FacturaPDFJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		// Unparseable payload: retrying won't help, log and drop.
		log.Error().Err(err).Msg("pdf_worker: invalid payload")
		return nil
	}

	factura, err := w.facturas.ObtenerPorID(ctx, payload.FacturaID)
	if err != nil {
		return fmt.Errorf("pdf_worker: factura %d: %w", payload.FacturaID, err)
	}

	pdfPath, err := infra.GenerateFacturaPDF(factura, w.pdfStoragePath)
	if err != nil {
		return fmt.Errorf("pdf_worker: render factura %d: %w", payload.FacturaID, err)
	}

	if err := w.facturas.ActualizarPDFPath(ctx, factura.ID, pdfPath); err != nil {
		return fmt.Errorf("pdf_worker: store pdf path for factura %d: %w", payload.FacturaID, err)
	}
	log.Info().Uint("factura_id", factura.ID).Str("pdf", pdfPath).Msg("pdf_worker: PDF generated")

	if factura.Cliente != nil && factura.Cliente.Correo != nil && *factura.Cliente.Correo != "" {
		emailJob := EmailJobPayload{
			ToEmail: *factura.Cliente.Correo,
			Subject: fmt.Sprintf("Factura #%d — %s", factura.ID, factura.Cliente.Nombre),
			Body:    fmt.Sprintf("Adjuntamos la factura generada.\nTotal: $%s", factura.Total.StringFixed(2)),
			PDFPath: pdfPath,
		}
		if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
			log.Warn().Err(err).Str("email", *factura.Cliente.Correo).Msg("pdf_worker: failed to enqueue email")
		}
	}
	return nil
}
