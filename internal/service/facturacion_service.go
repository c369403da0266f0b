package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Joecr98/sistema-precios-menus/internal/dto"
	"github.com/Joecr98/sistema-precios-menus/internal/model"
	"github.com/Joecr98/sistema-precios-menus/internal/repository"
	"github.com/Joecr98/sistema-precios-menus/internal/worker"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FacturacionService interface {
	GenerarFactura(ctx context.Context, req dto.GenerarFacturaRequest) (*dto.FacturaSummary, error)
	ObtenerFactura(ctx context.Context, id uint) (*dto.FacturaResponse, error)
	ListarPorCliente(ctx context.Context, clienteID uint) ([]dto.FacturaListItem, error)
	ObtenerPDFPath(ctx context.Context, id uint) (string, error)
}

type facturacionService struct {
	asignaciones repository.AsignacionRepository
	menus        repository.MenuRepository
	precios      repository.PrecioRepository
	facturas     repository.FacturaRepository
	clientes     repository.ClienteRepository
	dispatcher   *worker.Dispatcher
}

func NewFacturacionService(
	asignaciones repository.AsignacionRepository,
	menus repository.MenuRepository,
	precios repository.PrecioRepository,
	facturas repository.FacturaRepository,
	clientes repository.ClienteRepository,
	dispatcher *worker.Dispatcher,
) FacturacionService {
	return &facturacionService{
		asignaciones: asignaciones,
		menus:        menus,
		precios:      precios,
		facturas:     facturas,
		clientes:     clientes,
		dispatcher:   dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── GenerarFactura ────────────────────────────────────────────────────────────
// The billing core:
//   1. Validate cliente id and weekday set
//   2. Look up the client's (día → menú) assignments for the requested days
//   3. Expand each menu into its product lines
//   4. Resolve each product's current price; lineSubtotal = cantidad × precio
//   5. Split base vs extras per menu; menuTotal = base + extras
//   6. Grand total = Σ menuTotal
//   7. BEGIN TX: persist factura header + flattened snapshot lines; COMMIT
//   8. (async) enqueue PDF rendering job
//
// Deliberately NOT idempotent: each call creates a new factura. Two calls
// with identical arguments produce two invoices — it is a creation action,
// not a query.

func (s *facturacionService) GenerarFactura(ctx context.Context, req dto.GenerarFacturaRequest) (*dto.FacturaSummary, error) {
	// 1. Validation — no side effects on failure.
	if req.ClienteID == 0 || len(req.Dias) == 0 {
		return nil, ErrDatosInvalidos
	}
	dias := make([]string, 0, len(req.Dias))
	visto := make(map[string]bool, len(req.Dias))
	for _, d := range req.Dias {
		if !model.DiaSemanaValido(d) {
			return nil, fmt.Errorf("%w: día desconocido %q", ErrDatosInvalidos, d)
		}
		if !visto[d] {
			visto[d] = true
			dias = append(dias, d)
		}
	}
	clienteID := uint(req.ClienteID)

	// 2. Assignment lookup. Days without a configured menu are simply
	// absent; nothing at all to bill is a distinct user-facing condition.
	asignaciones, err := s.asignaciones.ListarPorClienteYDias(ctx, clienteID, dias)
	if err != nil {
		return nil, fmt.Errorf("consultando asignaciones: %w", err)
	}
	if len(asignaciones) == 0 {
		return nil, ErrSinMenusConfigurados
	}

	cliente, err := s.clientes.ObtenerPorID(ctx, clienteID)
	if err != nil {
		return nil, fmt.Errorf("cliente %d no encontrado: %w", clienteID, err)
	}

	// Deterministic calendar order regardless of storage order.
	sort.SliceStable(asignaciones, func(i, j int) bool {
		return ordenDia(asignaciones[i].DiaSemana) < ordenDia(asignaciones[j].DiaSemana)
	})

	// 3–6. Expand menus, resolve prices, aggregate. All reads happen before
	// the write transaction; the aggregation itself is pure arithmetic.
	details := make([]dto.DetalleDiaFactura, 0, len(asignaciones))
	var lineas []model.DetalleFactura
	totalFactura := decimal.Zero

	for _, asig := range asignaciones {
		detallesMenu, err := s.menus.ObtenerDetalles(ctx, asig.MenuID)
		if err != nil {
			// The menu vanished between lookup and use — abort the whole
			// generation, nothing has been persisted yet.
			return nil, fmt.Errorf("menú %d no disponible: %w", asig.MenuID, err)
		}

		menuNombre := ""
		if asig.Menu != nil {
			menuNombre = asig.Menu.Nombre
		}

		subtotal := decimal.Zero
		subtotalExtras := decimal.Zero
		lineasDia := make([]dto.LineaFactura, 0, len(detallesMenu))

		for _, detalle := range detallesMenu {
			precio, err := s.precios.ResolverPrecioActual(ctx, detalle.ProductoID)
			if err != nil {
				return nil, fmt.Errorf("resolviendo precio del producto %d: %w", detalle.ProductoID, err)
			}
			// Products without price history bill at zero — intentional,
			// mirrors the configured behavior of the original system.
			lineaSubtotal := precio.PrecioUnidad.Mul(decimal.NewFromInt(int64(detalle.Cantidad)))

			if detalle.EsExtra {
				subtotalExtras = subtotalExtras.Add(lineaSubtotal)
			} else {
				subtotal = subtotal.Add(lineaSubtotal)
			}

			descripcion := ""
			if detalle.Producto != nil {
				descripcion = detalle.Producto.Descripcion
			}
			lineasDia = append(lineasDia, dto.LineaFactura{
				Producto:       descripcion,
				Cantidad:       detalle.Cantidad,
				PrecioUnitario: precio.PrecioUnidad,
				Subtotal:       lineaSubtotal,
				EsExtra:        detalle.EsExtra,
			})

			// Snapshot line for persistence — flattened across all days.
			lineas = append(lineas, model.DetalleFactura{
				ProductoID:     detalle.ProductoID,
				Cantidad:       detalle.Cantidad,
				PrecioUnitario: precio.PrecioUnidad,
				Subtotal:       lineaSubtotal,
			})
		}

		totalMenu := subtotal.Add(subtotalExtras)
		totalFactura = totalFactura.Add(totalMenu)

		details = append(details, dto.DetalleDiaFactura{
			Day:            asig.DiaSemana,
			MenuName:       menuNombre,
			MenuID:         asig.MenuID,
			Detalles:       lineasDia,
			Subtotal:       subtotal,
			SubtotalExtras: subtotalExtras,
			Total:          totalMenu,
		})
	}

	// 7. Atomic persistence: header + lines commit as one unit, or nothing.
	ahora := time.Now()
	factura := model.Factura{
		ClienteID:       clienteID,
		FechaGeneracion: ahora,
		Total:           totalFactura,
		Detalles:        lineas,
	}
	txErr := runTx(ctx, s.facturas.DB(), func(tx *gorm.DB) error {
		return s.facturas.Crear(ctx, tx, &factura)
	})
	if txErr != nil {
		return nil, fmt.Errorf("persistiendo factura: %w", txErr)
	}

	// 8. Async PDF — best effort, never blocks nor fails the response.
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueFacturaPDF(ctx, worker.FacturaPDFJobPayload{FacturaID: factura.ID})
	}

	return &dto.FacturaSummary{
		FacturaID:       factura.ID,
		Cliente:         dto.ClienteRef{ID: cliente.ID, Nombre: cliente.Nombre},
		FechaGeneracion: ahora.Format(time.RFC3339),
		Details:         details,
		Total:           totalFactura,
	}, nil
}

// ── Readback ─────────────────────────────────────────────────────────────────

func (s *facturacionService) ObtenerFactura(ctx context.Context, id uint) (*dto.FacturaResponse, error) {
	f, err := s.facturas.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("factura no encontrada")
	}

	detalles := make([]dto.DetalleFacturaResponse, 0, len(f.Detalles))
	for _, d := range f.Detalles {
		descripcion := ""
		if d.Producto != nil {
			descripcion = d.Producto.Descripcion
		}
		detalles = append(detalles, dto.DetalleFacturaResponse{
			ProductoID:     d.ProductoID,
			Producto:       descripcion,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal,
		})
	}

	resp := &dto.FacturaResponse{
		ID:              f.ID,
		FechaGeneracion: f.FechaGeneracion.Format(time.RFC3339),
		Total:           f.Total,
		Detalles:        detalles,
	}
	if f.Cliente != nil {
		resp.Cliente = dto.ClienteRef{ID: f.Cliente.ID, Nombre: f.Cliente.Nombre}
	}
	if f.PDFPath != nil && *f.PDFPath != "" {
		u := fmt.Sprintf("/v1/facturas/%d/pdf", f.ID)
		resp.PDFUrl = &u
	}
	return resp, nil
}

func (s *facturacionService) ListarPorCliente(ctx context.Context, clienteID uint) ([]dto.FacturaListItem, error) {
	facturas, err := s.facturas.ListarPorCliente(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FacturaListItem, 0, len(facturas))
	for _, f := range facturas {
		item := dto.FacturaListItem{
			ID:              f.ID,
			ClienteID:       f.ClienteID,
			FechaGeneracion: f.FechaGeneracion.Format(time.RFC3339),
			Total:           f.Total,
		}
		if f.PDFPath != nil && *f.PDFPath != "" {
			u := fmt.Sprintf("/v1/facturas/%d/pdf", f.ID)
			item.PDFUrl = &u
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *facturacionService) ObtenerPDFPath(ctx context.Context, id uint) (string, error) {
	f, err := s.facturas.ObtenerPorID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("factura no encontrada")
	}
	if f.PDFPath == nil || *f.PDFPath == "" {
		return "", fmt.Errorf("PDF no disponible todavía para la factura %d", id)
	}
	return *f.PDFPath, nil
}

// ordenDia maps a weekday label to its calendar position.
func ordenDia(dia string) int {
	for i, d := range model.DiasSemana {
		if d == dia {
			return i
		}
	}
	return len(model.DiasSemana)
}
