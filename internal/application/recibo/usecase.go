// Package recibo genera la representación en PDF de una venta (recibo o
// cuenta de cobro según el tipo de pago).
package recibo

import (
	"context"
	"fmt"

	"github.com/jdvaldes/acopio-api/internal/domain"
	"github.com/jdvaldes/acopio-api/internal/domain/entity"
	"github.com/jdvaldes/acopio-api/internal/domain/repository"
	ventadom "github.com/jdvaldes/acopio-api/internal/domain/venta"
	"github.com/shopspring/decimal"
)

// LineaRecibo línea de venta enriquecida con el nombre de la presentación.
type LineaRecibo struct {
	entity.VentaDetalle
	NombrePresentacion string
}

// DatosRecibo todo lo necesario para renderizar el recibo.
type DatosRecibo struct {
	Venta   *entity.Venta
	Cliente *entity.Cliente
	Almacen *entity.Almacen
	Lineas  []LineaRecibo
	Pagado  decimal.Decimal
	Saldo   decimal.Decimal
}

// ReciboPDFGenerator renderiza el recibo a bytes PDF.
type ReciboPDFGenerator interface {
	GenerateReciboPDF(ctx context.Context, datos *DatosRecibo) ([]byte, error)
}

// UseCase arma los datos del recibo y delega el render al generador.
type UseCase struct {
	ventaRepo        repository.VentaRepository
	clienteRepo      repository.ClienteRepository
	almacenRepo      repository.AlmacenRepository
	presentacionRepo repository.PresentacionRepository
	pagoRepo         repository.PagoRepository
	generator        ReciboPDFGenerator
}

// NewUseCase construye el caso de uso inyectando todas sus dependencias.
func NewUseCase(
	ventaRepo repository.VentaRepository,
	clienteRepo repository.ClienteRepository,
	almacenRepo repository.AlmacenRepository,
	presentacionRepo repository.PresentacionRepository,
	pagoRepo repository.PagoRepository,
	generator ReciboPDFGenerator,
) *UseCase {
	return &UseCase{
		ventaRepo:        ventaRepo,
		clienteRepo:      clienteRepo,
		almacenRepo:      almacenRepo,
		presentacionRepo: presentacionRepo,
		pagoRepo:         pagoRepo,
		generator:        generator,
	}
}

// DownloadReciboPDF carga venta, cliente, almacén, líneas y pagos, y genera el
// recibo. Devuelve (bytes, filename, err).
func (uc *UseCase) DownloadReciboPDF(ctx context.Context, ventaID string) ([]byte, string, error) {
	venta, err := uc.ventaRepo.GetByID(ventaID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener venta: %w", err)
	}
	if venta == nil {
		return nil, "", fmt.Errorf("venta %s: %w", ventaID, domain.ErrNotFound)
	}

	cliente, err := uc.clienteRepo.GetByID(venta.ClienteID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener cliente: %w", err)
	}
	if cliente == nil {
		return nil, "", fmt.Errorf("cliente %s: %w", venta.ClienteID, domain.ErrNotFound)
	}
	almacen, err := uc.almacenRepo.GetByID(venta.AlmacenID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener almacén: %w", err)
	}
	if almacen == nil {
		return nil, "", fmt.Errorf("almacén %s: %w", venta.AlmacenID, domain.ErrNotFound)
	}

	lineas := make([]LineaRecibo, 0, len(venta.Detalles))
	for _, d := range venta.Detalles {
		nombre := "Presentación " + d.PresentacionID // fallback
		if pres, pErr := uc.presentacionRepo.GetByID(d.PresentacionID); pErr == nil && pres != nil {
			nombre = pres.Nombre
		}
		lineas = append(lineas, LineaRecibo{VentaDetalle: d, NombrePresentacion: nombre})
	}

	pagos, err := uc.pagoRepo.ListByVenta(ventaID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener pagos: %w", err)
	}
	pagado := ventadom.SumarPagos(pagos)

	datos := &DatosRecibo{
		Venta:   venta,
		Cliente: cliente,
		Almacen: almacen,
		Lineas:  lineas,
		Pagado:  pagado,
		Saldo:   ventadom.SaldoPendiente(venta.Total, pagado),
	}
	pdfBytes, err := uc.generator.GenerateReciboPDF(ctx, datos)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generación fallida: %w", err)
	}
	filename := fmt.Sprintf("recibo_%s.pdf", venta.ID)
	return pdfBytes, filename, nil
}
