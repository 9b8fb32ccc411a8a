package usecase

import (
	"context"

	"github.com/jhoicas/rebaixa-api/internal/application/dto"
	"github.com/jhoicas/rebaixa-api/internal/domain/repository"
)

// ExternalLookupService puerto hacia la base externa de productos (Open Food
// Facts). found=false y err=nil significa "barcode desconocido"; err se
// reserva para fallos de red/protocolo, que el caso de uso degrada.
type ExternalLookupService interface {
	LookupBarcode(ctx context.Context, barcode string) (name string, found bool, err error)
}

// CatalogUseCase consulta de barcode: primero el catálogo interno (memoizado
// en cada registro de producto), después la fuente externa. Ningún fallo de la
// fuente externa sube al llamador: degrada a "no encontrado".
type CatalogUseCase struct {
	catalog  repository.CatalogRepository
	external ExternalLookupService
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(catalog repository.CatalogRepository, external ExternalLookupService) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog, external: external}
}

// Lookup resuelve un código de barras. El "no encontrado" total es un
// resultado normal con Found=false, nunca un error.
func (uc *CatalogUseCase) Lookup(ctx context.Context, barcode string) (*dto.LookupResponse, error) {
	entry, err := uc.catalog.GetByBarcode(barcode)
	if err != nil {
		return nil, err
	}
	if entry != nil {
		plu := entry.PLU
		if plu == "" {
			plu = barcode
		}
		return &dto.LookupResponse{
			Found:  true,
			Name:   entry.Name,
			PLU:    plu,
			Source: dto.LookupSourceInternal,
		}, nil
	}

	name, found, err := uc.external.LookupBarcode(ctx, barcode)
	if err != nil {
		// Degradación: timeout o fallo del servicio externo no es un error
		// para quien registra productos.
		return &dto.LookupResponse{Found: false, Message: "Erro de conexão com a API."}, nil
	}
	if !found {
		return &dto.LookupResponse{Found: false, Message: "Produto não encontrado."}, nil
	}
	return &dto.LookupResponse{
		Found:  true,
		Name:   name,
		PLU:    barcode,
		Source: dto.LookupSourceExternal,
	}, nil
}
