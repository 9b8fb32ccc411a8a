package usecase

import (
	"context"

	"github.com/jhoicas/rebaixa-api/internal/application/dto"
	"github.com/jhoicas/rebaixa-api/internal/domain/entity"
)

// ReportPDFGenerator puerto hacia el render de PDF. Consume el contrato plano
// del reporte (título, subtítulo, filas ya formateadas y ordenadas).
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, report *dto.ReportResponse) ([]byte, error)
}

// ReportPDFUseCase arma el reporte con el motor de consultas y lo materializa
// como PDF.
type ReportPDFUseCase struct {
	reports   *ReportUseCase
	generator ReportPDFGenerator
}

// NewReportPDFUseCase construye el caso de uso.
func NewReportPDFUseCase(reports *ReportUseCase, generator ReportPDFGenerator) *ReportPDFUseCase {
	return &ReportPDFUseCase{reports: reports, generator: generator}
}

// Generate consulta y renderiza. Un reporte sin filas sigue siendo un PDF
// válido (el render imprime la línea de "sin registros").
func (uc *ReportPDFUseCase) Generate(ctx context.Context, actor entity.Actor, in dto.ReportRequest) ([]byte, error) {
	report, err := uc.reports.Query(ctx, actor, in)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateReportPDF(ctx, report)
}
