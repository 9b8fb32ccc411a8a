package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/rebaixa-api/internal/application/usecase"
	"github.com/jhoicas/rebaixa-api/pkg/config"
)

// Verificar en tiempo de compilación que Client implementa ExternalLookupService.
var _ usecase.ExternalLookupService = (*Client)(nil)

// Client adaptador del puerto ExternalLookupService contra la API pública de
// Open Food Facts. Usa net/http de la librería estándar; no requiere SDK.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el adaptador. El timeout acota la llamada completa;
// el caso de uso degrada cualquier error a "no encontrado".
func NewClient(cfg config.LookupConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

// productResponse estructura mínima de la respuesta de Open Food Facts.
// status == 1 indica que el barcode existe en la base.
type productResponse struct {
	Status  int `json:"status"`
	Product struct {
		ProductNamePT string `json:"product_name_pt"`
		ProductName   string `json:"product_name"`
	} `json:"product"`
}

// LookupBarcode consulta un código de barras. Prefiere el nombre en portugués
// y cae al nombre genérico si no existe.
func (c *Client) LookupBarcode(ctx context.Context, barcode string) (string, bool, error) {
	url := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL, barcode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false, fmt.Errorf("lookup: crear HTTP request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", false, fmt.Errorf("lookup: timeout o cancelación: %w", ctx.Err())
		}
		return "", false, fmt.Errorf("lookup: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	// Open Food Facts responde 404 para barcodes desconocidos.
	if resp.StatusCode == http.StatusNotFound {
		return "", false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("lookup: HTTP %d", resp.StatusCode)
	}

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return "", false, fmt.Errorf("lookup: leer respuesta: %w", err)
	}

	var payload productResponse
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return "", false, fmt.Errorf("lookup: deserializar respuesta: %w", err)
	}
	if payload.Status != 1 {
		return "", false, nil
	}

	name := payload.Product.ProductNamePT
	if name == "" {
		name = payload.Product.ProductName
	}
	if name == "" {
		return "", false, nil
	}
	return name, true, nil
}
