package openfoodfacts_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rebaixa-api/internal/infrastructure/openfoodfacts"
	"github.com/jhoicas/rebaixa-api/pkg/config"
)

func newTestClient(serverURL string) *openfoodfacts.Client {
	return openfoodfacts.NewClient(config.LookupConfig{BaseURL: serverURL, TimeoutSeconds: 2})
}

func TestLookupBarcode_PrefiereNombreEnPortugues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/product/7891000100103.json", r.URL.Path)
		w.Write([]byte(`{"status":1,"product":{"product_name_pt":"Leite Integral","product_name":"Whole Milk"}}`))
	}))
	defer srv.Close()

	name, found, err := newTestClient(srv.URL).LookupBarcode(context.Background(), "7891000100103")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Leite Integral", name)
}

func TestLookupBarcode_FallbackAlNombreGenerico(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"status":1,"product":{"product_name":"Whole Milk"}}`))
	}))
	defer srv.Close()

	name, found, err := newTestClient(srv.URL).LookupBarcode(context.Background(), "7891000100103")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Whole Milk", name)
}

func TestLookupBarcode_BarcodeDesconocido(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"status cero", func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"status":0,"status_verbose":"product not found"}`))
		}},
		{"HTTP 404", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}},
		{"sin nombre", func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"status":1,"product":{}}`))
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			_, found, err := newTestClient(srv.URL).LookupBarcode(context.Background(), "000")
			require.NoError(t, err, "desconocido no es un error, es found=false")
			assert.False(t, found)
		})
	}
}

func TestLookupBarcode_ErrorDelServidor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, found, err := newTestClient(srv.URL).LookupBarcode(context.Background(), "000")
	assert.Error(t, err)
	assert.False(t, found)
}

func TestLookupBarcode_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{"status":1,"product":{"product_name":"tarde"}}`))
	}))
	defer srv.Close()

	client := openfoodfacts.NewClient(config.LookupConfig{BaseURL: srv.URL, TimeoutSeconds: 2})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, found, err := client.LookupBarcode(ctx, "000")
	assert.Error(t, err, "el timeout sube como error; el caso de uso lo degrada")
	assert.False(t, found)
}
