package cep

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"contratando_backend/internal/utils"
)

var (
	ErrCEPInvalido     = errors.New("cep inválido")
	ErrCEPNaoEcontrado = errors.New("cep não encontrado")
)

// Endereco is the subset of the ViaCEP payload the intake form uses.
type Endereco struct {
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
}

type viaCEPResponse struct {
	Endereco
	Erro bool `json:"erro"`
}

// Client queries the public ViaCEP service.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(1)

	return &Client{http: http}
}

// Buscar resolves a CEP to an address. A CEP the service does not know
// yields ErrCEPNaoEcontrado; malformed input never reaches the network.
func (c *Client) Buscar(ctx context.Context, cep string) (*Endereco, error) {
	digits := utils.SomenteDigitos(cep)
	if len(digits) != 8 {
		return nil, ErrCEPInvalido
	}

	var payload viaCEPResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&payload).
		Get(fmt.Sprintf("/ws/%s/json/", digits))
	if err != nil {
		return nil, fmt.Errorf("viacep request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("viacep returned status %d", resp.StatusCode())
	}
	if payload.Erro {
		return nil, ErrCEPNaoEcontrado
	}

	return &payload.Endereco, nil
}
