package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contratando_backend/internal/models"
	"contratando_backend/test/helpers"
)

// CPFs with valid check digits, used across the intake tests.
const (
	cpfTitular    = "52998224725"
	cpfDependente = "11144477735"
)

func nascimentoComIdade(anos int) string {
	return time.Now().AddDate(-anos, -1, 0).Format("2006-01-02")
}

type propostaEnvelope struct {
	Proposta     models.Proposta `json:"proposta"`
	EmailEnviado bool            `json:"email_validacao_enviado"`
}

func intakePayload(tabelaID, produtoID string) map[string]interface{} {
	payload := map[string]interface{}{
		"nome":            "Maria da Silva",
		"cpf":             cpfTitular,
		"data_nascimento": nascimentoComIdade(30),
		"email":           "Maria.Silva@cliente.com",
		"telefone":        "(11) 98765-4321",
		"cep":             "01310-100",
		"cidade":          "São Paulo",
		"estado":          "sp",
		"dependentes": []map[string]interface{}{
			{
				"nome":            "João da Silva",
				"cpf":             cpfDependente,
				"data_nascimento": nascimentoComIdade(5),
				"parentesco":      "filho",
			},
		},
	}
	if tabelaID != "" {
		payload["tabela_id"] = tabelaID
	}
	if produtoID != "" {
		payload["produto_id"] = produtoID
	}
	return payload
}

func TestCreatePropostaPricesByAgeBracket(t *testing.T) {
	ts := GetTestServer(t)

	tabela := helpers.CreateTabelaComFaixas(t, ts.DB, fmt.Sprintf("Tabela Faixas %d", time.Now().UnixNano()),
		map[string]float64{"0-17": 100, "18-59": 200, "60+": 300},
		[]string{"0-17", "18-59", "60+"})
	produto := helpers.CreateProdutoComTabela(t, ts.DB, "Plano Essencial", tabela.ID)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/propostas", "", intakePayload("", produto.ID))
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var resp propostaEnvelope
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	proposta := resp.Proposta
	assert.Equal(t, models.StatusParcial, proposta.Status)
	assert.Equal(t, 30, proposta.Idade)
	assert.Equal(t, 300.0, proposta.ValorMensal)
	assert.Equal(t, cpfTitular, proposta.CPF)
	assert.Equal(t, "maria.silva@cliente.com", proposta.Email)
	assert.Equal(t, "11987654321", proposta.Telefone)
	assert.Equal(t, "SP", proposta.Estado)

	dependentes := proposta.Dependentes.Data()
	require.Len(t, dependentes, 1)
	assert.Equal(t, 5, dependentes[0].Idade)
	assert.Equal(t, 100.0, dependentes[0].ValorIndividual)

	assert.True(t, resp.EmailEnviado)
	assert.True(t, proposta.EmailValidacaoEnviado)
}

func TestCreatePropostaFallsBackToInformedValor(t *testing.T) {
	ts := GetTestServer(t)

	payload := intakePayload("", "")
	payload["dependentes"] = []map[string]interface{}{}
	payload["valor_mensal"] = "R$ 1.234,56"

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/propostas", "", payload)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var resp propostaEnvelope
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, 1234.56, resp.Proposta.ValorMensal)
}

func TestCreatePropostaRejectsInvalidCPF(t *testing.T) {
	ts := GetTestServer(t)

	payload := intakePayload("", "")
	payload["cpf"] = "11111111111"

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/propostas", "", payload)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestCreatePropostaIgnoresStatusFromBroker(t *testing.T) {
	ts := GetTestServer(t)

	payload := intakePayload("", "")
	payload["dependentes"] = []map[string]interface{}{}
	payload["valor_mensal"] = "R$ 100,00"
	payload["status"] = "cadastrado"

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/propostas", "", payload)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var resp propostaEnvelope
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, models.StatusParcial, resp.Proposta.Status)
}

func TestCreatePropostaMultipartWithDocument(t *testing.T) {
	ts := GetTestServer(t)

	payload := intakePayload("", "")
	payload["dependentes"] = []map[string]interface{}{}
	payload["valor_mensal"] = "R$ 200,00"
	payloadJSON, err := json.Marshal(payload)
	require.NoError(t, err)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("proposta", string(payloadJSON)))

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="documento_rg"; filename="rg.png"`)
	header.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = io.Copy(part, bytes.NewReader([]byte("conteudo-de-teste")))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+"/api/v1/propostas", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	bodyBytes, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	require.Equal(t, http.StatusCreated, res.StatusCode, string(bodyBytes))

	var resp propostaEnvelope
	require.NoError(t, json.Unmarshal(bodyBytes, &resp))

	urls := resp.Proposta.DocumentosURLs.Data()
	require.Contains(t, urls, "rg")
	assert.Contains(t, urls["rg"], resp.Proposta.ID+"_rg_")
}

func TestCompletarCadastro(t *testing.T) {
	ts := GetTestServer(t)

	masterToken, _ := helpers.CreateAndLoginMaster(t, ts, ts.DB)

	payload := intakePayload("", "")
	payload["dependentes"] = []map[string]interface{}{}
	payload["valor_mensal"] = "R$ 350,00"
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/propostas", "", payload)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created propostaEnvelope
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	require.Equal(t, models.StatusParcial, created.Proposta.Status)

	res, body = ts.SendRequest(t, http.MethodPatch, "/api/v1/admin/propostas/"+created.Proposta.ID+"/cadastro", masterToken, map[string]interface{}{
		"administradora":  "Qualicorp",
		"data_vencimento": "10",
		"data_vigencia":   "2026-10-01",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var completed models.Proposta
	require.NoError(t, json.Unmarshal([]byte(body), &completed))
	assert.Equal(t, models.StatusCadastrado, completed.Status)
	assert.Equal(t, "Qualicorp", completed.Administradora)
	assert.True(t, completed.CadastroCompleto())
}

func TestCompletarCadastroMissingFields(t *testing.T) {
	ts := GetTestServer(t)

	masterToken, _ := helpers.CreateAndLoginMaster(t, ts, ts.DB)

	payload := intakePayload("", "")
	payload["dependentes"] = []map[string]interface{}{}
	payload["valor_mensal"] = "R$ 99,90"
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/propostas", "", payload)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created propostaEnvelope
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	res, _ = ts.SendRequest(t, http.MethodPatch, "/api/v1/admin/propostas/"+created.Proposta.ID+"/cadastro", masterToken, map[string]interface{}{
		"administradora":  "Qualicorp",
		"data_vencimento": "  ",
		"data_vigencia":   "2026-10-01",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestUpdateStatusAcceptsAnyValue(t *testing.T) {
	ts := GetTestServer(t)

	masterToken, _ := helpers.CreateAndLoginMaster(t, ts, ts.DB)

	payload := intakePayload("", "")
	payload["dependentes"] = []map[string]interface{}{}
	payload["valor_mensal"] = "R$ 80,00"
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/propostas", "", payload)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created propostaEnvelope
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	res, body = ts.SendRequest(t, http.MethodPatch, "/api/v1/admin/propostas/"+created.Proposta.ID+"/status", masterToken, map[string]interface{}{
		"status": "em_analise",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var updated models.Proposta
	require.NoError(t, json.Unmarshal([]byte(body), &updated))
	assert.Equal(t, "em_analise", updated.Status)
}

func TestListPropostasFilterByStatus(t *testing.T) {
	ts := GetTestServer(t)

	masterToken, _ := helpers.CreateAndLoginMaster(t, ts, ts.DB)

	status := fmt.Sprintf("filtro_%d", time.Now().UnixNano())

	payload := intakePayload("", "")
	payload["dependentes"] = []map[string]interface{}{}
	payload["valor_mensal"] = "R$ 70,00"
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/propostas", "", payload)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created propostaEnvelope
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	res, _ = ts.SendRequest(t, http.MethodPatch, "/api/v1/admin/propostas/"+created.Proposta.ID+"/status", masterToken, map[string]interface{}{
		"status": status,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/propostas?status="+status, masterToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var list struct {
		Propostas []models.Proposta `json:"propostas"`
		Total     int64             `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	assert.Equal(t, int64(1), list.Total)
	require.Len(t, list.Propostas, 1)
	assert.Equal(t, created.Proposta.ID, list.Propostas[0].ID)
}

func TestEstatisticasPorStatus(t *testing.T) {
	ts := GetTestServer(t)

	masterToken, _ := helpers.CreateAndLoginMaster(t, ts, ts.DB)

	payload := intakePayload("", "")
	payload["dependentes"] = []map[string]interface{}{}
	payload["valor_mensal"] = "R$ 60,00"
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/propostas", "", payload)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/propostas/estatisticas", masterToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var stats struct {
		PorStatus map[string]int64 `json:"por_status"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &stats))
	assert.GreaterOrEqual(t, stats.PorStatus[models.StatusParcial], int64(1))
}

func TestGetPropostaNotFound(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/propostas/00000000-0000-0000-0000-000000000000", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
