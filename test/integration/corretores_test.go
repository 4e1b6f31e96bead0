package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contratando_backend/internal/models"
	"contratando_backend/test/helpers"
)

func TestCorretorCRUD(t *testing.T) {
	ts := GetTestServer(t)

	masterToken, _ := helpers.CreateAndLoginMaster(t, ts, ts.DB)

	email := fmt.Sprintf("corretor_%d@teste.com", time.Now().UnixNano())
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/corretores", masterToken, map[string]interface{}{
		"nome":   "Carlos Corretor",
		"cpf":    "529.982.247-25",
		"email":  email,
		"cidade": "Campinas",
		"estado": "SP",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created models.Corretor
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "52998224725", created.CPF)

	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/admin/corretores/"+created.ID, masterToken, map[string]interface{}{
		"cidade": "Santos",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var updated models.Corretor
	require.NoError(t, json.Unmarshal([]byte(body), &updated))
	assert.Equal(t, "Santos", updated.Cidade)
	assert.Equal(t, email, updated.Email)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/v1/admin/corretores/"+created.ID, masterToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/corretores/"+created.ID, masterToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestCreateCorretorInvalidCPF(t *testing.T) {
	ts := GetTestServer(t)

	masterToken, _ := helpers.CreateAndLoginMaster(t, ts, ts.DB)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/corretores", masterToken, map[string]interface{}{
		"nome":  "CPF Ruim",
		"cpf":   "11111111111",
		"email": fmt.Sprintf("cpf_ruim_%d@teste.com", time.Now().UnixNano()),
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestPropostaLinksCorretor(t *testing.T) {
	ts := GetTestServer(t)

	corretor := &models.Corretor{
		Nome:  "Corretora Vinculada",
		CPF:   fmt.Sprintf("%011d", time.Now().UnixNano()%100000000000),
		Email: fmt.Sprintf("vinculada_%d@teste.com", time.Now().UnixNano()),
		Ativo: true,
	}
	require.NoError(t, ts.DB.Create(corretor).Error)

	payload := intakePayload("", "")
	payload["dependentes"] = []map[string]interface{}{}
	payload["valor_mensal"] = "R$ 90,00"
	payload["corretor_id"] = corretor.ID

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/propostas", "", payload)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var resp propostaEnvelope
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.NotNil(t, resp.Proposta.CorretorID)
	assert.Equal(t, corretor.ID, *resp.Proposta.CorretorID)
	assert.Equal(t, "Corretora Vinculada", resp.Proposta.CorretorNome)
}
