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

func TestResolverValorEndpoint(t *testing.T) {
	ts := GetTestServer(t)

	tabela := helpers.CreateTabelaComFaixas(t, ts.DB, fmt.Sprintf("Tabela Valor %d", time.Now().UnixNano()),
		map[string]float64{"0-17": 120, "18-59": 250, "60+": 480},
		[]string{"0-17", "18-59", "60+"})
	produto := helpers.CreateProdutoComTabela(t, ts.DB, "Plano Valor", tabela.ID)

	cases := []struct {
		idade int
		valor float64
	}{
		{5, 120},
		{17, 120},
		{18, 250},
		{59, 250},
		{60, 480},
	}
	for _, tc := range cases {
		res, body := ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/produtos/%s/valor?idade=%d", produto.ID, tc.idade), "", nil)
		require.Equal(t, http.StatusOK, res.StatusCode, body)

		var resp struct {
			Valor      float64 `json:"valor"`
			Encontrado bool    `json:"encontrado"`
		}
		require.NoError(t, json.Unmarshal([]byte(body), &resp))
		assert.True(t, resp.Encontrado, "idade %d", tc.idade)
		assert.Equal(t, tc.valor, resp.Valor, "idade %d", tc.idade)
	}
}

func TestResolverValorWithoutIdadeParam(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/produtos/00000000-0000-0000-0000-000000000000/valor", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestResolverValorProdutoSemTabela(t *testing.T) {
	ts := GetTestServer(t)

	produto := &models.Produto{Nome: "Plano Sem Tabela", Operadora: "Operadora Teste", Tipo: "individual", Ativo: true}
	require.NoError(t, ts.DB.Create(produto).Error)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/produtos/"+produto.ID+"/valor?idade=30", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		Valor      float64 `json:"valor"`
		Encontrado bool    `json:"encontrado"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.False(t, resp.Encontrado)
	assert.Equal(t, 0.0, resp.Valor)
}

func TestGetTabelaIncludesFaixas(t *testing.T) {
	ts := GetTestServer(t)

	tabela := helpers.CreateTabelaComFaixas(t, ts.DB, fmt.Sprintf("Tabela Faixas GET %d", time.Now().UnixNano()),
		map[string]float64{"0-17": 100, "18+": 200},
		[]string{"0-17", "18+"})

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/tabelas/"+tabela.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var fetched models.TabelaPreco
	require.NoError(t, json.Unmarshal([]byte(body), &fetched))
	require.Len(t, fetched.Faixas, 2)
	assert.Equal(t, "0-17", fetched.Faixas[0].FaixaEtaria)
	assert.Equal(t, "18+", fetched.Faixas[1].FaixaEtaria)
}

func TestCreateTabelaWithFaixas(t *testing.T) {
	ts := GetTestServer(t)

	masterToken, _ := helpers.CreateAndLoginMaster(t, ts, ts.DB)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/tabelas", masterToken, map[string]interface{}{
		"nome": fmt.Sprintf("Tabela Nova %d", time.Now().UnixNano()),
		"faixas": []map[string]interface{}{
			{"faixa_etaria": "0-17", "valor": 90},
			{"faixa_etaria": "18-59", "valor": 180},
			{"faixa_etaria": "60+", "valor": 360},
		},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created models.TabelaPreco
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.NotEmpty(t, created.ID)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/tabelas/"+created.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var fetched models.TabelaPreco
	require.NoError(t, json.Unmarshal([]byte(body), &fetched))
	require.Len(t, fetched.Faixas, 3)
	assert.Equal(t, 180.0, fetched.Faixas[1].Valor)
}

func TestListProdutosOnlyAtivos(t *testing.T) {
	ts := GetTestServer(t)

	ativo := &models.Produto{Nome: fmt.Sprintf("Plano Ativo %d", time.Now().UnixNano()), Operadora: "Op", Tipo: "individual", Ativo: true}
	require.NoError(t, ts.DB.Create(ativo).Error)
	inativo := &models.Produto{Nome: fmt.Sprintf("Plano Inativo %d", time.Now().UnixNano()), Operadora: "Op", Tipo: "individual", Ativo: false}
	require.NoError(t, ts.DB.Create(inativo).Error)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/produtos", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var list struct {
		Produtos []models.Produto `json:"produtos"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &list))

	ids := map[string]bool{}
	for _, p := range list.Produtos {
		ids[p.ID] = true
	}
	assert.True(t, ids[ativo.ID])
	assert.False(t, ids[inativo.ID])
}
