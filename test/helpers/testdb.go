package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"contratando_backend/internal/auth"
	"contratando_backend/internal/models"
)

// CreateUsuarioAdmin inserts an admin user, hashing the raw password
// passed in SenhaHash.
func CreateUsuarioAdmin(t *testing.T, db *gorm.DB, usuario *models.UsuarioAdmin) {
	if usuario.SenhaHash != "" {
		hash, err := auth.HashPassword(usuario.SenhaHash)
		if err != nil {
			t.Fatalf("failed to hash test password: %v", err)
		}
		usuario.SenhaHash = hash
	}

	if usuario.Perfil == "" {
		usuario.Perfil = auth.PerfilAssistente
	}

	if err := db.Create(usuario).Error; err != nil {
		t.Fatalf("failed to create test usuario %s: %v", usuario.Email, err)
	}
}

// CreateAndLoginUsuario creates an active admin user and logs in through
// the API, returning the session token.
func CreateAndLoginUsuario(t *testing.T, ts *TestServer, db *gorm.DB, nome, email, senha, perfil string, permissoes auth.PermissaoMap) (string, *models.UsuarioAdmin) {
	if permissoes == nil {
		permissoes = auth.PermissaoMap{}
	}

	usuario := &models.UsuarioAdmin{
		Nome:       nome,
		Email:      email,
		SenhaHash:  senha,
		Perfil:     perfil,
		Permissoes: datatypes.NewJSONType(permissoes),
		Ativo:      true,
	}
	CreateUsuarioAdmin(t, db, usuario)

	loginBody := map[string]interface{}{
		"email": email,
		"senha": senha,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "login should succeed, got: "+bodyStr)

	var loginResponse struct {
		Token string `json:"token"`
	}
	err := json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err)
	assert.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, usuario
}

// CreateAndLoginMaster creates a master user with a unique email.
func CreateAndLoginMaster(t *testing.T, ts *TestServer, db *gorm.DB) (string, *models.UsuarioAdmin) {
	email := fmt.Sprintf("master_%d@teste.com", time.Now().UnixNano())
	return CreateAndLoginUsuario(t, ts, db, "Master Teste", email, "senha123", auth.PerfilMaster, nil)
}

// CreateTabelaComFaixas inserts a price table with the given brackets in
// list order.
func CreateTabelaComFaixas(t *testing.T, db *gorm.DB, nome string, faixas map[string]float64, ordem []string) *models.TabelaPreco {
	tabela := &models.TabelaPreco{Nome: nome, Ativo: true}
	if err := db.Create(tabela).Error; err != nil {
		t.Fatalf("failed to create test tabela: %v", err)
	}

	for i, expr := range ordem {
		faixa := &models.TabelaPrecoFaixa{
			TabelaID:    tabela.ID,
			FaixaEtaria: expr,
			Valor:       faixas[expr],
			Ordem:       i,
		}
		if err := db.Create(faixa).Error; err != nil {
			t.Fatalf("failed to create test faixa: %v", err)
		}
	}

	return tabela
}

// CreateProdutoComTabela inserts a product linked to a price table.
func CreateProdutoComTabela(t *testing.T, db *gorm.DB, nome string, tabelaID string) *models.Produto {
	produto := &models.Produto{
		Nome:      nome,
		Operadora: "Operadora Teste",
		Tipo:      "individual",
		Ativo:     true,
	}
	if err := db.Create(produto).Error; err != nil {
		t.Fatalf("failed to create test produto: %v", err)
	}

	link := &models.ProdutoTabela{ProdutoID: produto.ID, TabelaID: tabelaID}
	if err := db.Create(link).Error; err != nil {
		t.Fatalf("failed to link produto to tabela: %v", err)
	}

	return produto
}
