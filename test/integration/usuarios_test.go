package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"contratando_backend/internal/auth"
	"contratando_backend/internal/models"
	"contratando_backend/test/helpers"
)

func TestCreateUsuarioRequiresPermission(t *testing.T) {
	ts := GetTestServer(t)

	email := fmt.Sprintf("sem_perm_%d@teste.com", time.Now().UnixNano())
	token, _ := helpers.CreateAndLoginUsuario(t, ts, ts.DB, "Sem Permissão", email, "senha123", auth.PerfilAssistente, auth.PermissaoMap{
		"propostas": {Visualizar: true},
	})

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/usuarios", token, map[string]interface{}{
		"nome":  "Novo Usuário",
		"email": fmt.Sprintf("novo_%d@teste.com", time.Now().UnixNano()),
		"senha": "senha123",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestCreateUsuarioAsMaster(t *testing.T) {
	ts := GetTestServer(t)

	token, _ := helpers.CreateAndLoginMaster(t, ts, ts.DB)

	email := fmt.Sprintf("criado_%d@Teste.com", time.Now().UnixNano())
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/usuarios", token, map[string]interface{}{
		"nome":   "Usuário Criado",
		"email":  email,
		"senha":  "senha123",
		"perfil": auth.PerfilSecretaria,
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var created struct {
		ID     string `json:"id"`
		Email  string `json:"email"`
		Perfil string `json:"perfil"`
		Ativo  bool   `json:"ativo"`
	}
	assert.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, auth.PerfilSecretaria, created.Perfil)
	assert.True(t, created.Ativo)
	assert.NotContains(t, body, "senha")

	// Email is stored lowercased.
	var stored models.UsuarioAdmin
	assert.NoError(t, ts.DB.First(&stored, "id = ?", created.ID).Error)
	assert.Equal(t, created.Email, stored.Email)
	assert.NotContains(t, stored.Email, "T")
}

func TestCreateUsuarioDuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)

	token, _ := helpers.CreateAndLoginMaster(t, ts, ts.DB)

	email := fmt.Sprintf("dup_%d@teste.com", time.Now().UnixNano())
	payload := map[string]interface{}{
		"nome":  "Primeiro",
		"email": email,
		"senha": "senha123",
	}

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/usuarios", token, payload)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/usuarios", token, payload)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "Email já está em uso")
}

func TestCreateUsuarioShortPassword(t *testing.T) {
	ts := GetTestServer(t)

	token, _ := helpers.CreateAndLoginMaster(t, ts, ts.DB)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/usuarios", token, map[string]interface{}{
		"nome":  "Senha Curta",
		"email": fmt.Sprintf("curta_%d@teste.com", time.Now().UnixNano()),
		"senha": "12345",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestUpdateUsuarioKeepsPasswordWhenOmitted(t *testing.T) {
	ts := GetTestServer(t)

	masterToken, _ := helpers.CreateAndLoginMaster(t, ts, ts.DB)

	email := fmt.Sprintf("manter_senha_%d@teste.com", time.Now().UnixNano())
	_, usuario := helpers.CreateAndLoginUsuario(t, ts, ts.DB, "Nome Antigo", email, "senha123", auth.PerfilAssistente, nil)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/v1/admin/usuarios/"+usuario.ID, masterToken, map[string]interface{}{
		"nome": "Nome Novo",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Nome Novo")

	// The old password still logs in.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email": email,
		"senha": "senha123",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestToggleStatusBlocksLogin(t *testing.T) {
	ts := GetTestServer(t)

	masterToken, _ := helpers.CreateAndLoginMaster(t, ts, ts.DB)

	email := fmt.Sprintf("toggle_%d@teste.com", time.Now().UnixNano())
	_, usuario := helpers.CreateAndLoginUsuario(t, ts, ts.DB, "Alvo Toggle", email, "senha123", auth.PerfilSecretaria, nil)

	res, body := ts.SendRequest(t, http.MethodPatch, "/api/v1/admin/usuarios/"+usuario.ID+"/status", masterToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var toggled struct {
		Ativo bool `json:"ativo"`
	}
	assert.NoError(t, json.Unmarshal([]byte(body), &toggled))
	assert.False(t, toggled.Ativo)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email": email,
		"senha": "senha123",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// Toggling again reactivates.
	res, body = ts.SendRequest(t, http.MethodPatch, "/api/v1/admin/usuarios/"+usuario.ID+"/status", masterToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NoError(t, json.Unmarshal([]byte(body), &toggled))
	assert.True(t, toggled.Ativo)
}

func TestDeleteUsuario(t *testing.T) {
	ts := GetTestServer(t)

	masterToken, _ := helpers.CreateAndLoginMaster(t, ts, ts.DB)

	email := fmt.Sprintf("excluir_%d@teste.com", time.Now().UnixNano())
	_, usuario := helpers.CreateAndLoginUsuario(t, ts, ts.DB, "Alvo Exclusão", email, "senha123", auth.PerfilAssistente, nil)

	res, _ := ts.SendRequest(t, http.MethodDelete, "/api/v1/admin/usuarios/"+usuario.ID, masterToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/usuarios/"+usuario.ID, masterToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestGetUsuarioNotFound(t *testing.T) {
	ts := GetTestServer(t)

	masterToken, _ := helpers.CreateAndLoginMaster(t, ts, ts.DB)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/usuarios/00000000-0000-0000-0000-000000000000", masterToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestListUsuarios(t *testing.T) {
	ts := GetTestServer(t)

	masterToken, _ := helpers.CreateAndLoginMaster(t, ts, ts.DB)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/usuarios", masterToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var resp struct {
		Usuarios []json.RawMessage `json:"usuarios"`
	}
	assert.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.NotEmpty(t, resp.Usuarios)
	assert.NotContains(t, body, "senha_hash")
}
