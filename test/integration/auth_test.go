package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"contratando_backend/internal/auth"
	"contratando_backend/internal/models"
	"contratando_backend/test/helpers"
)

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestLoginSuccess(t *testing.T) {
	ts := GetTestServer(t)

	email := fmt.Sprintf("login_ok_%d@teste.com", time.Now().UnixNano())
	token, usuario := helpers.CreateAndLoginUsuario(t, ts, ts.DB, "Usuária OK", email, "senha123", auth.PerfilSecretaria, auth.DefaultPermissions(auth.PerfilSecretaria))

	assert.NotEmpty(t, token)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var me struct {
		ID     string `json:"id"`
		Email  string `json:"email"`
		Perfil string `json:"perfil"`
	}
	assert.NoError(t, json.Unmarshal([]byte(body), &me))
	assert.Equal(t, usuario.ID, me.ID)
	assert.Equal(t, email, me.Email)
	assert.Equal(t, auth.PerfilSecretaria, me.Perfil)
	assert.NotContains(t, body, "senha_hash")
}

func TestLoginWrongPassword(t *testing.T) {
	ts := GetTestServer(t)

	email := fmt.Sprintf("login_wrong_%d@teste.com", time.Now().UnixNano())
	helpers.CreateAndLoginUsuario(t, ts, ts.DB, "Usuário", email, "senha123", auth.PerfilAssistente, nil)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email": email,
		"senha": "senha_errada",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	var envelope errorEnvelope
	assert.NoError(t, json.Unmarshal([]byte(body), &envelope))
	assert.Equal(t, "Email ou senha incorretos", envelope.Error.Message)
}

// An inactive user's login must be indistinguishable from a wrong
// password.
func TestLoginInactiveUserSameError(t *testing.T) {
	ts := GetTestServer(t)

	email := fmt.Sprintf("inativo_%d@teste.com", time.Now().UnixNano())
	usuario := &models.UsuarioAdmin{
		Nome:       "Usuário Inativo",
		Email:      email,
		SenhaHash:  "senha123",
		Perfil:     auth.PerfilSecretaria,
		Permissoes: datatypes.NewJSONType(auth.PermissaoMap{}),
		Ativo:      false,
	}
	helpers.CreateUsuarioAdmin(t, ts.DB, usuario)

	// Correct password, inactive account.
	resInactive, bodyInactive := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email": email,
		"senha": "senha123",
	})

	// Unknown account.
	resUnknown, bodyUnknown := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email": fmt.Sprintf("nao_existe_%d@teste.com", time.Now().UnixNano()),
		"senha": "qualquer",
	})

	assert.Equal(t, http.StatusUnauthorized, resInactive.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, resUnknown.StatusCode)

	var envInactive, envUnknown errorEnvelope
	assert.NoError(t, json.Unmarshal([]byte(bodyInactive), &envInactive))
	assert.NoError(t, json.Unmarshal([]byte(bodyUnknown), &envUnknown))
	assert.Equal(t, envUnknown.Error.Message, envInactive.Error.Message)
	assert.Equal(t, envUnknown.Error.Code, envInactive.Error.Code)
}

func TestMeWithoutToken(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestCheckPermissionEndpoint(t *testing.T) {
	ts := GetTestServer(t)

	email := fmt.Sprintf("perm_%d@teste.com", time.Now().UnixNano())
	permissoes := auth.PermissaoMap{
		"propostas": {Visualizar: true},
	}
	token, _ := helpers.CreateAndLoginUsuario(t, ts, ts.DB, "Assistente", email, "senha123", auth.PerfilAssistente, permissoes)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/permissao", token, map[string]interface{}{
		"modulo": "propostas",
		"acao":   "visualizar",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"permitido":true`)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/permissao", token, map[string]interface{}{
		"modulo": "propostas",
		"acao":   "excluir",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"permitido":false`)
}

// Revoking a permission takes effect on the next request, not at token
// expiry.
func TestPermissionRevokedMidSession(t *testing.T) {
	ts := GetTestServer(t)

	email := fmt.Sprintf("revoke_%d@teste.com", time.Now().UnixNano())
	permissoes := auth.PermissaoMap{
		"usuarios": {Visualizar: true},
	}
	token, usuario := helpers.CreateAndLoginUsuario(t, ts, ts.DB, "Secretária", email, "senha123", auth.PerfilSecretaria, permissoes)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/usuarios", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	err := ts.DB.Model(&models.UsuarioAdmin{}).Where("id = ?", usuario.ID).
		Update("permissoes", datatypes.NewJSONType(auth.PermissaoMap{})).Error
	assert.NoError(t, err)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/usuarios", token, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
