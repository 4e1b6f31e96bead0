package auth

import "errors"

// Access profiles of back-office users.
const (
	PerfilMaster     = "master"
	PerfilSecretaria = "secretaria"
	PerfilAssistente = "assistente"
)

// Actions a permission entry can grant.
const (
	AcaoVisualizar = "visualizar"
	AcaoCriar      = "criar"
	AcaoEditar     = "editar"
	AcaoExcluir    = "excluir"
)

// Modulos lists every module a permission map can reference.
var Modulos = []string{
	"dashboard",
	"leads",
	"propostas",
	"corretores",
	"produtos",
	"tabelas",
	"comissoes",
	"usuarios",
	"contratos",
	"vendas",
}

// Permissao grants per-action access within a single module.
type Permissao struct {
	Visualizar bool `json:"visualizar"`
	Criar      bool `json:"criar"`
	Editar     bool `json:"editar"`
	Excluir    bool `json:"excluir"`
}

// PermissaoMap maps module name to its grants. A missing module means no
// access at all.
type PermissaoMap map[string]Permissao

// HasPermission resolves a single module/action grant. The master profile
// bypasses the map entirely; every other profile needs an explicit true.
func HasPermission(perfil string, permissoes PermissaoMap, modulo, acao string) bool {
	if perfil == PerfilMaster {
		return true
	}

	p, ok := permissoes[modulo]
	if !ok {
		return false
	}

	switch acao {
	case AcaoVisualizar:
		return p.Visualizar
	case AcaoCriar:
		return p.Criar
	case AcaoEditar:
		return p.Editar
	case AcaoExcluir:
		return p.Excluir
	default:
		return false
	}
}

// ValidatePerfil rejects profiles the system does not know.
func ValidatePerfil(perfil string) error {
	switch perfil {
	case PerfilMaster, PerfilSecretaria, PerfilAssistente:
		return nil
	default:
		return errors.New("perfil inválido")
	}
}

// DefaultPermissions returns the permission map a new user of the given
// profile starts with. Master users ignore the map, so theirs is empty.
func DefaultPermissions(perfil string) PermissaoMap {
	switch perfil {
	case PerfilMaster:
		return PermissaoMap{}
	case PerfilSecretaria:
		return PermissaoMap{
			"dashboard":  {Visualizar: true},
			"leads":      {Visualizar: true, Criar: true, Editar: true},
			"propostas":  {Visualizar: true, Criar: true, Editar: true},
			"corretores": {Visualizar: true, Criar: true, Editar: true},
			"produtos":   {Visualizar: true},
			"tabelas":    {Visualizar: true},
			"contratos":  {Visualizar: true, Criar: true, Editar: true},
			"vendas":     {Visualizar: true},
		}
	default:
		return PermissaoMap{
			"dashboard": {Visualizar: true},
			"leads":     {Visualizar: true},
			"propostas": {Visualizar: true},
		}
	}
}
