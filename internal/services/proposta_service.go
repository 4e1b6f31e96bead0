package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"

	"contratando_backend/internal/email"
	"contratando_backend/internal/logger"
	"contratando_backend/internal/models"
	"contratando_backend/internal/repositories"
	"contratando_backend/internal/services/dto"
	"contratando_backend/internal/storage"
	"contratando_backend/internal/utils"
	"contratando_backend/pkg/apperrors"
)

// DocumentoUpload is one file from the intake form. DependenteIdx is nil
// for the titular's documents.
type DocumentoUpload struct {
	Tipo          string // rg, cpf, comprovante_residencia, carta_permanencia...
	DependenteIdx *int
	FileName      string
	ContentType   string
	Size          int64
	Reader        io.Reader
}

type PropostaService interface {
	// Create runs the broker intake: validate, price, insert with status
	// "parcial", upload documents, patch URLs, notify the client.
	Create(ctx context.Context, req *dto.CreatePropostaRequest, docs []DocumentoUpload) (*dto.CreatePropostaResponse, error)

	// CreateManual is the back-office entry path. Same validation and
	// pricing; status comes from the form and defaults to "cadastrado".
	CreateManual(ctx context.Context, req *dto.CreatePropostaRequest) (*models.Proposta, error)

	GetByID(id string) (*models.Proposta, error)
	List(req *dto.ListPropostasRequest) (*dto.ListPropostasResponse, error)
	CompletarCadastro(ctx context.Context, id string, req *dto.CompletarCadastroRequest) (*models.Proposta, error)
	UpdateStatus(id, status string) (*models.Proposta, error)
	UploadDocumentos(ctx context.Context, id string, docs []DocumentoUpload) (*models.Proposta, error)
	CountByStatus() (map[string]int64, error)
}

type PropostaServiceImpl struct {
	propostaRepo  repositories.PropostaRepository
	corretorRepo  repositories.CorretorRepository
	tabelaService TabelaService
	store         storage.Storage
	mailer        email.Provider
	maxUploadSize int64
	allowedTypes  []string
}

func NewPropostaService(
	propostaRepo repositories.PropostaRepository,
	corretorRepo repositories.CorretorRepository,
	tabelaService TabelaService,
	store storage.Storage,
	mailer email.Provider,
	maxUploadSize int64,
	allowedTypes []string,
) PropostaService {
	return &PropostaServiceImpl{
		propostaRepo:  propostaRepo,
		corretorRepo:  corretorRepo,
		tabelaService: tabelaService,
		store:         store,
		mailer:        mailer,
		maxUploadSize: maxUploadSize,
		allowedTypes:  allowedTypes,
	}
}

func (s *PropostaServiceImpl) Create(ctx context.Context, req *dto.CreatePropostaRequest, docs []DocumentoUpload) (*dto.CreatePropostaResponse, error) {
	proposta, err := s.buildProposta(req, models.StatusParcial)
	if err != nil {
		return nil, err
	}

	if err := s.propostaRepo.Create(proposta); err != nil {
		return nil, apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "proposta criada", "proposta_id", proposta.ID, "status", proposta.Status)

	if len(docs) > 0 {
		if updated, err := s.UploadDocumentos(ctx, proposta.ID, docs); err != nil {
			// Documents can be re-sent later; the proposal itself stands.
			logger.CtxWithError(ctx, "falha no upload de documentos da proposta", err,
				"proposta_id", proposta.ID)
		} else {
			proposta = updated
		}
	}

	emailEnviado := false
	if err := s.mailer.SendValidacaoProposta(proposta.Email, proposta.Nome, proposta.ID); err != nil {
		logger.CtxWithError(ctx, "falha ao enviar email de validação", err,
			"proposta_id", proposta.ID)
	} else {
		emailEnviado = true
	}

	if err := s.propostaRepo.UpdateFields(proposta.ID, map[string]interface{}{
		"email_validacao_enviado": emailEnviado,
	}); err != nil {
		logger.CtxWithError(ctx, "falha ao gravar flag de email", err, "proposta_id", proposta.ID)
	}
	proposta.EmailValidacaoEnviado = emailEnviado

	return &dto.CreatePropostaResponse{
		Proposta:     proposta,
		EmailEnviado: emailEnviado,
	}, nil
}

func (s *PropostaServiceImpl) CreateManual(ctx context.Context, req *dto.CreatePropostaRequest) (*models.Proposta, error) {
	status := req.Status
	if status == "" {
		status = models.StatusCadastrado
	}

	proposta, err := s.buildProposta(req, status)
	if err != nil {
		return nil, err
	}

	if err := s.propostaRepo.Create(proposta); err != nil {
		return nil, apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "proposta criada manualmente", "proposta_id", proposta.ID, "status", proposta.Status)

	return proposta, nil
}

// buildProposta validates the payload and assembles the row, resolving the
// monthly price for the titular and each dependent independently.
func (s *PropostaServiceImpl) buildProposta(req *dto.CreatePropostaRequest, status string) (*models.Proposta, error) {
	if !utils.ValidarCPF(req.CPF) {
		return nil, apperrors.ErrInvalidCPF
	}
	if !utils.ValidarEmail(req.Email) {
		return nil, apperrors.ValidationError(map[string]string{"email": "Email inválido"})
	}
	if !utils.ValidarTelefone(req.Telefone) {
		return nil, apperrors.ValidationError(map[string]string{"telefone": "Telefone inválido"})
	}
	if !utils.ValidarDataNascimento(req.DataNascimento) {
		return nil, apperrors.ErrInvalidDataNascimento
	}

	nascimento, _ := time.Parse("2006-01-02", req.DataNascimento)
	idade := utils.CalcularIdade(nascimento, time.Now())

	valorTitular, err := s.resolverValor(req.ProdutoID, req.TabelaID, idade)
	if err != nil {
		return nil, err
	}
	if valorTitular == 0 && req.ValorMensal != "" {
		v, err := utils.ParseValorMonetario(req.ValorMensal)
		if err != nil || v <= 0 {
			return nil, apperrors.ErrInvalidValor
		}
		valorTitular = v
	}

	dependentes := make([]models.Dependente, 0, len(req.Dependentes))
	valorTotal := valorTitular
	for _, d := range req.Dependentes {
		if !utils.ValidarCPF(d.CPF) {
			return nil, apperrors.ErrInvalidCPF
		}
		if !utils.ValidarDataNascimento(d.DataNascimento) {
			return nil, apperrors.ErrInvalidDataNascimento
		}

		nasc, _ := time.Parse("2006-01-02", d.DataNascimento)
		idadeDep := utils.CalcularIdade(nasc, time.Now())

		valorDep, err := s.resolverValor(req.ProdutoID, req.TabelaID, idadeDep)
		if err != nil {
			return nil, err
		}

		dependentes = append(dependentes, models.Dependente{
			Nome:            strings.TrimSpace(d.Nome),
			CPF:             utils.SomenteDigitos(d.CPF),
			RG:              d.RG,
			DataNascimento:  d.DataNascimento,
			Parentesco:      d.Parentesco,
			Idade:           idadeDep,
			ValorIndividual: valorDep,
		})
		valorTotal += valorDep
	}

	proposta := &models.Proposta{
		Nome:           strings.TrimSpace(req.Nome),
		CPF:            utils.SomenteDigitos(req.CPF),
		RG:             req.RG,
		DataNascimento: req.DataNascimento,
		Idade:          idade,
		NomeMae:        req.NomeMae,
		Sexo:           req.Sexo,
		EstadoCivil:    req.EstadoCivil,
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Telefone:       utils.SomenteDigitos(req.Telefone),

		CEP:         utils.SomenteDigitos(req.CEP),
		Endereco:    req.Endereco,
		Numero:      req.Numero,
		Complemento: req.Complemento,
		Bairro:      req.Bairro,
		Cidade:      req.Cidade,
		Estado:      strings.ToUpper(req.Estado),

		ValorMensal: valorTotal,

		CorretorNome: req.CorretorNome,

		Dependentes:              datatypes.NewJSONType(dependentes),
		DocumentosURLs:           datatypes.NewJSONType(models.DocumentoURLMap{}),
		DocumentosDependentesURL: datatypes.NewJSONType(models.DocumentoDependenteMap{}),

		Status: status,
	}

	if req.ProdutoID != "" {
		proposta.ProdutoID = &req.ProdutoID
	}
	if req.TabelaID != "" {
		proposta.TabelaID = &req.TabelaID
	}
	if req.CorretorID != "" {
		corretor, err := s.corretorRepo.FindByID(req.CorretorID)
		if err != nil {
			if !apperrors.Is(err, repositories.ErrCorretorNotFound) {
				return nil, apperrors.InternalError(err)
			}
		} else {
			proposta.CorretorID = &corretor.ID
			if proposta.CorretorNome == "" {
				proposta.CorretorNome = corretor.Nome
			}
		}
	}

	return proposta, nil
}

// resolverValor prefers the product's linked table, then an explicit
// table id. No match means 0, never an error.
func (s *PropostaServiceImpl) resolverValor(produtoID, tabelaID string, idade int) (float64, error) {
	if produtoID != "" {
		valor, ok, err := s.tabelaService.ResolverValorPorProduto(produtoID, idade)
		if err != nil {
			return 0, err
		}
		if ok {
			return valor, nil
		}
	}
	if tabelaID != "" {
		valor, _, err := s.tabelaService.ResolverValorPorTabela(tabelaID, idade)
		if err != nil {
			return 0, err
		}
		return valor, nil
	}
	return 0, nil
}

func (s *PropostaServiceImpl) GetByID(id string) (*models.Proposta, error) {
	proposta, err := s.propostaRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPropostaNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return proposta, nil
}

func (s *PropostaServiceImpl) List(req *dto.ListPropostasRequest) (*dto.ListPropostasResponse, error) {
	criteria := repositories.PropostaFilter{
		Status:     req.Status,
		CorretorID: req.CorretorID,
		Search:     req.Search,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}

	propostas, total, err := s.propostaRepo.FindWithFilter(criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if criteria.Page < 1 {
		criteria.Page = 1
	}
	if criteria.PageSize < 1 {
		criteria.PageSize = 20
	}

	return &dto.ListPropostasResponse{
		Propostas: propostas,
		Total:     total,
		Page:      criteria.Page,
		PageSize:  criteria.PageSize,
	}, nil
}

// CompletarCadastro fills the administrative fields and marks the
// proposal "cadastrado".
func (s *PropostaServiceImpl) CompletarCadastro(ctx context.Context, id string, req *dto.CompletarCadastroRequest) (*models.Proposta, error) {
	if strings.TrimSpace(req.Administradora) == "" ||
		strings.TrimSpace(req.DataVencimento) == "" ||
		strings.TrimSpace(req.DataVigencia) == "" {
		return nil, apperrors.ErrCadastroIncompleto
	}

	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"administradora":  strings.TrimSpace(req.Administradora),
		"data_vencimento": strings.TrimSpace(req.DataVencimento),
		"data_vigencia":   strings.TrimSpace(req.DataVigencia),
		"observacoes":     req.Observacoes,
		"status":          models.StatusCadastrado,
	}

	if err := s.propostaRepo.UpdateFields(id, fields); err != nil {
		return nil, apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "cadastro da proposta completado", "proposta_id", id)

	return s.GetByID(id)
}

// UpdateStatus writes the status as given. The column is a free string,
// there is no transition check.
func (s *PropostaServiceImpl) UpdateStatus(id, status string) (*models.Proposta, error) {
	if strings.TrimSpace(status) == "" {
		return nil, apperrors.NewBadRequestError("Status é obrigatório")
	}

	if err := s.propostaRepo.UpdateFields(id, map[string]interface{}{"status": status}); err != nil {
		if apperrors.Is(err, repositories.ErrPropostaNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return s.GetByID(id)
}

// UploadDocumentos stores each file sequentially and then patches the URL
// maps on the proposal row. One failed file aborts the remaining uploads
// but already-stored objects are kept.
func (s *PropostaServiceImpl) UploadDocumentos(ctx context.Context, id string, docs []DocumentoUpload) (*models.Proposta, error) {
	proposta, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	titularURLs := proposta.DocumentosURLs.Data()
	if titularURLs == nil {
		titularURLs = models.DocumentoURLMap{}
	}
	depURLs := proposta.DocumentosDependentesURL.Data()
	if depURLs == nil {
		depURLs = models.DocumentoDependenteMap{}
	}

	for _, doc := range docs {
		if err := s.validarDocumento(&doc); err != nil {
			return nil, err
		}

		objectName := s.objectName(id, &doc)
		if err := s.store.Save(ctx, objectName, doc.Reader, doc.ContentType); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "uploads",
				"Falha ao enviar documento", 502)
		}

		url, err := s.store.GetURL(ctx, objectName)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}

		if doc.DependenteIdx == nil {
			titularURLs[doc.Tipo] = url
		} else {
			key := strconv.Itoa(*doc.DependenteIdx)
			if depURLs[key] == nil {
				depURLs[key] = models.DocumentoURLMap{}
			}
			depURLs[key][doc.Tipo] = url
		}
		logger.CtxDebug(ctx, "documento enviado", "proposta_id", id, "objeto", objectName)
	}

	fields := map[string]interface{}{
		"documentos_urls":             datatypes.NewJSONType(titularURLs),
		"documentos_dependentes_urls": datatypes.NewJSONType(depURLs),
	}
	if err := s.propostaRepo.UpdateFields(id, fields); err != nil {
		// The objects are stored; only the reference patch failed. Surface
		// a warning and keep the proposal as is.
		logger.CtxWithError(ctx, "falha ao gravar URLs de documentos", err, "proposta_id", id)
		return proposta, nil
	}

	return s.GetByID(id)
}

func (s *PropostaServiceImpl) validarDocumento(doc *DocumentoUpload) error {
	if doc.Tipo == "" {
		return apperrors.ErrInvalidDocumentType
	}
	if s.maxUploadSize > 0 && doc.Size > s.maxUploadSize {
		return apperrors.ErrFileTooLarge
	}
	if len(s.allowedTypes) > 0 {
		allowed := false
		for _, t := range s.allowedTypes {
			if strings.EqualFold(t, doc.ContentType) {
				allowed = true
				break
			}
		}
		if !allowed {
			return apperrors.ErrInvalidFileType
		}
	}
	return nil
}

// objectName builds {propostaID}_{tipo}_{unixNano}.{ext}, with a
// dependente_{idx} segment for dependents' documents.
func (s *PropostaServiceImpl) objectName(propostaID string, doc *DocumentoUpload) string {
	ext := strings.TrimPrefix(filepath.Ext(doc.FileName), ".")
	if ext == "" {
		ext = "bin"
	}

	ts := time.Now().UnixNano()
	if doc.DependenteIdx != nil {
		return fmt.Sprintf("%s_dependente_%d_%s_%d.%s", propostaID, *doc.DependenteIdx, doc.Tipo, ts, ext)
	}
	return fmt.Sprintf("%s_%s_%d.%s", propostaID, doc.Tipo, ts, ext)
}

func (s *PropostaServiceImpl) CountByStatus() (map[string]int64, error) {
	counts, err := s.propostaRepo.CountByStatus()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return counts, nil
}
