package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"contratando_backend/internal/services"
	"contratando_backend/internal/services/dto"
	"contratando_backend/internal/validator"
	"contratando_backend/pkg/apperrors"
)

type PropostaHandler struct {
	*BaseHandler
	propostaService services.PropostaService
}

func NewPropostaHandler(base *BaseHandler, propostaService services.PropostaService) *PropostaHandler {
	return &PropostaHandler{
		BaseHandler:     base,
		propostaService: propostaService,
	}
}

// Create handles the broker intake. The endpoint accepts either plain
// JSON or multipart/form-data with a "proposta" JSON field plus document
// files named "documento_{tipo}" and "dependente_{idx}_{tipo}".
//
// POST /api/v1/propostas
func (h *PropostaHandler) Create(c *gin.Context) {
	contentType := c.ContentType()

	var req dto.CreatePropostaRequest
	var docs []services.DocumentoUpload

	if strings.HasPrefix(contentType, "multipart/form-data") {
		payload := c.PostForm("proposta")
		if payload == "" {
			apperrors.HandleError(c, apperrors.NewBadRequestError("Campo 'proposta' ausente no formulário"))
			return
		}
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			apperrors.HandleError(c, apperrors.NewBadRequestError("Campo 'proposta' inválido: "+err.Error()))
			return
		}
		if err := h.validator.Validate(&req); err != nil {
			if vErr, ok := err.(*validator.ValidationError); ok {
				apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
			} else {
				apperrors.HandleError(c, apperrors.InternalError(err))
			}
			return
		}

		parsed, err := h.collectDocumentos(c)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		docs = parsed
	} else {
		if !h.BindAndValidateJSON(c, &req) {
			return
		}
	}

	// Broker intake never chooses the status.
	req.Status = ""

	resp, err := h.propostaService.Create(c.Request.Context(), &req, docs)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// collectDocumentos walks the multipart file parts and opens each one.
// Files are streamed to storage by the service; gin closes them when the
// request ends.
func (h *PropostaHandler) collectDocumentos(c *gin.Context) ([]services.DocumentoUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, apperrors.NewBadRequestError("Formulário inválido: " + err.Error())
	}

	var docs []services.DocumentoUpload
	for field, files := range form.File {
		if len(files) == 0 {
			continue
		}
		header := files[0]

		tipo, depIdx, ok := parseDocumentoField(field)
		if !ok {
			continue
		}

		file, err := header.Open()
		if err != nil {
			return nil, apperrors.InternalError(err)
		}

		docs = append(docs, services.DocumentoUpload{
			Tipo:          tipo,
			DependenteIdx: depIdx,
			FileName:      header.Filename,
			ContentType:   header.Header.Get("Content-Type"),
			Size:          header.Size,
			Reader:        file,
		})
	}

	return docs, nil
}

// parseDocumentoField maps "documento_rg" to (rg, nil) and
// "dependente_0_rg" to (rg, &0). Unknown field names are skipped.
func parseDocumentoField(field string) (string, *int, bool) {
	if tipo, found := strings.CutPrefix(field, "documento_"); found && tipo != "" {
		return tipo, nil, true
	}

	if rest, found := strings.CutPrefix(field, "dependente_"); found {
		parts := strings.SplitN(rest, "_", 2)
		if len(parts) != 2 || parts[1] == "" {
			return "", nil, false
		}
		idx, err := strconv.Atoi(parts[0])
		if err != nil || idx < 0 {
			return "", nil, false
		}
		return parts[1], &idx, true
	}

	return "", nil, false
}

// CreateManual is the back-office entry path.
//
// POST /api/v1/admin/propostas
func (h *PropostaHandler) CreateManual(c *gin.Context) {
	var req dto.CreatePropostaRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	proposta, err := h.propostaService.CreateManual(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, proposta)
}

// GET /api/v1/propostas
func (h *PropostaHandler) List(c *gin.Context) {
	var req dto.ListPropostasRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	resp, err := h.propostaService.List(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GET /api/v1/propostas/:id
func (h *PropostaHandler) GetByID(c *gin.Context) {
	proposta, err := h.propostaService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, proposta)
}

// CompletarCadastro fills administradora, vencimento and vigência and
// moves the proposal to "cadastrado".
//
// PATCH /api/v1/admin/propostas/:id/cadastro
func (h *PropostaHandler) CompletarCadastro(c *gin.Context) {
	var req dto.CompletarCadastroRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	proposta, err := h.propostaService.CompletarCadastro(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, proposta)
}

// PATCH /api/v1/admin/propostas/:id/status
func (h *PropostaHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	proposta, err := h.propostaService.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, proposta)
}

// UploadDocumentos attaches documents to an existing proposal, used by the
// client-facing completion flow.
//
// POST /api/v1/propostas/:id/documentos
func (h *PropostaHandler) UploadDocumentos(c *gin.Context) {
	docs, err := h.collectDocumentos(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if len(docs) == 0 {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Nenhum documento enviado"))
		return
	}

	proposta, err := h.propostaService.UploadDocumentos(c.Request.Context(), c.Param("id"), docs)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, proposta)
}

// GET /api/v1/admin/propostas/estatisticas
func (h *PropostaHandler) CountByStatus(c *gin.Context) {
	counts, err := h.propostaService.CountByStatus()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"por_status": counts})
}
