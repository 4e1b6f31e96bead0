package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contratando_backend/internal/cep"
	"contratando_backend/internal/logger"
	"contratando_backend/pkg/apperrors"
)

type CEPHandler struct {
	*BaseHandler
	client *cep.Client
}

func NewCEPHandler(base *BaseHandler, client *cep.Client) *CEPHandler {
	return &CEPHandler{
		BaseHandler: base,
		client:      client,
	}
}

// Buscar proxies the ViaCEP lookup so the intake form can autofill the
// address. An unknown CEP answers 200 with empty fields; the form treats
// it as "fill in by hand".
//
// GET /api/v1/cep/:cep
func (h *CEPHandler) Buscar(c *gin.Context) {
	endereco, err := h.client.Buscar(c.Request.Context(), c.Param("cep"))
	if err != nil {
		switch {
		case apperrors.Is(err, cep.ErrCEPInvalido):
			apperrors.HandleError(c, apperrors.NewBadRequestError("CEP inválido"))
		case apperrors.Is(err, cep.ErrCEPNaoEcontrado):
			c.JSON(http.StatusOK, &cep.Endereco{})
		default:
			logger.CtxWithError(c.Request.Context(), "viacep lookup failed", err)
			c.JSON(http.StatusOK, &cep.Endereco{})
		}
		return
	}

	c.JSON(http.StatusOK, endereco)
}
