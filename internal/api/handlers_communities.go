package api

import (
	"errors"
	"strconv"

	"github.com/dfarina/communio/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// comunidadePayload is deliberately not a patch type: update replaces the
// whole row, so omitted fields arrive zeroed and are stored zeroed.
type comunidadePayload struct {
	Diocese      string                `json:"diocese"`
	Bispo        string                `json:"bispo"`
	Cidade       string                `json:"cidade"`
	Paroquia     string                `json:"paroquia"`
	Paroco       string                `json:"paroco"`
	Vigario      string                `json:"vigario"`
	QtdMembros   int                   `json:"qtd_membros"`
	QtdJovens    int                   `json:"qtd_jovens"`
	EtapaID      uint                  `json:"etapa_id"`
	DataFundacao string                `json:"data_fundacao"`
	DataEtapa    string                `json:"data_etapa"`
	Levantados   models.LevantadoList  `json:"levantados"`
	Carismas     models.CarismaRefList `json:"carismas"`
}

func (payload *comunidadePayload) toModel() models.Comunidade {
	levantados := payload.Levantados
	if levantados == nil {
		levantados = make(models.LevantadoList, 0)
	}
	carismas := payload.Carismas
	if carismas == nil {
		carismas = make(models.CarismaRefList, 0)
	}
	return models.Comunidade{
		Diocese:      payload.Diocese,
		Bispo:        payload.Bispo,
		Cidade:       payload.Cidade,
		Paroquia:     payload.Paroquia,
		Paroco:       payload.Paroco,
		Vigario:      payload.Vigario,
		QtdMembros:   payload.QtdMembros,
		QtdJovens:    payload.QtdJovens,
		EtapaID:      payload.EtapaID,
		DataFundacao: payload.DataFundacao,
		DataEtapa:    payload.DataEtapa,
		Levantados:   levantados,
		Carismas:     carismas,
	}
}

func (handler *Handler) CreateComunidade(c *fiber.Ctx) error {
	var payload comunidadePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "corpo da requisição inválido")
	}

	community := payload.toModel()
	if err := handler.communities.Create(&community); err != nil {
		return apiError(c, fiber.StatusBadRequest, "falha ao criar comunidade")
	}
	return c.Status(fiber.StatusCreated).JSON(community)
}

func (handler *Handler) ListComunidades(c *fiber.Ctx) error {
	communities, err := handler.communities.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "falha ao listar comunidades")
	}
	return c.JSON(communities)
}

func (handler *Handler) GetComunidade(c *fiber.Ctx) error {
	communityID, err := parseCommunityID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "id inválido")
	}

	community, err := handler.communities.FindByID(communityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "comunidade não encontrada")
		}
		return apiError(c, fiber.StatusInternalServerError, "falha ao buscar comunidade")
	}
	return c.JSON(community)
}

func (handler *Handler) UpdateComunidade(c *fiber.Ctx) error {
	communityID, err := parseCommunityID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "id inválido")
	}

	var payload comunidadePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "corpo da requisição inválido")
	}

	community := payload.toModel()
	if err := handler.communities.Replace(communityID, &community); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "comunidade não encontrada")
		}
		return apiError(c, fiber.StatusBadRequest, "falha ao atualizar comunidade")
	}

	updated, err := handler.communities.FindByID(communityID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "falha ao buscar comunidade")
	}
	return c.JSON(updated)
}

func (handler *Handler) DeleteComunidade(c *fiber.Ctx) error {
	communityID, err := parseCommunityID(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "id inválido")
	}

	// Deleting an id that does not exist still reports success.
	if err := handler.communities.Delete(communityID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "falha ao excluir comunidade")
	}
	return okResponse(c)
}

func parseCommunityID(c *fiber.Ctx) (uint, error) {
	communityID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(communityID), nil
}
